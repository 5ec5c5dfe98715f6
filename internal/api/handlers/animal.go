package handlers

import (
	"net/http"

	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnimalHandler handles HTTP requests for animal management
type AnimalHandler struct {
	animalService *service.AnimalService
	userService   *service.UserService
}

// NewAnimalHandler creates a new animal handler
func NewAnimalHandler(animalService *service.AnimalService, userService *service.UserService) *AnimalHandler {
	return &AnimalHandler{animalService: animalService, userService: userService}
}

// Create handles POST /management/awgs/:id/animals
// @Summary List a new animal
// @Description Create an animal for an organization. New animals start unpublished.
// @Tags animals-management
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param animal body service.SaveAnimalRequest true "Animal data"
// @Success 201 {object} service.AnimalResponse "Animal created"
// @Failure 403 {object} ErrorResponse "Missing manage-animals permission"
// @Security BearerAuth
// @Router /management/awgs/{id}/animals [post]
func (h *AnimalHandler) Create(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.SaveAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	animal, err := h.animalService.Create(currentUser(c, h.userService), awgID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, animal)
}

// List handles GET /management/awgs/:id/animals
// @Summary List an organization's animals
// @Description List the organization's animals including unpublished ones
// @Tags animals-management
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} service.AnimalListResponse "Animals"
// @Failure 403 {object} ErrorResponse "Missing manage-animals permission"
// @Security BearerAuth
// @Router /management/awgs/{id}/animals [get]
func (h *AnimalHandler) List(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.animalService.List(currentUser(c, h.userService), awgID, pageParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /management/awgs/:id/animals/:animalId
// @Summary Get one of the organization's animals
// @Tags animals-management
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param animalId path string true "Animal ID (UUID)"
// @Success 200 {object} service.AnimalResponse "Animal"
// @Failure 404 {object} ErrorResponse "Animal not found in this organization"
// @Security BearerAuth
// @Router /management/awgs/{id}/animals/{animalId} [get]
func (h *AnimalHandler) Get(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	animalID, ok := parseUUIDParam(c, "animalId")
	if !ok {
		return
	}
	animal, err := h.animalService.Get(currentUser(c, h.userService), awgID, animalID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// Update handles PUT /management/awgs/:id/animals/:animalId
// @Summary Update an animal
// @Description Replace an animal's fields. Removing the primary photo of a published animal unpublishes it.
// @Tags animals-management
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param animalId path string true "Animal ID (UUID)"
// @Param animal body service.SaveAnimalRequest true "Animal data"
// @Success 200 {object} service.AnimalResponse "Updated animal"
// @Failure 403 {object} ErrorResponse "Missing manage-animals permission"
// @Security BearerAuth
// @Router /management/awgs/{id}/animals/{animalId} [put]
func (h *AnimalHandler) Update(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	animalID, ok := parseUUIDParam(c, "animalId")
	if !ok {
		return
	}
	var req service.SaveAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	animal, err := h.animalService.Update(currentUser(c, h.userService), awgID, animalID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// publishRequest toggles publication state
type publishRequest struct {
	IsPublished bool `json:"is_published"`
}

// SetPublished handles PUT /management/awgs/:id/animals/:animalId/publish
// @Summary Publish or unpublish an animal
// @Description Publishing requires a primary photo
// @Tags animals-management
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param animalId path string true "Animal ID (UUID)"
// @Param body body publishRequest true "Publish flag"
// @Success 200 {object} service.AnimalResponse "Updated animal"
// @Failure 400 {object} ErrorResponse "Animal has no primary photo"
// @Security BearerAuth
// @Router /management/awgs/{id}/animals/{animalId}/publish [put]
func (h *AnimalHandler) SetPublished(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	animalID, ok := parseUUIDParam(c, "animalId")
	if !ok {
		return
	}
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	animal, err := h.animalService.SetPublished(currentUser(c, h.userService), awgID, animalID, req.IsPublished)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// Delete handles DELETE /management/awgs/:id/animals/:animalId
// @Summary Delete an animal listing
// @Tags animals-management
// @Param id path string true "Organization ID (UUID)"
// @Param animalId path string true "Animal ID (UUID)"
// @Success 204 "Animal deleted"
// @Failure 403 {object} ErrorResponse "Missing manage-animals permission"
// @Security BearerAuth
// @Router /management/awgs/{id}/animals/{animalId} [delete]
func (h *AnimalHandler) Delete(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	animalID, ok := parseUUIDParam(c, "animalId")
	if !ok {
		return
	}
	if err := h.animalService.Delete(currentUser(c, h.userService), awgID, animalID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addImageRequest attaches an additional photo
type addImageRequest struct {
	PhotoURL string `json:"photo_url" binding:"required"`
}

// AddImage handles POST /management/awgs/:id/animals/:animalId/images
// @Summary Attach an additional photo to an animal
// @Tags animals-management
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param animalId path string true "Animal ID (UUID)"
// @Param body body addImageRequest true "Photo URL"
// @Success 201 {object} models.AnimalImage "Image added"
// @Failure 403 {object} ErrorResponse "Missing manage-animals permission"
// @Security BearerAuth
// @Router /management/awgs/{id}/animals/{animalId}/images [post]
func (h *AnimalHandler) AddImage(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	animalID, ok := parseUUIDParam(c, "animalId")
	if !ok {
		return
	}
	var req addImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.animalService.AddImage(currentUser(c, h.userService), awgID, animalID, req.PhotoURL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}
