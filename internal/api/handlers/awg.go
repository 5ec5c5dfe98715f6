package handlers

import (
	"net/http"

	"animal-rescue-backend/internal/database/models"
	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AwgHandler handles HTTP requests for animal welfare groups
type AwgHandler struct {
	awgService  *service.AwgService
	userService *service.UserService
}

// NewAwgHandler creates a new awg handler
func NewAwgHandler(awgService *service.AwgService, userService *service.UserService) *AwgHandler {
	return &AwgHandler{awgService: awgService, userService: userService}
}

// Apply handles POST /awgs
// @Summary Apply to list an organization
// @Description Create an organization in APPLIED status; the caller becomes its first member with all permissions
// @Tags awgs
// @Accept json
// @Produce json
// @Param awg body service.ApplyAwgRequest true "Organization data"
// @Success 201 {object} service.AwgResponse "Application submitted"
// @Failure 400 {object} ErrorResponse "Invalid request body or zip code"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Security BearerAuth
// @Router /awgs [post]
func (h *AwgHandler) Apply(c *gin.Context) {
	var req service.ApplyAwgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	awg, err := h.awgService.Apply(c.Request.Context(), currentUser(c, h.userService), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, awg)
}

// GetPublic handles GET /awgs/:id
// @Summary Get a published organization
// @Tags awgs
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.AwgResponse "Organization"
// @Failure 404 {object} ErrorResponse "Organization not found or not published"
// @Router /awgs/{id} [get]
func (h *AwgHandler) GetPublic(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	awg, err := h.awgService.GetPublic(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, awg)
}

// Get handles GET /management/awgs/:id
// @Summary Get an organization for its members
// @Tags awgs-management
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.AwgResponse "Organization"
// @Failure 403 {object} ErrorResponse "No permissions on this organization"
// @Security BearerAuth
// @Router /management/awgs/{id} [get]
func (h *AwgHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	awg, err := h.awgService.Get(currentUser(c, h.userService), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, awg)
}

// ListMine handles GET /management/awgs
// @Summary List the organizations the caller belongs to
// @Tags awgs-management
// @Produce json
// @Success 200 {array} service.AwgResponse "Organizations"
// @Security BearerAuth
// @Router /management/awgs [get]
func (h *AwgHandler) ListMine(c *gin.Context) {
	awgs, err := h.awgService.ListMine(currentUser(c, h.userService))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, awgs)
}

// ListForStaff handles GET /staff/awgs
// @Summary List organizations of any status
// @Tags staff
// @Produce json
// @Param status query string false "Filter by status (APPLIED, PUBLISHED, UNPUBLISHED)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} service.AwgListResponse "Organizations"
// @Failure 403 {object} ErrorResponse "Staff access required"
// @Security BearerAuth
// @Router /staff/awgs [get]
func (h *AwgHandler) ListForStaff(c *gin.Context) {
	var status *models.AwgStatus
	if raw := c.Query("status"); raw != "" {
		s := models.AwgStatus(raw)
		status = &s
	}

	resp, err := h.awgService.ListForStaff(currentUser(c, h.userService), status, pageParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /management/awgs/:id
// @Summary Update an organization's profile
// @Tags awgs-management
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param awg body service.UpdateAwgRequest true "Organization data"
// @Success 200 {object} service.AwgResponse "Updated organization"
// @Failure 403 {object} ErrorResponse "Missing edit-profile permission"
// @Security BearerAuth
// @Router /management/awgs/{id} [put]
func (h *AwgHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateAwgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	awg, err := h.awgService.Update(currentUser(c, h.userService), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, awg)
}

// SetStatus handles PUT /staff/awgs/:id/status
// @Summary Transition an organization's listing status
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param status body service.SetAwgStatusRequest true "New status"
// @Success 200 {object} service.AwgResponse "Updated organization"
// @Failure 403 {object} ErrorResponse "Staff access required"
// @Security BearerAuth
// @Router /staff/awgs/{id}/status [put]
func (h *AwgHandler) SetStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.SetAwgStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	awg, err := h.awgService.SetStatus(c.Request.Context(), currentUser(c, h.userService), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, awg)
}
