package handlers

import (
	"net/http"

	"animal-rescue-backend/internal/auth"
	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BrowseHandler handles the public animal search endpoints
type BrowseHandler struct {
	browseService *service.BrowseService
}

// NewBrowseHandler creates a new browse handler
func NewBrowseHandler(browseService *service.BrowseService) *BrowseHandler {
	return &BrowseHandler{browseService: browseService}
}

// Search handles GET /animals
// @Summary Search published animals
// @Description Search the public animal listings with optional filters and sorting
// @Tags browse
// @Produce json
// @Param animal_type query string false "DOG or CAT" default(DOG)
// @Param zip query string false "Origin zip code for distance filtering"
// @Param radius query string false "Radius in miles, or 'any'" default(50)
// @Param age query string false "BABY, YOUNG, ADULT or SENIOR"
// @Param sex query string false "MALE or FEMALE"
// @Param size query string false "SMALL, MEDIUM, LARGE or XLARGE"
// @Param breed query string false "Breed slug"
// @Param awg_id query string false "Restrict to one organization"
// @Param euth_date_within_days query int false "Only animals scheduled within N days"
// @Param goodwith_cats query bool false "Only animals good with cats"
// @Param goodwith_dogs query bool false "Only animals good with dogs"
// @Param goodwith_kids query bool false "Only animals good with kids"
// @Param purebred query bool false "Only purebred animals"
// @Param shortlist query bool false "Only the caller's shortlisted animals"
// @Param sort query string false "distance, -created_at, created_at, euth_date, name or first_published_at"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} service.BrowseResponse "Search results"
// @Failure 400 {object} ErrorResponse "Invalid filter value"
// @Router /animals [get]
func (h *BrowseHandler) Search(c *gin.Context) {
	var req service.BrowseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := auth.UserID(c)
	resp, err := h.browseService.Search(&req, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /animals/:id
// @Summary Get a published animal
// @Description Public detail view of one published animal
// @Tags browse
// @Produce json
// @Param id path string true "Animal ID (UUID)"
// @Success 200 {object} service.BrowseAnimal "Animal"
// @Failure 404 {object} ErrorResponse "Animal not found or not published"
// @Router /animals/{id} [get]
func (h *BrowseHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	userID, _ := auth.UserID(c)
	animal, err := h.browseService.GetAnimal(id, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// ListBreeds handles GET /breeds
// @Summary List breeds present in the published listings
// @Tags browse
// @Produce json
// @Param animal_type query string false "DOG or CAT" default(DOG)
// @Success 200 {object} map[string][]string "Breed slugs"
// @Failure 400 {object} ErrorResponse "Invalid animal type"
// @Router /breeds [get]
func (h *BrowseHandler) ListBreeds(c *gin.Context) {
	slugs, err := h.browseService.ListBreeds(c.DefaultQuery("animal_type", "DOG"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"breeds": slugs})
}
