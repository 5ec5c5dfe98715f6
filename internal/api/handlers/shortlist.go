package handlers

import (
	"net/http"

	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShortListHandler handles shortlist toggling
type ShortListHandler struct {
	shortlistService *service.ShortListService
	userService      *service.UserService
}

// NewShortListHandler creates a new shortlist handler
func NewShortListHandler(shortlistService *service.ShortListService, userService *service.UserService) *ShortListHandler {
	return &ShortListHandler{shortlistService: shortlistService, userService: userService}
}

// Toggle handles POST /animals/:id/shortlist
// @Summary Toggle an animal on the caller's shortlist
// @Description Adds the animal if absent, removes it if present
// @Tags shortlist
// @Produce json
// @Param id path string true "Animal ID (UUID)"
// @Success 200 {object} service.ToggleResponse "New shortlist state"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Animal not found or not published"
// @Security BearerAuth
// @Router /animals/{id}/shortlist [post]
func (h *ShortListHandler) Toggle(c *gin.Context) {
	animalID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.shortlistService.Toggle(currentUser(c, h.userService), animalID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
