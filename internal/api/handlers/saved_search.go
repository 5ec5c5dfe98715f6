package handlers

import (
	"net/http"
	"time"

	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SavedSearchHandler handles saved searches and the digest trigger
type SavedSearchHandler struct {
	savedSearchService *service.SavedSearchService
	userService        *service.UserService
}

// NewSavedSearchHandler creates a new saved search handler
func NewSavedSearchHandler(savedSearchService *service.SavedSearchService, userService *service.UserService) *SavedSearchHandler {
	return &SavedSearchHandler{savedSearchService: savedSearchService, userService: userService}
}

// Create handles POST /me/saved-searches
// @Summary Save a search
// @Description Snapshots the given criteria for later digest emails
// @Tags saved-searches
// @Accept json
// @Produce json
// @Param search body service.SaveSearchRequest true "Search criteria"
// @Success 201 {object} service.SavedSearchResponse "Saved search"
// @Failure 400 {object} ErrorResponse "Invalid criteria"
// @Security BearerAuth
// @Router /me/saved-searches [post]
func (h *SavedSearchHandler) Create(c *gin.Context) {
	var req service.SaveSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	search, err := h.savedSearchService.Create(currentUser(c, h.userService), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, search)
}

// List handles GET /me/saved-searches
// @Summary List the caller's saved searches
// @Tags saved-searches
// @Produce json
// @Success 200 {object} map[string][]service.SavedSearchResponse "Saved searches"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /me/saved-searches [get]
func (h *SavedSearchHandler) List(c *gin.Context) {
	searches, err := h.savedSearchService.List(currentUser(c, h.userService))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_searches": searches})
}

// Update handles PUT /me/saved-searches/:id
// @Summary Update a saved search
// @Tags saved-searches
// @Accept json
// @Produce json
// @Param id path string true "Saved search ID (UUID)"
// @Param search body service.SaveSearchRequest true "New criteria"
// @Success 200 {object} service.SavedSearchResponse "Updated saved search"
// @Failure 404 {object} ErrorResponse "Saved search not found"
// @Security BearerAuth
// @Router /me/saved-searches/{id} [put]
func (h *SavedSearchHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.SaveSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	search, err := h.savedSearchService.Update(currentUser(c, h.userService), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, search)
}

// Delete handles DELETE /me/saved-searches/:id
// @Summary Delete a saved search
// @Tags saved-searches
// @Param id path string true "Saved search ID (UUID)"
// @Success 204 "Saved search deleted"
// @Failure 404 {object} ErrorResponse "Saved search not found"
// @Security BearerAuth
// @Router /me/saved-searches/{id} [delete]
func (h *SavedSearchHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.savedSearchService.Delete(currentUser(c, h.userService), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RunDigest handles POST /staff/digest/run
// @Summary Run the saved search digest
// @Description Checks every notifiable saved search and emails new matches. Only one run at a time.
// @Tags staff
// @Produce json
// @Success 200 {object} service.DigestRunResponse "Digest results"
// @Failure 409 {object} ErrorResponse "A digest run is already in progress"
// @Security BearerAuth
// @Router /staff/digest/run [post]
func (h *SavedSearchHandler) RunDigest(c *gin.Context) {
	resp, err := h.savedSearchService.RunDigest(c.Request.Context(), time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
