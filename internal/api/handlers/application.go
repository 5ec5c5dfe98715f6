package handlers

import (
	"net/http"
	"strings"

	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles foster applications
type ApplicationHandler struct {
	applicationService *service.ApplicationService
	userService        *service.UserService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *service.ApplicationService, userService *service.UserService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService, userService: userService}
}

// Submit handles POST /animals/:id/applications
// @Summary Apply to foster an animal
// @Description Requires a completed fosterer profile. One application per animal.
// @Tags applications
// @Produce json
// @Param id path string true "Animal ID (UUID)"
// @Success 201 {object} service.ApplicationResponse "Application submitted"
// @Failure 400 {object} ErrorResponse "Fosterer profile incomplete"
// @Failure 409 {object} ErrorResponse "Already applied for this animal"
// @Security BearerAuth
// @Router /animals/{id}/applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	animalID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	app, err := h.applicationService.Submit(c.Request.Context(), currentUser(c, h.userService), animalID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListMine handles GET /me/applications
// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Success 200 {object} map[string][]service.ApplicationResponse "Applications"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /me/applications [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.applicationService.ListMine(currentUser(c, h.userService))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListForAwg handles GET /management/awgs/:id/applications
// @Summary List applications for an organization's animals
// @Tags applications
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param status query string false "PENDING, ACCEPTED or REJECTED"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} service.ApplicationListResponse "Applications"
// @Failure 403 {object} ErrorResponse "Missing applications permission"
// @Security BearerAuth
// @Router /management/awgs/{id}/applications [get]
func (h *ApplicationHandler) ListForAwg(c *gin.Context) {
	awgID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var status *models.ApplicationStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ApplicationStatus(strings.ToUpper(raw))
		if !s.IsValid() {
			writeError(c, apperrors.NewValidationError("status", "must be PENDING, ACCEPTED or REJECTED"))
			return
		}
		status = &s
	}

	resp, err := h.applicationService.ListForAwg(currentUser(c, h.userService), awgID, status, pageParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /applications/:id
// @Summary Get one application
// @Description Visible to the applicant and to organization members with an applications permission
// @Tags applications
// @Produce json
// @Param id path string true "Application ID (UUID)"
// @Success 200 {object} service.ApplicationResponse "Application"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	app, err := h.applicationService.Get(currentUser(c, h.userService), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Accept handles POST /applications/:id/accept
// @Summary Accept a pending application
// @Tags applications
// @Produce json
// @Param id path string true "Application ID (UUID)"
// @Success 200 {object} service.ApplicationResponse "Accepted application"
// @Failure 400 {object} ErrorResponse "Application is not pending"
// @Failure 403 {object} ErrorResponse "Missing manage-applications permission"
// @Security BearerAuth
// @Router /applications/{id}/accept [post]
func (h *ApplicationHandler) Accept(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	app, err := h.applicationService.Accept(c.Request.Context(), currentUser(c, h.userService), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Reject handles POST /applications/:id/reject
// @Summary Reject a pending application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID (UUID)"
// @Param body body service.RejectApplicationRequest true "Rejection reason"
// @Success 200 {object} service.ApplicationResponse "Rejected application"
// @Failure 400 {object} ErrorResponse "Application is not pending or reason is invalid"
// @Failure 403 {object} ErrorResponse "Missing manage-applications permission"
// @Security BearerAuth
// @Router /applications/{id}/reject [post]
func (h *ApplicationHandler) Reject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.RejectApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applicationService.Reject(c.Request.Context(), currentUser(c, h.userService), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
