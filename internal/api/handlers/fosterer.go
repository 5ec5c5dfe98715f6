package handlers

import (
	"net/http"

	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FostererHandler handles the fosterer profile wizard
type FostererHandler struct {
	fostererService *service.FostererService
	userService     *service.UserService
}

// NewFostererHandler creates a new fosterer handler
func NewFostererHandler(fostererService *service.FostererService, userService *service.UserService) *FostererHandler {
	return &FostererHandler{fostererService: fostererService, userService: userService}
}

// GetState handles GET /me/fosterer
// @Summary Get the caller's wizard progress
// @Description Returns the fosterer profile with per-stage completion, creating an empty profile on first access
// @Tags fosterer
// @Produce json
// @Success 200 {object} service.WizardStateResponse "Wizard state"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /me/fosterer [get]
func (h *FostererHandler) GetState(c *gin.Context) {
	state, err := h.fostererService.GetState(currentUser(c, h.userService))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitStage handles POST /me/fosterer/:stage
// @Summary Submit one wizard stage
// @Description Validates and saves the stage payload. Submitting final-thoughts with all prior stages done marks the profile complete.
// @Tags fosterer
// @Accept json
// @Produce json
// @Param stage path string true "Stage name" Enums(about-you, animal-preferences, pet-experience, references, household-details, final-thoughts)
// @Param body body object true "Stage payload"
// @Success 200 {object} service.WizardStateResponse "Updated wizard state"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /me/fosterer/{stage} [post]
func (h *FostererHandler) SubmitStage(c *gin.Context) {
	stage, err := service.ParseStage(c.Param("stage"))
	if err != nil {
		writeError(c, err)
		return
	}
	user := currentUser(c, h.userService)

	var state *service.WizardStateResponse
	switch stage {
	case service.StageAboutYou:
		var req service.AboutYouRequest
		if !bindJSON(c, &req) {
			return
		}
		state, err = h.fostererService.SubmitAboutYou(user, &req)
	case service.StageAnimalPreferences:
		var req service.AnimalPreferencesRequest
		if !bindJSON(c, &req) {
			return
		}
		state, err = h.fostererService.SubmitAnimalPreferences(user, &req)
	case service.StagePetExperience:
		var req service.PetExperienceRequest
		if !bindJSON(c, &req) {
			return
		}
		state, err = h.fostererService.SubmitPetExperience(user, &req)
	case service.StageReferences:
		var req service.ReferencesRequest
		if !bindJSON(c, &req) {
			return
		}
		state, err = h.fostererService.SubmitReferences(user, &req)
	case service.StageHouseholdDetails:
		var req service.HouseholdDetailsRequest
		if !bindJSON(c, &req) {
			return
		}
		state, err = h.fostererService.SubmitHouseholdDetails(user, &req)
	case service.StageFinalThoughts:
		var req service.FinalThoughtsRequest
		if !bindJSON(c, &req) {
			return
		}
		state, err = h.fostererService.SubmitFinalThoughts(c.Request.Context(), user, &req)
	default:
		// "complete" is a derived state, not a submittable stage
		writeError(c, apperrors.ErrInvalidStage)
		return
	}

	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
