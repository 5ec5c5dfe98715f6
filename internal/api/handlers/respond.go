package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"animal-rescue-backend/internal/auth"
	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// writeError maps service errors onto HTTP status codes. Every handler
// funnels its service errors through here so the mapping stays uniform.
func writeError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err),
		err == apperrors.ErrDigestAlreadyRunning:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.As(err, &fieldErrs),
		isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// isBadRequest covers the plain sentinel errors that are caller mistakes.
func isBadRequest(err error) bool {
	switch err {
	case apperrors.ErrAnimalCannotBePublished,
		apperrors.ErrProfileNotComplete,
		apperrors.ErrInvalidAction,
		apperrors.ErrInvalidPaginationParams:
		return true
	}
	return false
}

// parseUUIDParam parses a :param path segment as a UUID
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// pageParam reads the ?page query parameter, defaulting to 1
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// userLoader resolves the authenticated account for permission checks.
type userLoader interface {
	GetModelByID(id uuid.UUID) (*models.User, error)
}

var _ userLoader = (*service.UserService)(nil)

// currentUser loads the authenticated user, or nil for anonymous requests.
// A token pointing at a deleted account is treated as anonymous.
func currentUser(c *gin.Context, users userLoader) *models.User {
	id, ok := auth.UserID(c)
	if !ok {
		return nil
	}
	user, err := users.GetModelByID(id)
	if err != nil {
		return nil
	}
	return user
}
