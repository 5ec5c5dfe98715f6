package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a client input error on a provided value.
// Absent optional criteria never raise; malformed provided values do.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a hard capability denial. Callers must map it
// to a 403, never downgrade it to an empty result.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrAwgNotFound         = &NotFoundError{Entity: "organization"}
	ErrMemberNotFound      = &NotFoundError{Entity: "member"}
	ErrAnimalNotFound      = &NotFoundError{Entity: "animal"}
	ErrBreedNotFound       = &NotFoundError{Entity: "breed"}
	ErrCommentNotFound     = &NotFoundError{Entity: "comment"}
	ErrSubCommentNotFound  = &NotFoundError{Entity: "reply"}
	ErrProfileNotFound     = &NotFoundError{Entity: "fosterer profile"}
	ErrApplicationNotFound = &NotFoundError{Entity: "foster application"}
	ErrSavedSearchNotFound = &NotFoundError{Entity: "saved search"}
)

// Already Exists Errors
var (
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrMemberExists      = &AlreadyExistsError{Entity: "member", Context: "in this organization"}
	ErrShortListExists   = &AlreadyExistsError{Entity: "shortlist entry", Context: "for this animal"}
	ErrApplicationExists = &AlreadyExistsError{Entity: "foster application", Context: "for this animal"}
)

// Client Input Errors
var (
	ErrInvalidZipCode          = &ValidationError{Field: "zip", Message: "invalid US zip code"}
	ErrInvalidAnimalType       = &ValidationError{Field: "animal_type", Message: "unknown animal type"}
	ErrInvalidStatus           = &ValidationError{Field: "status", Message: "invalid status"}
	ErrInvalidRejectReason     = &ValidationError{Field: "reject_reason", Message: "unknown reject reason"}
	ErrInvalidAction           = &ValidationError{Field: "action", Message: "unknown action"}
	ErrInvalidStage            = &ValidationError{Field: "stage", Message: "unknown wizard stage"}
	ErrMemberNeedsCapability   = &ValidationError{Field: "capabilities", Message: "must have at least 1 permission"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Business Logic Errors
var (
	ErrAnimalCannotBePublished = errors.New("animal cannot be published without a primary photo")
	ErrProfileNotComplete      = errors.New("fosterer profile is not complete")
	ErrDigestAlreadyRunning    = errors.New("saved-search digest run already in progress")
)

// Authentication / Authorization Errors
var (
	ErrMustBeLoggedIn     = &AuthenticationError{Message: "must be logged in"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingCapability  = &AuthorizationError{Message: "user does not have all required permissions"}
	ErrMustBeStaff        = &AuthorizationError{Message: "staff access required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
