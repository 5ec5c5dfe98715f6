package service

import (
	"context"
	"errors"
	"fmt"

	"animal-rescue-backend/internal/auth"
	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/notifications"
	"animal-rescue-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for accounts and sessions
type UserService struct {
	repo        repository.UserRepositoryInterface
	authService *auth.AuthService
	notifier    *notifications.Notifier
	validator   *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, authService *auth.AuthService, notifier *notifications.Notifier, validator *validator.Validate) *UserService {
	return &UserService{
		repo:        repo,
		authService: authService,
		notifier:    notifier,
		validator:   validator,
	}
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents the request to update the caller's profile
type UpdateProfileRequest struct {
	Description string `json:"description" validate:"max=2000"`
	ZipCode     string `json:"zip_code" validate:"omitempty,len=5,numeric"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	IsStaff     bool      `json:"is_staff"`
	Description string    `json:"description,omitempty"`
	ZipCode     string    `json:"zip_code,omitempty"`
}

// SessionResponse carries a fresh token plus the account it belongs to
type SessionResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        UserResponse `json:"user"`
}

// Register creates a new account and issues its first session token
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.notifier.Notify(ctx, notifications.Message{
		Template: notifications.TemplateWelcome,
		To:       []notifications.Recipient{{Email: user.Email, Name: user.Username}},
		Context:  map[string]interface{}{"Name": user.Username},
	})

	return s.newSession(user)
}

// Login verifies credentials and issues a session token
func (s *UserService) Login(req *LoginRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.newSession(user)
}

func (s *UserService) newSession(user *models.User) (*SessionResponse, error) {
	token, err := s.authService.GenerateJWT(user.ID, user.Email, user.IsStaff)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &SessionResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        *toUserResponse(user),
	}, nil
}

// GetByID retrieves an account
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// GetModelByID retrieves the underlying account model for permission checks
func (s *UserService) GetModelByID(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile updates the caller's own profile
func (s *UserService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	profile := &models.UserProfile{
		UserID:      user.ID,
		Description: req.Description,
		ZipCode:     req.ZipCode,
	}
	if err := s.repo.UpsertProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	user.Profile = profile
	return toUserResponse(user), nil
}

func toUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		IsStaff:  user.IsStaff,
	}
	if user.Profile != nil {
		resp.Description = user.Profile.Description
		resp.ZipCode = user.Profile.ZipCode
	}
	return resp
}
