package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-rescue-backend/internal/config"
	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/notifications"
	"animal-rescue-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManagementPageSize is the page size for staff/member console listings.
const ManagementPageSize = 100

// AwgService handles business logic for animal welfare groups
type AwgService struct {
	repo        repository.AwgRepositoryInterface
	zipRepo     repository.ZipCodeRepositoryInterface
	permissions *PermissionsService
	notifier    *notifications.Notifier
	config      *config.Config
	validator   *validator.Validate
}

// NewAwgService creates a new awg service
func NewAwgService(repo repository.AwgRepositoryInterface, zipRepo repository.ZipCodeRepositoryInterface, permissions *PermissionsService, notifier *notifications.Notifier, cfg *config.Config, validator *validator.Validate) *AwgService {
	return &AwgService{
		repo:        repo,
		zipRepo:     zipRepo,
		permissions: permissions,
		notifier:    notifier,
		config:      cfg,
		validator:   validator,
	}
}

// ApplyAwgRequest represents a new organization application
type ApplyAwgRequest struct {
	Name                 string          `json:"name" validate:"required,min=2,max=100"`
	Description          string          `json:"description" validate:"max=5000"`
	AwgType              *models.AwgType `json:"awg_type,omitempty"`
	Has501c3TaxExemption bool            `json:"has_501c3_tax_exemption"`
	CompanyEIN           string          `json:"company_ein" validate:"max=16"`

	WorkwithDogs  bool `json:"workwith_dogs"`
	WorkwithCats  bool `json:"workwith_cats"`
	WorkwithOther bool `json:"workwith_other"`

	ZipCode string `json:"zip_code" validate:"required,len=5,numeric"`
	City    string `json:"city" validate:"max=32"`
	State   string `json:"state" validate:"omitempty,len=2"`

	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"max=32"`
	WebsiteURL string `json:"website_url" validate:"omitempty,url,max=255"`
}

// UpdateAwgRequest represents the request to update an organization's profile
type UpdateAwgRequest struct {
	Name                 string          `json:"name" validate:"required,min=2,max=100"`
	Description          string          `json:"description" validate:"max=5000"`
	AwgType              *models.AwgType `json:"awg_type,omitempty"`
	Has501c3TaxExemption bool            `json:"has_501c3_tax_exemption"`
	CompanyEIN           string          `json:"company_ein" validate:"max=16"`

	WorkwithDogs  bool `json:"workwith_dogs"`
	WorkwithCats  bool `json:"workwith_cats"`
	WorkwithOther bool `json:"workwith_other"`

	ZipCode              string `json:"zip_code" validate:"required,len=5,numeric"`
	City                 string `json:"city" validate:"max=32"`
	State                string `json:"state" validate:"omitempty,len=2"`
	IsExactLocationShown bool   `json:"is_exact_location_shown"`

	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"max=32"`
	WebsiteURL   string `json:"website_url" validate:"omitempty,url,max=255"`
	FacebookURL  string `json:"facebook_url" validate:"omitempty,url,max=255"`
	InstagramURL string `json:"instagram_url" validate:"omitempty,url,max=255"`
	TwitterURL   string `json:"twitter_url" validate:"omitempty,url,max=255"`
	TiktokURL    string `json:"tiktok_url" validate:"omitempty,url,max=255"`
}

// SetAwgStatusRequest represents a staff status transition
type SetAwgStatusRequest struct {
	Status models.AwgStatus `json:"status" validate:"required"`
}

// AwgResponse represents the response for organization operations
type AwgResponse struct {
	ID                   uuid.UUID        `json:"id"`
	Name                 string           `json:"name"`
	Status               models.AwgStatus `json:"status"`
	Description          string           `json:"description"`
	AwgType              *models.AwgType  `json:"awg_type,omitempty"`
	Has501c3TaxExemption bool             `json:"has_501c3_tax_exemption"`

	WorkwithDogs  bool `json:"workwith_dogs"`
	WorkwithCats  bool `json:"workwith_cats"`
	WorkwithOther bool `json:"workwith_other"`

	ZipCode              string  `json:"zip_code"`
	City                 string  `json:"city"`
	State                string  `json:"state"`
	Latitude             float64 `json:"latitude,omitempty"`
	Longitude            float64 `json:"longitude,omitempty"`
	IsExactLocationShown bool    `json:"is_exact_location_shown"`

	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	WebsiteURL   string `json:"website_url,omitempty"`
	FacebookURL  string `json:"facebook_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	TwitterURL   string `json:"twitter_url,omitempty"`
	TiktokURL    string `json:"tiktok_url,omitempty"`

	CreatedAt string `json:"created_at"`
}

// AwgListResponse represents a paginated list of organizations
type AwgListResponse struct {
	Awgs     []AwgResponse `json:"awgs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Apply creates a new organization in APPLIED status. The applying user
// becomes its first member with every capability, and the internal list is
// notified so staff can review the application.
func (s *AwgService) Apply(ctx context.Context, user *models.User, req *ApplyAwgRequest) (*AwgResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	zip, err := s.resolveZip(req.ZipCode)
	if err != nil {
		return nil, err
	}

	awg := &models.Awg{
		Name:                 req.Name,
		Status:               models.AwgStatusApplied,
		Description:          req.Description,
		AwgType:              req.AwgType,
		Has501c3TaxExemption: req.Has501c3TaxExemption,
		CompanyEIN:           req.CompanyEIN,
		WorkwithDogs:         req.WorkwithDogs,
		WorkwithCats:         req.WorkwithCats,
		WorkwithOther:        req.WorkwithOther,
		ZipCode:              req.ZipCode,
		City:                 req.City,
		State:                strings.ToUpper(req.State),
		Latitude:             zip.Latitude,
		Longitude:            zip.Longitude,
		Email:                req.Email,
		Phone:                req.Phone,
		WebsiteURL:           req.WebsiteURL,
	}
	member := &models.AwgMember{
		UserID:                user.ID,
		CanEditProfile:        true,
		CanManageAnimals:      true,
		CanManageMembers:      true,
		CanManageApplications: true,
		CanViewApplications:   true,
	}
	if err := s.repo.CreateWithCreatorMember(awg, member); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.notifier.Notify(ctx, notifications.Message{
		Template: notifications.TemplateAwgApplied,
		To:       s.internalRecipients(),
		Context:  map[string]interface{}{"AwgName": awg.Name},
	})

	return toAwgResponse(awg), nil
}

// GetPublic retrieves a published organization for public display
func (s *AwgService) GetPublic(id uuid.UUID) (*AwgResponse, error) {
	awg, err := s.repo.GetPublishedByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAwgNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	resp := toAwgResponse(awg)
	if !awg.IsExactLocationShown {
		resp.Latitude = 0
		resp.Longitude = 0
	}
	return resp, nil
}

// Get retrieves an organization for a user with at least one capability on it
func (s *AwgService) Get(user *models.User, id uuid.UUID) (*AwgResponse, error) {
	if _, err := s.permissions.RequireCapability(user, id, CapabilitySet.HasAny); err != nil {
		return nil, err
	}
	awg, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAwgNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return toAwgResponse(awg), nil
}

// ListForStaff lists organizations of any status for the staff console
func (s *AwgService) ListForStaff(user *models.User, status *models.AwgStatus, page int) (*AwgListResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	if !user.IsStaff {
		return nil, apperrors.ErrMustBeStaff
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	awgs, total, err := s.repo.GetAll(status, ManagementPageSize, (page-1)*ManagementPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	resp := &AwgListResponse{
		Awgs:     make([]AwgResponse, len(awgs)),
		Total:    total,
		Page:     page,
		PageSize: ManagementPageSize,
	}
	for i := range awgs {
		resp.Awgs[i] = *toAwgResponse(&awgs[i])
	}
	return resp, nil
}

// ListMine lists the organizations the user belongs to
func (s *AwgService) ListMine(user *models.User) ([]AwgResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	awgs, err := s.repo.GetForUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	out := make([]AwgResponse, len(awgs))
	for i := range awgs {
		out[i] = *toAwgResponse(&awgs[i])
	}
	return out, nil
}

// Update updates an organization's profile. Requires the edit-profile capability.
func (s *AwgService) Update(user *models.User, id uuid.UUID, req *UpdateAwgRequest) (*AwgResponse, error) {
	if _, err := s.permissions.RequireCapability(user, id, func(c CapabilitySet) bool { return c.CanEditProfile }); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	awg, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAwgNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	zip, err := s.resolveZip(req.ZipCode)
	if err != nil {
		return nil, err
	}

	awg.Name = req.Name
	awg.Description = req.Description
	awg.AwgType = req.AwgType
	awg.Has501c3TaxExemption = req.Has501c3TaxExemption
	awg.CompanyEIN = req.CompanyEIN
	awg.WorkwithDogs = req.WorkwithDogs
	awg.WorkwithCats = req.WorkwithCats
	awg.WorkwithOther = req.WorkwithOther
	awg.ZipCode = req.ZipCode
	awg.City = req.City
	awg.State = strings.ToUpper(req.State)
	awg.Latitude = zip.Latitude
	awg.Longitude = zip.Longitude
	awg.IsExactLocationShown = req.IsExactLocationShown
	awg.Email = req.Email
	awg.Phone = req.Phone
	awg.WebsiteURL = req.WebsiteURL
	awg.FacebookURL = req.FacebookURL
	awg.InstagramURL = req.InstagramURL
	awg.TwitterURL = req.TwitterURL
	awg.TiktokURL = req.TiktokURL

	if err := s.repo.Update(awg); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return toAwgResponse(awg), nil
}

// SetStatus transitions an organization's listing status. Staff only.
// Publishing notifies the organization's contact address.
func (s *AwgService) SetStatus(ctx context.Context, user *models.User, id uuid.UUID, req *SetAwgStatusRequest) (*AwgResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	if !user.IsStaff {
		return nil, apperrors.ErrMustBeStaff
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	awg, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAwgNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	wasPublished := awg.Status == models.AwgStatusPublished
	awg.Status = req.Status
	if err := s.repo.Update(awg); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	if !wasPublished && awg.Status == models.AwgStatusPublished && awg.Email != "" {
		s.notifier.Notify(ctx, notifications.Message{
			Template: notifications.TemplateAwgPublished,
			To:       []notifications.Recipient{{Email: awg.Email, Name: awg.Name}},
			Context:  map[string]interface{}{"AwgName": awg.Name},
		})
	}
	return toAwgResponse(awg), nil
}

func (s *AwgService) resolveZip(zipCode string) (*models.ZipCode, error) {
	zip, err := s.zipRepo.GetByZip(zipCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidZipCode
		}
		return nil, fmt.Errorf("failed to look up zip code: %w", err)
	}
	return zip, nil
}

// internalRecipients parses the configured internal notification list
func (s *AwgService) internalRecipients() []notifications.Recipient {
	return internalRecipients(s.config)
}

func internalRecipients(cfg *config.Config) []notifications.Recipient {
	var out []notifications.Recipient
	for _, addr := range strings.Split(cfg.InternalNotifyList, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			out = append(out, notifications.Recipient{Email: addr})
		}
	}
	return out
}

func toAwgResponse(awg *models.Awg) *AwgResponse {
	return &AwgResponse{
		ID:                   awg.ID,
		Name:                 awg.Name,
		Status:               awg.Status,
		Description:          awg.Description,
		AwgType:              awg.AwgType,
		Has501c3TaxExemption: awg.Has501c3TaxExemption,
		WorkwithDogs:         awg.WorkwithDogs,
		WorkwithCats:         awg.WorkwithCats,
		WorkwithOther:        awg.WorkwithOther,
		ZipCode:              awg.ZipCode,
		City:                 awg.City,
		State:                awg.State,
		Latitude:             awg.Latitude,
		Longitude:            awg.Longitude,
		IsExactLocationShown: awg.IsExactLocationShown,
		Email:                awg.Email,
		Phone:                awg.Phone,
		WebsiteURL:           awg.WebsiteURL,
		FacebookURL:          awg.FacebookURL,
		InstagramURL:         awg.InstagramURL,
		TwitterURL:           awg.TwitterURL,
		TiktokURL:            awg.TiktokURL,
		CreatedAt:            awg.CreatedAt.Format(time.RFC3339),
	}
}
