package service

import (
	"context"
	"errors"
	"fmt"
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

// ApplicationService handles the foster application workflow
type ApplicationService struct {
	repo         repository.ApplicationRepositoryInterface
	fostererRepo repository.FostererRepositoryInterface
	animalRepo   repository.AnimalRepositoryInterface
	permissions  *PermissionsService
	notifier     *notifications.Notifier
	config       *config.Config
	validator    *validator.Validate
}

// NewApplicationService creates a new application service
func NewApplicationService(repo repository.ApplicationRepositoryInterface, fostererRepo repository.FostererRepositoryInterface, animalRepo repository.AnimalRepositoryInterface, permissions *PermissionsService, notifier *notifications.Notifier, cfg *config.Config, validator *validator.Validate) *ApplicationService {
	return &ApplicationService{
		repo:         repo,
		fostererRepo: fostererRepo,
		animalRepo:   animalRepo,
		permissions:  permissions,
		notifier:     notifier,
		config:       cfg,
		validator:    validator,
	}
}

// RejectApplicationRequest carries the coded reason for a rejection
type RejectApplicationRequest struct {
	Reason models.RejectReason `json:"reason" validate:"required"`
	Detail string              `json:"detail" validate:"max=5000"`
}

// ApplicationResponse represents one foster application
type ApplicationResponse struct {
	ID       uuid.UUID `json:"id"`
	AnimalID uuid.UUID `json:"animal_id"`

	AnimalName string `json:"animal_name,omitempty"`
	AwgName    string `json:"awg_name,omitempty"`

	FostererID    uuid.UUID `json:"fosterer_id"`
	FostererName  string    `json:"fosterer_name,omitempty"`
	FostererEmail string    `json:"fosterer_email,omitempty"`

	Status             models.ApplicationStatus `json:"status"`
	RejectReason       *models.RejectReason     `json:"reject_reason,omitempty"`
	RejectReasonLabel  string                   `json:"reject_reason_label,omitempty"`
	RejectReasonDetail string                   `json:"reject_reason_detail,omitempty"`
	SubmittedOn        string                   `json:"submitted_on"`
}

// ApplicationListResponse represents a paginated application listing
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// Submit creates a PENDING application for a visible animal. The caller's
// fosterer profile must be complete, and a second application for the same
// animal is rejected.
func (s *ApplicationService) Submit(ctx context.Context, user *models.User, animalID uuid.UUID) (*ApplicationResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}

	profile, err := s.fostererRepo.GetByUserID(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotComplete
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if !profile.IsComplete {
		return nil, apperrors.ErrProfileNotComplete
	}

	animal, err := s.animalRepo.GetByID(animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to get animal: %w", err)
	}
	if !animal.IsCurrentlyPublished() {
		return nil, apperrors.ErrAnimalNotFound
	}

	app := &models.FosterApplication{
		FostererID: profile.ID,
		AnimalID:   animalID,
		Status:     models.ApplicationStatusPending,
	}
	if err := s.repo.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrApplicationExists
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	app.Fosterer = profile
	app.Animal = animal

	s.notifier.Notify(ctx, notifications.Message{
		Template: notifications.TemplateApplicationReceived,
		To:       s.orgRecipients(animal),
		Context: map[string]interface{}{
			"FostererName": profile.Firstname + " " + profile.Lastname,
			"AnimalName":   animal.Name,
			"AnimalURL":    fmt.Sprintf("%s/animals/%s", s.config.BaseURL, animal.ID),
		},
	})

	return toApplicationResponse(app), nil
}

// ListForAwg lists an organization's applications. Requires the
// manage-applications or view-applications capability.
func (s *ApplicationService) ListForAwg(user *models.User, awgID uuid.UUID, status *models.ApplicationStatus, page int) (*ApplicationListResponse, error) {
	_, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool {
		return c.CanManageApplications || c.CanViewApplications
	})
	if err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}

	apps, total, err := s.repo.GetByAwg(awgID, status, ManagementPageSize, (page-1)*ManagementPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	resp := &ApplicationListResponse{
		Applications: make([]ApplicationResponse, len(apps)),
		Total:        total,
		Page:         page,
		PageSize:     ManagementPageSize,
	}
	for i := range apps {
		resp.Applications[i] = *toApplicationResponse(&apps[i])
	}
	return resp, nil
}

// ListMine lists the caller's own applications
func (s *ApplicationService) ListMine(user *models.User) ([]ApplicationResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	profile, err := s.fostererRepo.GetByUserID(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []ApplicationResponse{}, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	apps, err := s.repo.GetByFosterer(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	out := make([]ApplicationResponse, len(apps))
	for i := range apps {
		out[i] = *toApplicationResponse(&apps[i])
	}
	return out, nil
}

// Get retrieves one application for review. Requires view or manage on the
// animal's organization.
func (s *ApplicationService) Get(user *models.User, id uuid.UUID) (*ApplicationResponse, error) {
	app, err := s.getWithAnimal(id)
	if err != nil {
		return nil, err
	}
	_, err = s.permissions.RequireCapability(user, app.Animal.AwgID, func(c CapabilitySet) bool {
		return c.CanManageApplications || c.CanViewApplications
	})
	if err != nil {
		return nil, err
	}
	return toApplicationResponse(app), nil
}

// Accept transitions a PENDING application to ACCEPTED and notifies the
// fosterer. Requires manage-applications.
func (s *ApplicationService) Accept(ctx context.Context, user *models.User, id uuid.UUID) (*ApplicationResponse, error) {
	app, err := s.getPendingForManager(user, id)
	if err != nil {
		return nil, err
	}

	app.Status = models.ApplicationStatusAccepted
	if err := s.repo.Update(app); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	s.notifyFosterer(ctx, app, notifications.TemplateApplicationAccepted, nil)
	return toApplicationResponse(app), nil
}

// Reject transitions a PENDING application to REJECTED with a coded reason
// and notifies the fosterer. Requires manage-applications.
func (s *ApplicationService) Reject(ctx context.Context, user *models.User, id uuid.UUID, req *RejectApplicationRequest) (*ApplicationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Reason.IsValid() {
		return nil, apperrors.ErrInvalidRejectReason
	}

	app, err := s.getPendingForManager(user, id)
	if err != nil {
		return nil, err
	}

	reason := req.Reason
	app.Status = models.ApplicationStatusRejected
	app.RejectReason = &reason
	app.RejectReasonDetail = req.Detail
	if err := s.repo.Update(app); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	s.notifyFosterer(ctx, app, notifications.TemplateApplicationRejected, map[string]interface{}{
		"Reason":       reason.Label(),
		"ReasonDetail": req.Detail,
	})
	return toApplicationResponse(app), nil
}

// getPendingForManager loads an application, checks the caller can manage
// applications for the animal's org, and enforces the PENDING precondition.
func (s *ApplicationService) getPendingForManager(user *models.User, id uuid.UUID) (*models.FosterApplication, error) {
	app, err := s.getWithAnimal(id)
	if err != nil {
		return nil, err
	}
	_, err = s.permissions.RequireCapability(user, app.Animal.AwgID, func(c CapabilitySet) bool {
		return c.CanManageApplications
	})
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrInvalidAction
	}
	return app, nil
}

func (s *ApplicationService) getWithAnimal(id uuid.UUID) (*models.FosterApplication, error) {
	app, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app.Animal == nil {
		return nil, apperrors.ErrAnimalNotFound
	}
	return app, nil
}

func (s *ApplicationService) notifyFosterer(ctx context.Context, app *models.FosterApplication, template notifications.Template, extra map[string]interface{}) {
	if app.Fosterer == nil || app.Fosterer.Email == "" {
		return
	}
	tmplCtx := map[string]interface{}{
		"FostererName": app.Fosterer.Firstname,
		"AnimalName":   app.Animal.Name,
	}
	if app.Animal.Awg != nil {
		tmplCtx["AwgName"] = app.Animal.Awg.Name
	}
	for k, v := range extra {
		tmplCtx[k] = v
	}
	s.notifier.Notify(ctx, notifications.Message{
		Template: template,
		To: []notifications.Recipient{{
			Email: app.Fosterer.Email,
			Name:  app.Fosterer.Firstname,
		}},
		Context: tmplCtx,
	})
}

// orgRecipients resolves who gets told about a new application: the
// organization's contact address, falling back to the internal list.
func (s *ApplicationService) orgRecipients(animal *models.Animal) []notifications.Recipient {
	if animal.Awg != nil && animal.Awg.Email != "" {
		return []notifications.Recipient{{Email: animal.Awg.Email, Name: animal.Awg.Name}}
	}
	return internalRecipients(s.config)
}

func toApplicationResponse(app *models.FosterApplication) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:                 app.ID,
		AnimalID:           app.AnimalID,
		FostererID:         app.FostererID,
		Status:             app.Status,
		RejectReason:       app.RejectReason,
		RejectReasonDetail: app.RejectReasonDetail,
		SubmittedOn:        app.SubmittedOn.Format(time.RFC3339),
	}
	if app.RejectReason != nil {
		resp.RejectReasonLabel = app.RejectReason.Label()
	}
	if app.Animal != nil {
		resp.AnimalName = app.Animal.Name
		if app.Animal.Awg != nil {
			resp.AwgName = app.Animal.Awg.Name
		}
	}
	if app.Fosterer != nil {
		resp.FostererName = app.Fosterer.Firstname + " " + app.Fosterer.Lastname
		resp.FostererEmail = app.Fosterer.Email
	}
	return resp
}
