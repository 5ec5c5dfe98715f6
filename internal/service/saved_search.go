package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"animal-rescue-backend/internal/config"
	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/logger"
	"animal-rescue-backend/internal/notifications"
	"animal-rescue-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DigestMaxAnimals caps how many animals one digest email lists.
const DigestMaxAnimals = 24

// SavedSearchService handles saved searches and the periodic digest run
type SavedSearchService struct {
	repo       repository.SavedSearchRepositoryInterface
	animalRepo repository.AnimalRepositoryInterface
	zipRepo    repository.ZipCodeRepositoryInterface
	breedRepo  repository.BreedRepositoryInterface
	notifier   *notifications.Notifier
	config     *config.Config
	validator  *validator.Validate

	// digestMu makes digest runs single-flight: a trigger while a run is
	// in progress fails fast instead of doubling notifications.
	digestMu sync.Mutex
}

// NewSavedSearchService creates a new saved search service
func NewSavedSearchService(repo repository.SavedSearchRepositoryInterface, animalRepo repository.AnimalRepositoryInterface, zipRepo repository.ZipCodeRepositoryInterface, breedRepo repository.BreedRepositoryInterface, notifier *notifications.Notifier, cfg *config.Config, validator *validator.Validate) *SavedSearchService {
	return &SavedSearchService{
		repo:       repo,
		animalRepo: animalRepo,
		zipRepo:    zipRepo,
		breedRepo:  breedRepo,
		notifier:   notifier,
		config:     cfg,
		validator:  validator,
	}
}

// SaveSearchRequest represents the request to create or update a saved search
type SaveSearchRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=64"`
	AnimalType string `json:"animal_type" validate:"required"`
	ZipCode    string `json:"zip_code" validate:"omitempty,len=5,numeric"`
	Radius     *int   `json:"radius,omitempty" validate:"omitempty,min=1"`

	Sex       string `json:"sex" validate:"omitempty"`
	Size      string `json:"size" validate:"omitempty"`
	Age       string `json:"age" validate:"omitempty"`
	BreedSlug string `json:"breed_slug" validate:"omitempty,max=100"`

	EuthDateWithinDays *int `json:"euth_date_within_days,omitempty" validate:"omitempty,min=0"`
	GoodwithCats       bool `json:"goodwith_cats"`
	GoodwithDogs       bool `json:"goodwith_dogs"`
	GoodwithKids       bool `json:"goodwith_kids"`

	IsNotificationsEnabled *bool `json:"is_notifications_enabled,omitempty"`
}

// SavedSearchResponse represents the response for saved search operations
type SavedSearchResponse struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	AnimalType models.AnimalType `json:"animal_type"`
	ZipCode    string            `json:"zip_code,omitempty"`
	Radius     *int              `json:"radius,omitempty"`

	Sex       *models.AnimalSex  `json:"sex,omitempty"`
	Size      *models.AnimalSize `json:"size,omitempty"`
	Age       *models.AnimalAge  `json:"age,omitempty"`
	BreedSlug string             `json:"breed_slug,omitempty"`

	EuthDateWithinDays *int `json:"euth_date_within_days,omitempty"`
	GoodwithCats       bool `json:"goodwith_cats"`
	GoodwithDogs       bool `json:"goodwith_dogs"`
	GoodwithKids       bool `json:"goodwith_kids"`

	IsNotificationsEnabled bool       `json:"is_notifications_enabled"`
	LastCheckedAt          *time.Time `json:"last_checked_at,omitempty"`
	CreatedAt              string     `json:"created_at"`
}

// DigestRunResponse summarizes one digest run
type DigestRunResponse struct {
	Checked  int `json:"checked"`
	Notified int `json:"notified"`
	Skipped  int `json:"skipped"`
}

// Create saves a new search for the user
func (s *SavedSearchService) Create(user *models.User, req *SaveSearchRequest) (*SavedSearchResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	search := &models.SavedSearch{UserID: user.ID, IsNotificationsEnabled: true}
	if err := s.apply(search, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(search); err != nil {
		return nil, fmt.Errorf("failed to create saved search: %w", err)
	}
	return s.toResponse(search), nil
}

// List lists the user's saved searches
func (s *SavedSearchService) List(user *models.User) ([]SavedSearchResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	searches, err := s.repo.GetByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	out := make([]SavedSearchResponse, len(searches))
	for i := range searches {
		out[i] = *s.toResponse(&searches[i])
	}
	return out, nil
}

// Update replaces a saved search's criteria. Owner only.
func (s *SavedSearchService) Update(user *models.User, id uuid.UUID, req *SaveSearchRequest) (*SavedSearchResponse, error) {
	search, err := s.getOwned(user, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(search, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(search); err != nil {
		return nil, fmt.Errorf("failed to update saved search: %w", err)
	}
	return s.toResponse(search), nil
}

// Delete removes a saved search. Owner only.
func (s *SavedSearchService) Delete(user *models.User, id uuid.UUID) error {
	search, err := s.getOwned(user, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(search.ID); err != nil {
		return fmt.Errorf("failed to delete saved search: %w", err)
	}
	return nil
}

// RunDigest checks every due saved search for newly published matches and
// emails the owners. Only one run may be in flight at a time. Each search's
// watermark advances before its email goes out, so a crashed run can miss a
// digest but never double-send one.
func (s *SavedSearchService) RunDigest(ctx context.Context, now time.Time) (*DigestRunResponse, error) {
	if !s.digestMu.TryLock() {
		return nil, apperrors.ErrDigestAlreadyRunning
	}
	defer s.digestMu.Unlock()

	log := logger.WithContext(ctx)
	searches, err := s.repo.GetNotifiable()
	if err != nil {
		return nil, fmt.Errorf("failed to load saved searches: %w", err)
	}

	resp := &DigestRunResponse{}
	for i := range searches {
		search := &searches[i]
		if !search.IsReadyToCheck(now) {
			resp.Skipped++
			continue
		}
		resp.Checked++

		// First check only establishes the baseline; nothing before it
		// counts as new.
		since := search.LastCheckedAt
		if err := s.repo.MarkChecked(search.ID, now); err != nil {
			log.WithField("saved_search", search.ID).
				Errorf("Failed to mark saved search checked: %v", err)
			continue
		}
		if since == nil {
			continue
		}

		if s.checkAndNotify(ctx, search, *since, now) {
			resp.Notified++
		}
	}
	return resp, nil
}

// checkAndNotify runs one search against its criteria and emails the owner
// when new animals surfaced. Returns whether an email went out.
func (s *SavedSearchService) checkAndNotify(ctx context.Context, search *models.SavedSearch, since, now time.Time) bool {
	log := logger.WithContext(ctx).WithField("saved_search", search.ID)

	criteria := repository.AnimalSearchCriteria{
		AnimalType:         search.AnimalType,
		Sex:                search.Sex,
		Size:               search.Size,
		Age:                search.Age,
		EuthDateWithinDays: search.EuthDateWithinDays,
		GoodWithCats:       search.GoodwithCats,
		GoodWithDogs:       search.GoodwithDogs,
		GoodWithKids:       search.GoodwithKids,
		PublishedSince:     &since,
		Sort:               repository.SortNewest,
		Limit:              DigestMaxAnimals,
		Now:                now,
	}
	if search.ZipCode != "" {
		criteria.Origin = &models.ZipCode{
			Zip:       search.ZipCode,
			Latitude:  search.Latitude,
			Longitude: search.Longitude,
		}
		criteria.RadiusMiles = search.Radius
	}
	if search.Breed != nil {
		criteria.BreedSlug = search.Breed.Slug
	}

	page, err := s.animalRepo.Search(criteria)
	if err != nil {
		log.Errorf("Saved search check failed: %v", err)
		return false
	}
	if page.Total == 0 || search.User == nil {
		return false
	}

	type digestAnimal struct {
		Name   string
		Breeds string
		URL    string
	}
	animals := make([]digestAnimal, 0, len(page.Results))
	for _, r := range page.Results {
		animals = append(animals, digestAnimal{
			Name:   r.Animal.Name,
			Breeds: r.Animal.BreedsText(),
			URL:    fmt.Sprintf("%s/animals/%s", s.config.BaseURL, r.Animal.ID),
		})
	}

	s.notifier.Notify(ctx, notifications.Message{
		Template: notifications.TemplateSavedSearchDigest,
		To: []notifications.Recipient{{
			Email: search.User.Email,
			Name:  search.User.Username,
		}},
		Context: map[string]interface{}{
			"Name":             search.User.Username,
			"SearchName":       search.Name,
			"NewCount":         int(page.Total),
			"AnimalTypePlural": strings.ToLower(search.AnimalType.Pluralize()),
			"Animals":          animals,
		},
	})
	return true
}

func (s *SavedSearchService) apply(search *models.SavedSearch, req *SaveSearchRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	animalType := models.AnimalType(strings.ToUpper(req.AnimalType))
	if !animalType.IsValid() {
		return apperrors.ErrInvalidAnimalType
	}
	search.Name = req.Name
	search.AnimalType = animalType

	search.ZipCode = ""
	search.Latitude = 0
	search.Longitude = 0
	search.Radius = nil
	if req.ZipCode != "" {
		zip, err := s.zipRepo.GetByZip(req.ZipCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvalidZipCode
			}
			return fmt.Errorf("failed to look up zip code: %w", err)
		}
		search.ZipCode = req.ZipCode
		search.Latitude = zip.Latitude
		search.Longitude = zip.Longitude
		search.Radius = req.Radius
	}

	search.Sex = nil
	if req.Sex != "" {
		sex := models.AnimalSex(strings.ToUpper(req.Sex))
		if !sex.IsValid() {
			return apperrors.NewValidationError("sex", "unknown sex")
		}
		search.Sex = &sex
	}
	search.Size = nil
	if req.Size != "" {
		size := models.AnimalSize(strings.ToUpper(req.Size))
		if !size.IsValid() {
			return apperrors.NewValidationError("size", "unknown size band")
		}
		search.Size = &size
	}
	search.Age = nil
	if req.Age != "" {
		age := models.AnimalAge(strings.ToUpper(req.Age))
		if !age.IsValid() {
			return apperrors.NewValidationError("age", "unknown age band")
		}
		search.Age = &age
	}

	search.BreedID = nil
	search.Breed = nil
	if req.BreedSlug != "" {
		breed, err := s.breedRepo.GetBySlug(strings.ToLower(req.BreedSlug))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBreedNotFound
			}
			return fmt.Errorf("failed to look up breed: %w", err)
		}
		search.BreedID = &breed.ID
		search.Breed = breed
	}

	search.EuthDateWithinDays = req.EuthDateWithinDays
	search.GoodwithCats = req.GoodwithCats
	search.GoodwithDogs = req.GoodwithDogs
	search.GoodwithKids = req.GoodwithKids
	if req.IsNotificationsEnabled != nil {
		search.IsNotificationsEnabled = *req.IsNotificationsEnabled
	}
	return nil
}

func (s *SavedSearchService) getOwned(user *models.User, id uuid.UUID) (*models.SavedSearch, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	search, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSavedSearchNotFound
		}
		return nil, fmt.Errorf("failed to get saved search: %w", err)
	}
	if search.UserID != user.ID && !user.IsStaff {
		return nil, apperrors.ErrSavedSearchNotFound
	}
	return search, nil
}

func (s *SavedSearchService) toResponse(search *models.SavedSearch) *SavedSearchResponse {
	resp := &SavedSearchResponse{
		ID:                     search.ID,
		Name:                   search.Name,
		AnimalType:             search.AnimalType,
		ZipCode:                search.ZipCode,
		Radius:                 search.Radius,
		Sex:                    search.Sex,
		Size:                   search.Size,
		Age:                    search.Age,
		EuthDateWithinDays:     search.EuthDateWithinDays,
		GoodwithCats:           search.GoodwithCats,
		GoodwithDogs:           search.GoodwithDogs,
		GoodwithKids:           search.GoodwithKids,
		IsNotificationsEnabled: search.IsNotificationsEnabled,
		LastCheckedAt:          search.LastCheckedAt,
		CreatedAt:              search.CreatedAt.Format(time.RFC3339),
	}
	if search.Breed != nil {
		resp.BreedSlug = search.Breed.Slug
	}
	return resp
}
