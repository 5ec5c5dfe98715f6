package service

import (
	"errors"
	"fmt"
	"time"

	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnimalService handles business logic for animal listings
type AnimalService struct {
	repo        repository.AnimalRepositoryInterface
	breedRepo   repository.BreedRepositoryInterface
	permissions *PermissionsService
	validator   *validator.Validate
}

// NewAnimalService creates a new animal service
func NewAnimalService(repo repository.AnimalRepositoryInterface, breedRepo repository.BreedRepositoryInterface, permissions *PermissionsService, validator *validator.Validate) *AnimalService {
	return &AnimalService{
		repo:        repo,
		breedRepo:   breedRepo,
		permissions: permissions,
		validator:   validator,
	}
}

// SaveAnimalRequest represents the request to create or update an animal
type SaveAnimalRequest struct {
	Name       string            `json:"name" validate:"required,min=1,max=100"`
	AnimalType models.AnimalType `json:"animal_type" validate:"required"`

	AwgInternalID string `json:"awg_internal_id" validate:"max=64"`
	AwgProfileURL string `json:"awg_profile_url" validate:"omitempty,url,max=255"`

	PrimaryBreedID   uuid.UUID  `json:"primary_breed_id" validate:"required"`
	SecondaryBreedID *uuid.UUID `json:"secondary_breed_id,omitempty"`
	IsMixedBreed     bool       `json:"is_mixed_breed"`
	IsUnknownBreed   bool       `json:"is_unknown_breed"`

	Sex  models.AnimalSex  `json:"sex" validate:"required"`
	Size models.AnimalSize `json:"size" validate:"required"`
	Age  models.AnimalAge  `json:"age" validate:"required"`

	Description string `json:"description" validate:"max=10000"`

	BehaviourDogs models.BehaviourGrade `json:"behaviour_dogs"`
	BehaviourCats models.BehaviourGrade `json:"behaviour_cats"`
	BehaviourKids models.BehaviourGrade `json:"behaviour_kids"`

	IsSpayedNeutered      bool   `json:"is_spayed_neutered"`
	IsVaccinationsCurrent bool   `json:"is_vaccinations_current"`
	VaccinationsNotes     string `json:"vaccinations_notes" validate:"max=5000"`
	IsSpecialNeeds        bool   `json:"is_special_needs"`
	SpecialNeeds          string `json:"special_needs" validate:"max=5000"`

	IsEuthListed bool       `json:"is_euth_listed"`
	EuthDate     *time.Time `json:"euth_date,omitempty"`

	PrimaryPhotoURL string `json:"primary_photo_url" validate:"omitempty,url,max=255"`
}

// AnimalResponse represents the management view of an animal
type AnimalResponse struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	AnimalType models.AnimalType `json:"animal_type"`
	AwgID      uuid.UUID         `json:"awg_id"`

	AwgInternalID string `json:"awg_internal_id,omitempty"`
	AwgProfileURL string `json:"awg_profile_url,omitempty"`

	PrimaryBreedID   uuid.UUID  `json:"primary_breed_id"`
	SecondaryBreedID *uuid.UUID `json:"secondary_breed_id,omitempty"`
	Breeds           string     `json:"breeds"`
	IsMixedBreed     bool       `json:"is_mixed_breed"`
	IsUnknownBreed   bool       `json:"is_unknown_breed"`

	Sex  models.AnimalSex  `json:"sex"`
	Size models.AnimalSize `json:"size"`
	Age  models.AnimalAge  `json:"age"`

	Description string `json:"description,omitempty"`

	BehaviourDogs models.BehaviourGrade `json:"behaviour_dogs"`
	BehaviourCats models.BehaviourGrade `json:"behaviour_cats"`
	BehaviourKids models.BehaviourGrade `json:"behaviour_kids"`

	IsSpayedNeutered      bool   `json:"is_spayed_neutered"`
	IsVaccinationsCurrent bool   `json:"is_vaccinations_current"`
	VaccinationsNotes     string `json:"vaccinations_notes,omitempty"`
	IsSpecialNeeds        bool   `json:"is_special_needs"`
	SpecialNeeds          string `json:"special_needs,omitempty"`

	IsEuthListed bool       `json:"is_euth_listed"`
	EuthDate     *time.Time `json:"euth_date,omitempty"`

	PrimaryPhotoURL  string     `json:"primary_photo_url,omitempty"`
	IsPublished      bool       `json:"is_published"`
	FirstPublishedAt *time.Time `json:"first_published_at,omitempty"`

	CreatedAt string `json:"created_at"`
}

// Create lists a new animal for an organization. Requires manage-animals.
// New animals always start unpublished.
func (s *AnimalService) Create(user *models.User, awgID uuid.UUID, req *SaveAnimalRequest) (*AnimalResponse, error) {
	if _, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool { return c.CanManageAnimals }); err != nil {
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	animal := &models.Animal{AwgID: awgID}
	applyAnimalRequest(animal, req)

	if err := s.repo.Create(animal); err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}
	return s.reload(animal.ID)
}

// Update replaces an animal's editable fields. Requires manage-animals.
// Publication healing runs on save, so removing the primary photo of a
// published animal unpublishes it.
func (s *AnimalService) Update(user *models.User, awgID, animalID uuid.UUID, req *SaveAnimalRequest) (*AnimalResponse, error) {
	if _, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool { return c.CanManageAnimals }); err != nil {
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	animal, err := s.getInAwg(animalID, awgID)
	if err != nil {
		return nil, err
	}
	applyAnimalRequest(animal, req)

	if err := s.repo.Update(animal); err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}
	return s.reload(animal.ID)
}

// SetPublished publishes or unpublishes an animal. Requires manage-animals.
// Publishing an animal without a primary photo fails.
func (s *AnimalService) SetPublished(user *models.User, awgID, animalID uuid.UUID, published bool) (*AnimalResponse, error) {
	if _, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool { return c.CanManageAnimals }); err != nil {
		return nil, err
	}

	animal, err := s.getInAwg(animalID, awgID)
	if err != nil {
		return nil, err
	}
	if published && !animal.CanBePublished() {
		return nil, apperrors.ErrAnimalCannotBePublished
	}
	animal.IsPublished = published
	if err := s.repo.Update(animal); err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}
	return s.reload(animal.ID)
}

// Get retrieves one of the organization's animals. Requires manage-animals.
func (s *AnimalService) Get(user *models.User, awgID, animalID uuid.UUID) (*AnimalResponse, error) {
	if _, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool { return c.CanManageAnimals }); err != nil {
		return nil, err
	}
	if _, err := s.getInAwg(animalID, awgID); err != nil {
		return nil, err
	}
	return s.reload(animalID)
}

// AnimalListResponse represents a paginated console listing of animals
type AnimalListResponse struct {
	Animals  []AnimalResponse `json:"animals"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// List lists the organization's animals, published or not, for the console
func (s *AnimalService) List(user *models.User, awgID uuid.UUID, page int) (*AnimalListResponse, error) {
	if _, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool { return c.CanManageAnimals }); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	animals, total, err := s.repo.ListByAwg(awgID, ManagementPageSize, (page-1)*ManagementPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	resp := &AnimalListResponse{
		Animals:  make([]AnimalResponse, len(animals)),
		Total:    total,
		Page:     page,
		PageSize: ManagementPageSize,
	}
	for i := range animals {
		resp.Animals[i] = *toAnimalResponse(&animals[i])
	}
	return resp, nil
}

// Delete removes an animal listing. Requires manage-animals.
func (s *AnimalService) Delete(user *models.User, awgID, animalID uuid.UUID) error {
	if _, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool { return c.CanManageAnimals }); err != nil {
		return err
	}
	animal, err := s.getInAwg(animalID, awgID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(animal.ID); err != nil {
		return fmt.Errorf("failed to delete animal: %w", err)
	}
	return nil
}

// AddImage attaches an additional photo. Requires manage-animals.
func (s *AnimalService) AddImage(user *models.User, awgID, animalID uuid.UUID, photoURL string) (*models.AnimalImage, error) {
	if _, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool { return c.CanManageAnimals }); err != nil {
		return nil, err
	}
	if _, err := s.getInAwg(animalID, awgID); err != nil {
		return nil, err
	}
	image := &models.AnimalImage{AnimalID: animalID, PhotoURL: photoURL}
	if err := s.validator.Var(photoURL, "required,url,max=255"); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.repo.AddImage(image); err != nil {
		return nil, fmt.Errorf("failed to add image: %w", err)
	}
	return image, nil
}

func (s *AnimalService) validateRequest(req *SaveAnimalRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.AnimalType.IsValid() {
		return apperrors.ErrInvalidAnimalType
	}
	if !req.Sex.IsValid() || !req.Size.IsValid() || !req.Age.IsValid() {
		return apperrors.NewValidationError("animal", "invalid sex, size or age value")
	}
	for _, g := range []models.BehaviourGrade{req.BehaviourDogs, req.BehaviourCats, req.BehaviourKids} {
		if g != "" && !g.IsValid() {
			return apperrors.NewValidationError("behaviour", "invalid behaviour grade")
		}
	}
	if _, err := s.breedRepo.GetByID(req.PrimaryBreedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBreedNotFound
		}
		return fmt.Errorf("failed to verify breed: %w", err)
	}
	if req.SecondaryBreedID != nil {
		if _, err := s.breedRepo.GetByID(*req.SecondaryBreedID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBreedNotFound
			}
			return fmt.Errorf("failed to verify breed: %w", err)
		}
	}
	return nil
}

func (s *AnimalService) getInAwg(animalID, awgID uuid.UUID) (*models.Animal, error) {
	animal, err := s.repo.GetByIDForAwg(animalID, awgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to get animal: %w", err)
	}
	return animal, nil
}

func (s *AnimalService) reload(id uuid.UUID) (*AnimalResponse, error) {
	animal, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload animal: %w", err)
	}
	return toAnimalResponse(animal), nil
}

func applyAnimalRequest(animal *models.Animal, req *SaveAnimalRequest) {
	animal.Name = req.Name
	animal.AnimalType = req.AnimalType
	animal.AwgInternalID = req.AwgInternalID
	animal.AwgProfileURL = req.AwgProfileURL
	animal.PrimaryBreedID = req.PrimaryBreedID
	animal.SecondaryBreedID = req.SecondaryBreedID
	animal.IsMixedBreed = req.IsMixedBreed
	animal.IsUnknownBreed = req.IsUnknownBreed
	animal.Sex = req.Sex
	animal.Size = req.Size
	animal.Age = req.Age
	animal.Description = req.Description
	animal.BehaviourDogs = defaultGrade(req.BehaviourDogs)
	animal.BehaviourCats = defaultGrade(req.BehaviourCats)
	animal.BehaviourKids = defaultGrade(req.BehaviourKids)
	animal.IsSpayedNeutered = req.IsSpayedNeutered
	animal.IsVaccinationsCurrent = req.IsVaccinationsCurrent
	animal.VaccinationsNotes = req.VaccinationsNotes
	animal.IsSpecialNeeds = req.IsSpecialNeeds
	animal.SpecialNeeds = req.SpecialNeeds
	animal.IsEuthListed = req.IsEuthListed
	animal.EuthDate = req.EuthDate
	animal.PrimaryPhotoURL = req.PrimaryPhotoURL
}

func defaultGrade(g models.BehaviourGrade) models.BehaviourGrade {
	if g == "" {
		return models.BehaviourNotTested
	}
	return g
}

func toAnimalResponse(animal *models.Animal) *AnimalResponse {
	return &AnimalResponse{
		ID:                    animal.ID,
		Name:                  animal.Name,
		AnimalType:            animal.AnimalType,
		AwgID:                 animal.AwgID,
		AwgInternalID:         animal.AwgInternalID,
		AwgProfileURL:         animal.AwgProfileURL,
		PrimaryBreedID:        animal.PrimaryBreedID,
		SecondaryBreedID:      animal.SecondaryBreedID,
		Breeds:                animal.BreedsText(),
		IsMixedBreed:          animal.IsMixedBreed,
		IsUnknownBreed:        animal.IsUnknownBreed,
		Sex:                   animal.Sex,
		Size:                  animal.Size,
		Age:                   animal.Age,
		Description:           animal.Description,
		BehaviourDogs:         animal.BehaviourDogs,
		BehaviourCats:         animal.BehaviourCats,
		BehaviourKids:         animal.BehaviourKids,
		IsSpayedNeutered:      animal.IsSpayedNeutered,
		IsVaccinationsCurrent: animal.IsVaccinationsCurrent,
		VaccinationsNotes:     animal.VaccinationsNotes,
		IsSpecialNeeds:        animal.IsSpecialNeeds,
		SpecialNeeds:          animal.SpecialNeeds,
		IsEuthListed:          animal.IsEuthListed,
		EuthDate:              animal.EuthDate,
		PrimaryPhotoURL:       animal.PrimaryPhotoURL,
		IsPublished:           animal.IsPublished,
		FirstPublishedAt:      animal.FirstPublishedAt,
		CreatedAt:             animal.CreatedAt.Format(time.RFC3339),
	}
}
