package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// BrowsePageSize is the default page size for the public browse grid.
	BrowsePageSize = 21
	// BrowseMaxPageSize caps the limit override.
	BrowseMaxPageSize = 100
	// DefaultRadiusMiles applies when a zip is given without a radius.
	DefaultRadiusMiles = 50
)

// BrowseService handles the public animal search and detail pages
type BrowseService struct {
	animalRepo    repository.AnimalRepositoryInterface
	zipRepo       repository.ZipCodeRepositoryInterface
	shortlistRepo repository.ShortListRepositoryInterface
}

// NewBrowseService creates a new browse service
func NewBrowseService(animalRepo repository.AnimalRepositoryInterface, zipRepo repository.ZipCodeRepositoryInterface, shortlistRepo repository.ShortListRepositoryInterface) *BrowseService {
	return &BrowseService{
		animalRepo:    animalRepo,
		zipRepo:       zipRepo,
		shortlistRepo: shortlistRepo,
	}
}

// BrowseRequest carries the raw public search parameters. String enum fields
// accept any case and are normalized before matching.
type BrowseRequest struct {
	AnimalType string `form:"animal_type"`
	Zip        string `form:"zip"`
	// Radius in miles; "any" or empty disables the radius bound when no zip
	// is set, otherwise the default applies.
	Radius string `form:"radius"`

	Age  string `form:"age"`
	Sex  string `form:"sex"`
	Size string `form:"size"`

	Breed string     `form:"breed"`
	AwgID *uuid.UUID `form:"awg_id"`

	EuthDateWithinDays *int `form:"euth_date_within_days"`

	GoodWithCats bool `form:"goodwith_cats"`
	GoodWithDogs bool `form:"goodwith_dogs"`
	GoodWithKids bool `form:"goodwith_kids"`
	Purebred     bool `form:"purebred"`

	// Shortlist restricts results to the caller's shortlist. Ignored for
	// anonymous requests rather than failing them.
	Shortlist bool `form:"shortlist"`

	Sort  string `form:"sort"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

// BrowseAnimal is the public card/detail view of one animal
type BrowseAnimal struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	AnimalType models.AnimalType `json:"animal_type"`

	Breeds string            `json:"breeds"`
	Sex    models.AnimalSex  `json:"sex"`
	Size   models.AnimalSize `json:"size"`
	Age    models.AnimalAge  `json:"age"`

	Description string `json:"description,omitempty"`

	BehaviourDogs models.BehaviourGrade `json:"behaviour_dogs"`
	BehaviourCats models.BehaviourGrade `json:"behaviour_cats"`
	BehaviourKids models.BehaviourGrade `json:"behaviour_kids"`

	IsSpayedNeutered      bool `json:"is_spayed_neutered"`
	IsVaccinationsCurrent bool `json:"is_vaccinations_current"`
	IsSpecialNeeds        bool `json:"is_special_needs"`

	IsEuthListed bool       `json:"is_euth_listed"`
	EuthDate     *time.Time `json:"euth_date,omitempty"`

	PrimaryPhotoURL string `json:"primary_photo_url,omitempty"`

	AwgID   uuid.UUID `json:"awg_id"`
	AwgName string    `json:"awg_name,omitempty"`
	City    string    `json:"city,omitempty"`
	State   string    `json:"state,omitempty"`

	// DistanceMiles is present only when the search had a zip origin.
	DistanceMiles *float64 `json:"distance_miles,omitempty"`
	// IsShortlisted is present only for authenticated callers.
	IsShortlisted *bool `json:"is_shortlisted,omitempty"`

	FirstPublishedAt *time.Time `json:"first_published_at,omitempty"`
}

// BrowseResponse is one page of public search results
type BrowseResponse struct {
	Animals  []BrowseAnimal `json:"animals"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Search runs the public browse query. userID is Nil for anonymous callers.
func (s *BrowseService) Search(req *BrowseRequest, userID uuid.UUID) (*BrowseResponse, error) {
	criteria, page, pageSize, err := s.buildCriteria(req, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.animalRepo.Search(*criteria)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	var shortlisted map[uuid.UUID]bool
	if userID != uuid.Nil {
		ids, err := s.shortlistRepo.GetAnimalIDsForUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load shortlist: %w", err)
		}
		shortlisted = make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			shortlisted[id] = true
		}
	}

	resp := &BrowseResponse{
		Animals:  make([]BrowseAnimal, len(result.Results)),
		Total:    result.Total,
		Page:     page,
		PageSize: pageSize,
	}
	for i, r := range result.Results {
		resp.Animals[i] = *toBrowseAnimal(&r.Animal, r.DistanceMeters, shortlisted)
	}
	return resp, nil
}

// GetAnimal retrieves a single publicly visible animal
func (s *BrowseService) GetAnimal(id uuid.UUID, userID uuid.UUID) (*BrowseAnimal, error) {
	animal, err := s.animalRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to get animal: %w", err)
	}
	if !animal.IsCurrentlyPublished() {
		return nil, apperrors.ErrAnimalNotFound
	}

	var shortlisted map[uuid.UUID]bool
	if userID != uuid.Nil {
		if _, err := s.shortlistRepo.Get(userID, id); err == nil {
			shortlisted = map[uuid.UUID]bool{id: true}
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			shortlisted = map[uuid.UUID]bool{}
		} else {
			return nil, fmt.Errorf("failed to check shortlist: %w", err)
		}
	}
	return toBrowseAnimal(animal, nil, shortlisted), nil
}

// ListBreeds returns the breed slugs appearing on visible animals of a type,
// for populating the breed filter dropdown.
func (s *BrowseService) ListBreeds(animalType string) ([]string, error) {
	t := models.AnimalType(strings.ToUpper(animalType))
	if !t.IsValid() {
		return nil, apperrors.ErrInvalidAnimalType
	}
	slugs, err := s.animalRepo.ListDistinctBreedSlugs(t)
	if err != nil {
		return nil, fmt.Errorf("failed to list breeds: %w", err)
	}
	return slugs, nil
}

func (s *BrowseService) buildCriteria(req *BrowseRequest, userID uuid.UUID) (*repository.AnimalSearchCriteria, int, int, error) {
	animalType := models.AnimalType(strings.ToUpper(req.AnimalType))
	if req.AnimalType == "" {
		animalType = models.AnimalTypeDog
	}
	if !animalType.IsValid() {
		return nil, 0, 0, apperrors.ErrInvalidAnimalType
	}

	c := repository.AnimalSearchCriteria{
		AnimalType:   animalType,
		BreedSlug:    strings.ToLower(strings.TrimSpace(req.Breed)),
		AwgID:        req.AwgID,
		GoodWithCats: req.GoodWithCats,
		GoodWithDogs: req.GoodWithDogs,
		GoodWithKids: req.GoodWithKids,
		Purebred:     req.Purebred,
		Sort:         req.Sort,
	}

	if req.Zip != "" {
		zip, err := s.zipRepo.GetByZip(req.Zip)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, 0, apperrors.ErrInvalidZipCode
			}
			return nil, 0, 0, fmt.Errorf("failed to look up zip code: %w", err)
		}
		c.Origin = zip

		radius, err := parseRadius(req.Radius)
		if err != nil {
			return nil, 0, 0, err
		}
		c.RadiusMiles = radius
	}

	if req.Age != "" {
		age := models.AnimalAge(strings.ToUpper(req.Age))
		if !age.IsValid() {
			return nil, 0, 0, apperrors.NewValidationError("age", "unknown age band")
		}
		c.Age = &age
	}
	if req.Sex != "" {
		sex := models.AnimalSex(strings.ToUpper(req.Sex))
		if !sex.IsValid() {
			return nil, 0, 0, apperrors.NewValidationError("sex", "unknown sex")
		}
		c.Sex = &sex
	}
	if req.Size != "" {
		size := models.AnimalSize(strings.ToUpper(req.Size))
		if !size.IsValid() {
			return nil, 0, 0, apperrors.NewValidationError("size", "unknown size band")
		}
		c.Size = &size
	}

	if req.EuthDateWithinDays != nil {
		if *req.EuthDateWithinDays < 0 {
			return nil, 0, 0, apperrors.NewValidationError("euth_date_within_days", "must not be negative")
		}
		c.EuthDateWithinDays = req.EuthDateWithinDays
	}

	if req.Shortlist && userID != uuid.Nil {
		uid := userID
		c.ShortlistedBy = &uid
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := BrowsePageSize
	if req.Limit > 0 {
		pageSize = req.Limit
		if pageSize > BrowseMaxPageSize {
			pageSize = BrowseMaxPageSize
		}
	}
	c.Limit = pageSize
	c.Offset = (page - 1) * pageSize

	return &c, page, pageSize, nil
}

// parseRadius interprets the radius parameter: empty means the default,
// "any" disables the bound entirely.
func parseRadius(raw string) (*int, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "any" {
		return nil, nil
	}
	if raw == "" {
		r := DefaultRadiusMiles
		return &r, nil
	}
	var miles int
	if _, err := fmt.Sscanf(raw, "%d", &miles); err != nil || miles <= 0 {
		return nil, apperrors.NewValidationError("radius", "must be a positive number of miles or \"any\"")
	}
	return &miles, nil
}

func toBrowseAnimal(animal *models.Animal, distanceMeters *float64, shortlisted map[uuid.UUID]bool) *BrowseAnimal {
	out := &BrowseAnimal{
		ID:                    animal.ID,
		Name:                  animal.Name,
		AnimalType:            animal.AnimalType,
		Breeds:                animal.BreedsText(),
		Sex:                   animal.Sex,
		Size:                  animal.Size,
		Age:                   animal.Age,
		Description:           animal.Description,
		BehaviourDogs:         animal.BehaviourDogs,
		BehaviourCats:         animal.BehaviourCats,
		BehaviourKids:         animal.BehaviourKids,
		IsSpayedNeutered:      animal.IsSpayedNeutered,
		IsVaccinationsCurrent: animal.IsVaccinationsCurrent,
		IsSpecialNeeds:        animal.IsSpecialNeeds,
		IsEuthListed:          animal.IsEuthListed,
		EuthDate:              animal.EuthDate,
		PrimaryPhotoURL:       animal.PrimaryPhotoURL,
		AwgID:                 animal.AwgID,
		FirstPublishedAt:      animal.FirstPublishedAt,
	}
	if animal.Awg != nil {
		out.AwgName = animal.Awg.Name
		out.City = animal.Awg.City
		out.State = animal.Awg.State
	}
	if distanceMeters != nil {
		miles := *distanceMeters / models.MetersPerMile
		out.DistanceMiles = &miles
	}
	if shortlisted != nil {
		flag := shortlisted[animal.ID]
		out.IsShortlisted = &flag
	}
	return out
}
