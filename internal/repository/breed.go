package repository

import (
	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BreedRepository handles database operations for breeds
type BreedRepository struct {
	db *gorm.DB
}

// NewBreedRepository creates a new breed repository
func NewBreedRepository(db *gorm.DB) *BreedRepository {
	return &BreedRepository{db: db}
}

// Create creates a new breed
func (r *BreedRepository) Create(breed *models.Breed) error {
	return r.db.Create(breed).Error
}

// Upsert inserts a breed or leaves the existing row alone on slug conflict.
// Used by the seed loader so re-runs are idempotent.
func (r *BreedRepository) Upsert(breed *models.Breed) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(breed).Error
}

// GetByID retrieves a breed by ID
func (r *BreedRepository) GetByID(id uuid.UUID) (*models.Breed, error) {
	var breed models.Breed
	err := r.db.First(&breed, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &breed, nil
}

// GetBySlug retrieves a breed by its slug
func (r *BreedRepository) GetBySlug(slug string) (*models.Breed, error) {
	var breed models.Breed
	err := r.db.First(&breed, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &breed, nil
}

// GetByType retrieves all breeds of an animal type, sorted by name
func (r *BreedRepository) GetByType(animalType models.AnimalType) ([]models.Breed, error) {
	var breeds []models.Breed
	err := r.db.Where("animal_type = ?", animalType).Order("name ASC").Find(&breeds).Error
	if err != nil {
		return nil, err
	}
	return breeds, nil
}

// GetBySlugs retrieves the breeds matching the given slugs
func (r *BreedRepository) GetBySlugs(slugs []string) ([]models.Breed, error) {
	var breeds []models.Breed
	err := r.db.Where("slug IN ?", slugs).Order("name ASC").Find(&breeds).Error
	if err != nil {
		return nil, err
	}
	return breeds, nil
}
