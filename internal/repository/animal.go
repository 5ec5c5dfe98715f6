package repository

import (
	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnimalRepository handles database operations for animals
type AnimalRepository struct {
	db *gorm.DB
}

// NewAnimalRepository creates a new animal repository
func NewAnimalRepository(db *gorm.DB) *AnimalRepository {
	return &AnimalRepository{db: db}
}

// Create creates a new animal
func (r *AnimalRepository) Create(animal *models.Animal) error {
	return r.db.Create(animal).Error
}

// GetByID retrieves an animal by ID with its organization and breeds
func (r *AnimalRepository) GetByID(id uuid.UUID) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.
		Preload("Awg").
		Preload("PrimaryBreed").
		Preload("SecondaryBreed").
		First(&animal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// GetByIDForAwg retrieves an animal scoped to an organization
func (r *AnimalRepository) GetByIDForAwg(id, awgID uuid.UUID) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.
		Preload("Awg").
		First(&animal, "id = ? AND awg_id = ?", id, awgID).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// GetByIDs retrieves animals by id, preserving no particular order
func (r *AnimalRepository) GetByIDs(ids []uuid.UUID) ([]models.Animal, error) {
	var animals []models.Animal
	err := r.db.
		Preload("Awg").
		Preload("PrimaryBreed").
		Preload("SecondaryBreed").
		Where("id IN ?", ids).
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

// ListByAwg lists an organization's animals regardless of publish state,
// newest first, with pagination
func (r *AnimalRepository) ListByAwg(awgID uuid.UUID, limit, offset int) ([]models.Animal, int64, error) {
	var animals []models.Animal
	var total int64

	query := r.db.Model(&models.Animal{}).Where("awg_id = ?", awgID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.
		Preload("PrimaryBreed").
		Preload("SecondaryBreed").
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&animals).Error
	if err != nil {
		return nil, 0, err
	}
	return animals, total, nil
}

// Update updates an animal
func (r *AnimalRepository) Update(animal *models.Animal) error {
	return r.db.Save(animal).Error
}

// Delete deletes an animal
func (r *AnimalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Animal{}, "id = ?", id).Error
}

// AddImage attaches an additional photo to an animal
func (r *AnimalRepository) AddImage(image *models.AnimalImage) error {
	return r.db.Create(image).Error
}

// GetImages lists an animal's additional photos
func (r *AnimalRepository) GetImages(animalID uuid.UUID) ([]models.AnimalImage, error) {
	var images []models.AnimalImage
	err := r.db.Where("animal_id = ?", animalID).Order("created_at").Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// DeleteImage removes an additional photo
func (r *AnimalRepository) DeleteImage(id uuid.UUID) error {
	return r.db.Delete(&models.AnimalImage{}, "id = ?", id).Error
}
