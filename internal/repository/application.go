package repository

import (
	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationRepository handles database operations for foster applications
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new application. The unique (fosterer, animal) index
// surfaces duplicates as a constraint violation.
func (r *ApplicationRepository) Create(app *models.FosterApplication) error {
	return r.db.Create(app).Error
}

// GetByID retrieves an application with its fosterer and animal
func (r *ApplicationRepository) GetByID(id uuid.UUID) (*models.FosterApplication, error) {
	var app models.FosterApplication
	err := r.db.
		Preload("Fosterer").
		Preload("Fosterer.References", orderByPosition).
		Preload("Fosterer.ExistingPets", orderByPosition).
		Preload("Fosterer.PeopleInHome", orderByPosition).
		Preload("Animal").
		Preload("Animal.Awg").
		First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByFostererAndAnimal retrieves a specific fosterer's application for an animal
func (r *ApplicationRepository) GetByFostererAndAnimal(fostererID, animalID uuid.UUID) (*models.FosterApplication, error) {
	var app models.FosterApplication
	err := r.db.First(&app, "fosterer_id = ? AND animal_id = ?", fostererID, animalID).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByAwg lists an organization's applications with pagination, optionally
// filtered by status, newest first
func (r *ApplicationRepository) GetByAwg(awgID uuid.UUID, status *models.ApplicationStatus, limit, offset int) ([]models.FosterApplication, int64, error) {
	var apps []models.FosterApplication
	var total int64

	query := r.db.Model(&models.FosterApplication{}).
		Joins("JOIN animals ON animals.id = foster_applications.animal_id").
		Where("animals.awg_id = ?", awgID)
	if status != nil {
		query = query.Where("foster_applications.status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.
		Preload("Fosterer").
		Preload("Animal").
		Order("foster_applications.submitted_on DESC, foster_applications.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

// GetByFosterer lists a fosterer's own applications, newest first
func (r *ApplicationRepository) GetByFosterer(fostererID uuid.UUID) ([]models.FosterApplication, error) {
	var apps []models.FosterApplication
	err := r.db.
		Preload("Animal").
		Preload("Animal.Awg").
		Where("fosterer_id = ?", fostererID).
		Order("submitted_on DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Update updates an application
func (r *ApplicationRepository) Update(app *models.FosterApplication) error {
	return r.db.Save(app).Error
}
