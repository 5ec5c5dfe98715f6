package repository

import (
	"time"

	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedSearchRepository handles database operations for saved searches
type SavedSearchRepository struct {
	db *gorm.DB
}

// NewSavedSearchRepository creates a new saved search repository
func NewSavedSearchRepository(db *gorm.DB) *SavedSearchRepository {
	return &SavedSearchRepository{db: db}
}

// Create creates a new saved search
func (r *SavedSearchRepository) Create(search *models.SavedSearch) error {
	return r.db.Create(search).Error
}

// GetByID retrieves a saved search by ID
func (r *SavedSearchRepository) GetByID(id uuid.UUID) (*models.SavedSearch, error) {
	var search models.SavedSearch
	err := r.db.Preload("Breed").First(&search, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &search, nil
}

// GetByUser lists a user's saved searches, newest first
func (r *SavedSearchRepository) GetByUser(userID uuid.UUID) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	err := r.db.
		Preload("Breed").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&searches).Error
	if err != nil {
		return nil, err
	}
	return searches, nil
}

// GetNotifiable lists every search with notifications enabled, with its owner
// loaded. The digest filters due-ness in memory via IsReadyToCheck.
func (r *SavedSearchRepository) GetNotifiable() ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	err := r.db.
		Preload("User").
		Preload("Breed").
		Where("is_notifications_enabled = ?", true).
		Order("created_at ASC").
		Find(&searches).Error
	if err != nil {
		return nil, err
	}
	return searches, nil
}

// Update updates a saved search
func (r *SavedSearchRepository) Update(search *models.SavedSearch) error {
	return r.db.Save(search).Error
}

// MarkChecked advances last_checked_at. It runs as its own statement so the
// digest can persist the watermark before attempting delivery.
func (r *SavedSearchRepository) MarkChecked(id uuid.UUID, checkedAt time.Time) error {
	return r.db.Model(&models.SavedSearch{}).
		Where("id = ?", id).
		Update("last_checked_at", checkedAt).Error
}

// Delete deletes a saved search
func (r *SavedSearchRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SavedSearch{}, "id = ?", id).Error
}
