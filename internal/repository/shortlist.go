package repository

import (
	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShortListRepository handles database operations for animal shortlists
type ShortListRepository struct {
	db *gorm.DB
}

// NewShortListRepository creates a new shortlist repository
func NewShortListRepository(db *gorm.DB) *ShortListRepository {
	return &ShortListRepository{db: db}
}

// Create adds an animal to a user's shortlist
func (r *ShortListRepository) Create(entry *models.AnimalShortList) error {
	return r.db.Create(entry).Error
}

// Get retrieves a single shortlist entry
func (r *ShortListRepository) Get(userID, animalID uuid.UUID) (*models.AnimalShortList, error) {
	var entry models.AnimalShortList
	err := r.db.First(&entry, "user_id = ? AND animal_id = ?", userID, animalID).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes an animal from a user's shortlist
func (r *ShortListRepository) Delete(userID, animalID uuid.UUID) error {
	return r.db.Delete(&models.AnimalShortList{}, "user_id = ? AND animal_id = ?", userID, animalID).Error
}

// GetAnimalIDsForUser returns the ids of every animal the user has shortlisted
func (r *ShortListRepository) GetAnimalIDsForUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.AnimalShortList{}).
		Where("user_id = ?", userID).
		Pluck("animal_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
