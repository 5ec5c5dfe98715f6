package repository

import (
	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FostererRepository handles database operations for fosterer profiles and
// their positional child rows
type FostererRepository struct {
	db *gorm.DB
}

// NewFostererRepository creates a new fosterer repository
func NewFostererRepository(db *gorm.DB) *FostererRepository {
	return &FostererRepository{db: db}
}

// Create creates a new fosterer profile
func (r *FostererRepository) Create(profile *models.FostererProfile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by ID with all child rows
func (r *FostererRepository) GetByID(id uuid.UUID) (*models.FostererProfile, error) {
	var profile models.FostererProfile
	err := r.preloaded().First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUserID retrieves a user's profile with all child rows
func (r *FostererRepository) GetByUserID(userID uuid.UUID) (*models.FostererProfile, error) {
	var profile models.FostererProfile
	err := r.preloaded().First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *FostererRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("ExistingPets", orderByPosition).
		Preload("References", orderByPosition).
		Preload("PeopleInHome", orderByPosition)
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Update updates a profile's scalar fields
func (r *FostererRepository) Update(profile *models.FostererProfile) error {
	return r.db.Omit("ExistingPets", "References", "PeopleInHome").Save(profile).Error
}

// ReplaceExistingPets atomically swaps the profile's existing-pet rows.
// A stage submission always rewrites its whole formset.
func (r *FostererRepository) ReplaceExistingPets(profileID uuid.UUID, pets []models.FostererExistingPet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.FostererExistingPet{}, "profile_id = ?", profileID).Error; err != nil {
			return err
		}
		for i := range pets {
			pets[i].ProfileID = profileID
			pets[i].Position = i
		}
		if len(pets) == 0 {
			return nil
		}
		return tx.Create(&pets).Error
	})
}

// ReplaceReferences atomically swaps the profile's reference rows
func (r *FostererRepository) ReplaceReferences(profileID uuid.UUID, refs []models.FostererReference) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.FostererReference{}, "profile_id = ?", profileID).Error; err != nil {
			return err
		}
		for i := range refs {
			refs[i].ProfileID = profileID
			refs[i].Position = i
		}
		if len(refs) == 0 {
			return nil
		}
		return tx.Create(&refs).Error
	})
}

// ReplacePeopleInHome atomically swaps the profile's people-in-home rows
func (r *FostererRepository) ReplacePeopleInHome(profileID uuid.UUID, people []models.FostererPersonInHome) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.FostererPersonInHome{}, "profile_id = ?", profileID).Error; err != nil {
			return err
		}
		for i := range people {
			people[i].ProfileID = profileID
			people[i].Position = i
		}
		if len(people) == 0 {
			return nil
		}
		return tx.Create(&people).Error
	})
}
