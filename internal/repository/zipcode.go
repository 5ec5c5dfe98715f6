package repository

import (
	"animal-rescue-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ZipCodeRepository handles database operations for the zip code gazetteer
type ZipCodeRepository struct {
	db *gorm.DB
}

// NewZipCodeRepository creates a new zip code repository
func NewZipCodeRepository(db *gorm.DB) *ZipCodeRepository {
	return &ZipCodeRepository{db: db}
}

// GetByZip retrieves a zip code entry
func (r *ZipCodeRepository) GetByZip(zip string) (*models.ZipCode, error) {
	var zc models.ZipCode
	err := r.db.First(&zc, "zip_code = ?", zip).Error
	if err != nil {
		return nil, err
	}
	return &zc, nil
}

// UpsertBatch inserts zip code rows, replacing coordinates on conflict.
// Used by the seed loader.
func (r *ZipCodeRepository) UpsertBatch(zips []models.ZipCode) error {
	if len(zips) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "zip_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude"}),
	}).CreateInBatches(zips, 500).Error
}
