package repository

import (
	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AwgRepository handles database operations for animal welfare groups
type AwgRepository struct {
	db *gorm.DB
}

// NewAwgRepository creates a new awg repository
func NewAwgRepository(db *gorm.DB) *AwgRepository {
	return &AwgRepository{db: db}
}

// Create creates a new organization
func (r *AwgRepository) Create(awg *models.Awg) error {
	return r.db.Create(awg).Error
}

// CreateWithCreatorMember creates an organization and its first member in one
// transaction so a failed member insert never leaves an ownerless org behind.
func (r *AwgRepository) CreateWithCreatorMember(awg *models.Awg, member *models.AwgMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(awg).Error; err != nil {
			return err
		}
		member.AwgID = awg.ID
		return tx.Create(member).Error
	})
}

// GetByID retrieves an organization by ID
func (r *AwgRepository) GetByID(id uuid.UUID) (*models.Awg, error) {
	var awg models.Awg
	err := r.db.First(&awg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &awg, nil
}

// GetPublishedByID retrieves a publicly visible organization by ID
func (r *AwgRepository) GetPublishedByID(id uuid.UUID) (*models.Awg, error) {
	var awg models.Awg
	err := r.db.First(&awg, "id = ? AND status = ?", id, models.AwgStatusPublished).Error
	if err != nil {
		return nil, err
	}
	return &awg, nil
}

// GetAll retrieves organizations with pagination, optionally filtered by status
func (r *AwgRepository) GetAll(status *models.AwgStatus, limit, offset int) ([]models.Awg, int64, error) {
	var awgs []models.Awg
	var total int64

	query := r.db.Model(&models.Awg{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name ASC, id ASC").Limit(limit).Offset(offset).Find(&awgs).Error; err != nil {
		return nil, 0, err
	}
	return awgs, total, nil
}

// GetForUser retrieves the organizations a user is a member of
func (r *AwgRepository) GetForUser(userID uuid.UUID) ([]models.Awg, error) {
	var awgs []models.Awg
	err := r.db.
		Joins("JOIN awg_members ON awg_members.awg_id = awgs.id").
		Where("awg_members.user_id = ?", userID).
		Order("awgs.name ASC").
		Find(&awgs).Error
	if err != nil {
		return nil, err
	}
	return awgs, nil
}

// Update updates an organization
func (r *AwgRepository) Update(awg *models.Awg) error {
	return r.db.Save(awg).Error
}

// Delete deletes an organization
func (r *AwgRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Awg{}, "id = ?", id).Error
}
