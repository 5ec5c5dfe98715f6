package repository

import (
	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for organization members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new membership
func (r *MemberRepository) Create(member *models.AwgMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a membership by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.AwgMember, error) {
	var member models.AwgMember
	err := r.db.Preload("User").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByUserAndAwg retrieves a user's membership in an organization
func (r *MemberRepository) GetByUserAndAwg(userID, awgID uuid.UUID) (*models.AwgMember, error) {
	var member models.AwgMember
	err := r.db.First(&member, "user_id = ? AND awg_id = ?", userID, awgID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByAwg retrieves all memberships of an organization
func (r *MemberRepository) GetByAwg(awgID uuid.UUID) ([]models.AwgMember, error) {
	var members []models.AwgMember
	err := r.db.
		Preload("User").
		Joins("JOIN users ON users.id = awg_members.user_id").
		Where("awg_members.awg_id = ?", awgID).
		Order("users.email ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update updates a membership
func (r *MemberRepository) Update(member *models.AwgMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a membership
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AwgMember{}, "id = ?", id).Error
}
