package repository

import (
	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for animal comments and replies
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.AnimalComment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(id uuid.UUID) (*models.AnimalComment, error) {
	var comment models.AnimalComment
	err := r.db.Preload("User").First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByAnimal retrieves an animal's comments with replies, oldest first
func (r *CommentRepository) GetByAnimal(animalID uuid.UUID) ([]models.AnimalComment, error) {
	var comments []models.AnimalComment
	err := r.db.
		Preload("User").
		Preload("SubComments", func(db *gorm.DB) *gorm.DB {
			return db.Order("animal_sub_comments.created_at ASC")
		}).
		Preload("SubComments.User").
		Where("animal_id = ?", animalID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Update updates a comment
func (r *CommentRepository) Update(comment *models.AnimalComment) error {
	return r.db.Save(comment).Error
}

// Delete deletes a comment and, via the FK cascade, its replies
func (r *CommentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AnimalComment{}, "id = ?", id).Error
}

// CreateSubComment creates a reply to a comment
func (r *CommentRepository) CreateSubComment(sub *models.AnimalSubComment) error {
	return r.db.Create(sub).Error
}

// GetSubCommentByID retrieves a reply by ID
func (r *CommentRepository) GetSubCommentByID(id uuid.UUID) (*models.AnimalSubComment, error) {
	var sub models.AnimalSubComment
	err := r.db.Preload("User").Preload("Comment").First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubComment updates a reply
func (r *CommentRepository) UpdateSubComment(sub *models.AnimalSubComment) error {
	return r.db.Save(sub).Error
}

// DeleteSubComment deletes a reply
func (r *CommentRepository) DeleteSubComment(id uuid.UUID) error {
	return r.db.Delete(&models.AnimalSubComment{}, "id = ?", id).Error
}

// GetParticipantUserIDs returns the distinct users who have commented or
// replied on an animal. Used to fan out reply notifications.
func (r *CommentRepository) GetParticipantUserIDs(animalID uuid.UUID) ([]uuid.UUID, error) {
	var commentUsers, replyUsers []uuid.UUID
	err := r.db.Model(&models.AnimalComment{}).
		Where("animal_id = ?", animalID).
		Distinct("user_id").
		Pluck("user_id", &commentUsers).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Model(&models.AnimalSubComment{}).
		Joins("JOIN animal_comments ON animal_comments.id = animal_sub_comments.comment_id").
		Where("animal_comments.animal_id = ?", animalID).
		Distinct("animal_sub_comments.user_id").
		Pluck("animal_sub_comments.user_id", &replyUsers).Error
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{}, len(commentUsers)+len(replyUsers))
	var ids []uuid.UUID
	for _, id := range append(commentUsers, replyUsers...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
