package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"animal-rescue-backend/internal/config"
	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/notifications"
	"animal-rescue-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService handles business logic for animal comments and replies
type CommentService struct {
	repo       repository.CommentRepositoryInterface
	animalRepo repository.AnimalRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	notifier   *notifications.Notifier
	config     *config.Config
	validator  *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(repo repository.CommentRepositoryInterface, animalRepo repository.AnimalRepositoryInterface, userRepo repository.UserRepositoryInterface, notifier *notifications.Notifier, cfg *config.Config, validator *validator.Validate) *CommentService {
	return &CommentService{
		repo:       repo,
		animalRepo: animalRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		config:     cfg,
		validator:  validator,
	}
}

// CommentBodyRequest carries the text of a comment or reply
type CommentBodyRequest struct {
	Body string `json:"body" validate:"required,min=1,max=5000"`
}

// CommentResponse represents one comment with its replies
type CommentResponse struct {
	ID          uuid.UUID            `json:"id"`
	AnimalID    uuid.UUID            `json:"animal_id"`
	UserID      uuid.UUID            `json:"user_id"`
	Username    string               `json:"username"`
	Body        string               `json:"body"`
	EditedAt    *time.Time           `json:"edited_at,omitempty"`
	CreatedAt   string               `json:"created_at"`
	SubComments []SubCommentResponse `json:"sub_comments,omitempty"`
}

// SubCommentResponse represents one reply
type SubCommentResponse struct {
	ID        uuid.UUID  `json:"id"`
	CommentID uuid.UUID  `json:"comment_id"`
	UserID    uuid.UUID  `json:"user_id"`
	Username  string     `json:"username"`
	Body      string     `json:"body"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
	CreatedAt string     `json:"created_at"`
}

// ListForAnimal lists a visible animal's comment thread
func (s *CommentService) ListForAnimal(animalID uuid.UUID) ([]CommentResponse, error) {
	if _, err := s.visibleAnimal(animalID); err != nil {
		return nil, err
	}
	comments, err := s.repo.GetByAnimal(animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = *toCommentResponse(&comments[i])
	}
	return out, nil
}

// Create posts a top-level comment on a visible animal
func (s *CommentService) Create(ctx context.Context, user *models.User, animalID uuid.UUID, req *CommentBodyRequest) (*CommentResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	animal, err := s.visibleAnimal(animalID)
	if err != nil {
		return nil, err
	}

	comment := &models.AnimalComment{
		AnimalID: animalID,
		UserID:   user.ID,
		Body:     req.Body,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	comment.User = user

	s.notifyParticipants(ctx, animal, user)
	return toCommentResponse(comment), nil
}

// Update edits a comment. Only the author or staff may edit.
func (s *CommentService) Update(user *models.User, commentID uuid.UUID, req *CommentBodyRequest) (*CommentResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	comment, err := s.getComment(commentID)
	if err != nil {
		return nil, err
	}
	if !comment.CanBeEditedBy(user) {
		return nil, apperrors.ErrMissingCapability
	}

	now := time.Now()
	comment.Body = req.Body
	comment.EditedAt = &now
	if err := s.repo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return toCommentResponse(comment), nil
}

// Delete removes a comment and its replies. Only the author or staff.
func (s *CommentService) Delete(user *models.User, commentID uuid.UUID) error {
	if user == nil {
		return apperrors.ErrMustBeLoggedIn
	}
	comment, err := s.getComment(commentID)
	if err != nil {
		return err
	}
	if !comment.CanBeDeletedBy(user) {
		return apperrors.ErrMissingCapability
	}
	if err := s.repo.Delete(commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// Reply posts a reply under an existing comment
func (s *CommentService) Reply(ctx context.Context, user *models.User, commentID uuid.UUID, req *CommentBodyRequest) (*SubCommentResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	comment, err := s.getComment(commentID)
	if err != nil {
		return nil, err
	}
	animal, err := s.visibleAnimal(comment.AnimalID)
	if err != nil {
		return nil, err
	}

	sub := &models.AnimalSubComment{
		CommentID: commentID,
		UserID:    user.ID,
		Body:      req.Body,
	}
	if err := s.repo.CreateSubComment(sub); err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}
	sub.User = user

	s.notifyParticipants(ctx, animal, user)
	return toSubCommentResponse(sub), nil
}

// UpdateReply edits a reply. Only the author or staff.
func (s *CommentService) UpdateReply(user *models.User, subID uuid.UUID, req *CommentBodyRequest) (*SubCommentResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	sub, err := s.getSubComment(subID)
	if err != nil {
		return nil, err
	}
	if !sub.CanBeEditedBy(user) {
		return nil, apperrors.ErrMissingCapability
	}

	now := time.Now()
	sub.Body = req.Body
	sub.EditedAt = &now
	if err := s.repo.UpdateSubComment(sub); err != nil {
		return nil, fmt.Errorf("failed to update reply: %w", err)
	}
	return toSubCommentResponse(sub), nil
}

// DeleteReply removes a reply. Only the author or staff.
func (s *CommentService) DeleteReply(user *models.User, subID uuid.UUID) error {
	if user == nil {
		return apperrors.ErrMustBeLoggedIn
	}
	sub, err := s.getSubComment(subID)
	if err != nil {
		return err
	}
	if !sub.CanBeDeletedBy(user) {
		return apperrors.ErrMissingCapability
	}
	if err := s.repo.DeleteSubComment(subID); err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	return nil
}

// notifyParticipants emails everyone who took part in an animal's thread,
// except the author of the new post.
func (s *CommentService) notifyParticipants(ctx context.Context, animal *models.Animal, author *models.User) {
	ids, err := s.repo.GetParticipantUserIDs(animal.ID)
	if err != nil {
		return
	}
	var recipients []notifications.Recipient
	for _, id := range ids {
		if id == author.ID {
			continue
		}
		participant, err := s.userRepo.GetByID(id)
		if err != nil {
			continue
		}
		recipients = append(recipients, notifications.Recipient{
			Email: participant.Email,
			Name:  participant.Username,
		})
	}
	if len(recipients) == 0 {
		return
	}
	s.notifier.Notify(ctx, notifications.Message{
		Template: notifications.TemplateCommentReply,
		To:       recipients,
		Context: map[string]interface{}{
			"Name":       "there",
			"AuthorName": author.Username,
			"AnimalName": animal.Name,
			"AnimalURL":  fmt.Sprintf("%s/animals/%s", s.config.BaseURL, animal.ID),
		},
	})
}

func (s *CommentService) visibleAnimal(animalID uuid.UUID) (*models.Animal, error) {
	animal, err := s.animalRepo.GetByID(animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to get animal: %w", err)
	}
	if !animal.IsCurrentlyPublished() {
		return nil, apperrors.ErrAnimalNotFound
	}
	return animal, nil
}

func (s *CommentService) getComment(id uuid.UUID) (*models.AnimalComment, error) {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

func (s *CommentService) getSubComment(id uuid.UUID) (*models.AnimalSubComment, error) {
	sub, err := s.repo.GetSubCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubCommentNotFound
		}
		return nil, fmt.Errorf("failed to get reply: %w", err)
	}
	return sub, nil
}

func toCommentResponse(comment *models.AnimalComment) *CommentResponse {
	resp := &CommentResponse{
		ID:        comment.ID,
		AnimalID:  comment.AnimalID,
		UserID:    comment.UserID,
		Body:      comment.Body,
		EditedAt:  comment.EditedAt,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
	if comment.User != nil {
		resp.Username = comment.User.Username
	}
	for i := range comment.SubComments {
		resp.SubComments = append(resp.SubComments, *toSubCommentResponse(&comment.SubComments[i]))
	}
	return resp
}

func toSubCommentResponse(sub *models.AnimalSubComment) *SubCommentResponse {
	resp := &SubCommentResponse{
		ID:        sub.ID,
		CommentID: sub.CommentID,
		UserID:    sub.UserID,
		Body:      sub.Body,
		EditedAt:  sub.EditedAt,
		CreatedAt: sub.CreatedAt.Format(time.RFC3339),
	}
	if sub.User != nil {
		resp.Username = sub.User.Username
	}
	return resp
}
