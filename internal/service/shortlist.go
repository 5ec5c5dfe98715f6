package service

import (
	"errors"
	"fmt"

	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShortListService handles business logic for shortlisting animals
type ShortListService struct {
	repo       repository.ShortListRepositoryInterface
	animalRepo repository.AnimalRepositoryInterface
}

// NewShortListService creates a new shortlist service
func NewShortListService(repo repository.ShortListRepositoryInterface, animalRepo repository.AnimalRepositoryInterface) *ShortListService {
	return &ShortListService{repo: repo, animalRepo: animalRepo}
}

// ToggleResponse reports the shortlist state after a toggle
type ToggleResponse struct {
	AnimalID      uuid.UUID `json:"animal_id"`
	IsShortlisted bool      `json:"is_shortlisted"`
}

// Toggle flips the shortlist state of a visible animal for the user.
func (s *ShortListService) Toggle(user *models.User, animalID uuid.UUID) (*ToggleResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}

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

	_, err = s.repo.Get(user.ID, animalID)
	switch {
	case err == nil:
		if err := s.repo.Delete(user.ID, animalID); err != nil {
			return nil, fmt.Errorf("failed to remove shortlist entry: %w", err)
		}
		return &ToggleResponse{AnimalID: animalID, IsShortlisted: false}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := &models.AnimalShortList{UserID: user.ID, AnimalID: animalID}
		if err := s.repo.Create(entry); err != nil {
			// A concurrent toggle can land first; the end state is the same.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &ToggleResponse{AnimalID: animalID, IsShortlisted: true}, nil
			}
			return nil, fmt.Errorf("failed to create shortlist entry: %w", err)
		}
		return &ToggleResponse{AnimalID: animalID, IsShortlisted: true}, nil
	default:
		return nil, fmt.Errorf("failed to check shortlist: %w", err)
	}
}
