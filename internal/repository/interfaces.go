package repository

import (
	"time"

	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpsertProfile(profile *models.UserProfile) error
}

// AwgRepositoryInterface defines the interface for organization repository operations
type AwgRepositoryInterface interface {
	Create(awg *models.Awg) error
	CreateWithCreatorMember(awg *models.Awg, member *models.AwgMember) error
	GetByID(id uuid.UUID) (*models.Awg, error)
	GetPublishedByID(id uuid.UUID) (*models.Awg, error)
	GetAll(status *models.AwgStatus, limit, offset int) ([]models.Awg, int64, error)
	GetForUser(userID uuid.UUID) ([]models.Awg, error)
	Update(awg *models.Awg) error
	Delete(id uuid.UUID) error
}

// MemberRepositoryInterface defines the interface for membership repository operations
type MemberRepositoryInterface interface {
	Create(member *models.AwgMember) error
	GetByID(id uuid.UUID) (*models.AwgMember, error)
	GetByUserAndAwg(userID, awgID uuid.UUID) (*models.AwgMember, error)
	GetByAwg(awgID uuid.UUID) ([]models.AwgMember, error)
	Update(member *models.AwgMember) error
	Delete(id uuid.UUID) error
}

// BreedRepositoryInterface defines the interface for breed repository operations
type BreedRepositoryInterface interface {
	Create(breed *models.Breed) error
	Upsert(breed *models.Breed) error
	GetByID(id uuid.UUID) (*models.Breed, error)
	GetBySlug(slug string) (*models.Breed, error)
	GetByType(animalType models.AnimalType) ([]models.Breed, error)
	GetBySlugs(slugs []string) ([]models.Breed, error)
}

// AnimalRepositoryInterface defines the interface for animal repository operations
type AnimalRepositoryInterface interface {
	Create(animal *models.Animal) error
	GetByID(id uuid.UUID) (*models.Animal, error)
	GetByIDForAwg(id, awgID uuid.UUID) (*models.Animal, error)
	GetByIDs(ids []uuid.UUID) ([]models.Animal, error)
	ListByAwg(awgID uuid.UUID, limit, offset int) ([]models.Animal, int64, error)
	Update(animal *models.Animal) error
	Delete(id uuid.UUID) error
	AddImage(image *models.AnimalImage) error
	GetImages(animalID uuid.UUID) ([]models.AnimalImage, error)
	DeleteImage(id uuid.UUID) error
	Search(c AnimalSearchCriteria) (*AnimalSearchPage, error)
	ListDistinctBreedSlugs(animalType models.AnimalType) ([]string, error)
}

// ZipCodeRepositoryInterface defines the interface for zip code repository operations
type ZipCodeRepositoryInterface interface {
	GetByZip(zip string) (*models.ZipCode, error)
	UpsertBatch(zips []models.ZipCode) error
}

// ShortListRepositoryInterface defines the interface for shortlist repository operations
type ShortListRepositoryInterface interface {
	Create(entry *models.AnimalShortList) error
	Get(userID, animalID uuid.UUID) (*models.AnimalShortList, error)
	Delete(userID, animalID uuid.UUID) error
	GetAnimalIDsForUser(userID uuid.UUID) ([]uuid.UUID, error)
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.AnimalComment) error
	GetByID(id uuid.UUID) (*models.AnimalComment, error)
	GetByAnimal(animalID uuid.UUID) ([]models.AnimalComment, error)
	Update(comment *models.AnimalComment) error
	Delete(id uuid.UUID) error
	CreateSubComment(sub *models.AnimalSubComment) error
	GetSubCommentByID(id uuid.UUID) (*models.AnimalSubComment, error)
	UpdateSubComment(sub *models.AnimalSubComment) error
	DeleteSubComment(id uuid.UUID) error
	GetParticipantUserIDs(animalID uuid.UUID) ([]uuid.UUID, error)
}

// FostererRepositoryInterface defines the interface for fosterer profile repository operations
type FostererRepositoryInterface interface {
	Create(profile *models.FostererProfile) error
	GetByID(id uuid.UUID) (*models.FostererProfile, error)
	GetByUserID(userID uuid.UUID) (*models.FostererProfile, error)
	Update(profile *models.FostererProfile) error
	ReplaceExistingPets(profileID uuid.UUID, pets []models.FostererExistingPet) error
	ReplaceReferences(profileID uuid.UUID, refs []models.FostererReference) error
	ReplacePeopleInHome(profileID uuid.UUID, people []models.FostererPersonInHome) error
}

// ApplicationRepositoryInterface defines the interface for foster application repository operations
type ApplicationRepositoryInterface interface {
	Create(app *models.FosterApplication) error
	GetByID(id uuid.UUID) (*models.FosterApplication, error)
	GetByFostererAndAnimal(fostererID, animalID uuid.UUID) (*models.FosterApplication, error)
	GetByAwg(awgID uuid.UUID, status *models.ApplicationStatus, limit, offset int) ([]models.FosterApplication, int64, error)
	GetByFosterer(fostererID uuid.UUID) ([]models.FosterApplication, error)
	Update(app *models.FosterApplication) error
}

// SavedSearchRepositoryInterface defines the interface for saved search repository operations
type SavedSearchRepositoryInterface interface {
	Create(search *models.SavedSearch) error
	GetByID(id uuid.UUID) (*models.SavedSearch, error)
	GetByUser(userID uuid.UUID) ([]models.SavedSearch, error)
	GetNotifiable() ([]models.SavedSearch, error)
	Update(search *models.SavedSearch) error
	MarkChecked(id uuid.UUID, checkedAt time.Time) error
	Delete(id uuid.UUID) error
}
