package testutils

import (
	"fmt"
	"time"

	"animal-rescue-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// FactorySet bundles all data factories for integration tests
type FactorySet struct {
	User        *UserFactory
	Awg         *AwgFactory
	Member      *MemberFactory
	Breed       *BreedFactory
	Animal      *AnimalFactory
	Fosterer    *FostererFactory
	SavedSearch *SavedSearchFactory
	ZipCode     *ZipCodeFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Awg:         NewAwgFactory(),
		Member:      NewMemberFactory(),
		Breed:       NewBreedFactory(),
		Animal:      NewAnimalFactory(),
		Fosterer:    NewFostererFactory(),
		SavedSearch: NewSavedSearchFactory(),
		ZipCode:     NewZipCodeFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Each user gets a unique
// email because the column carries a unique index.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Username:     "Test User",
		PasswordHash: string(hash),
		IsStaff:      false,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Staff creates a staff user
func (f *UserFactory) Staff() *models.User {
	user := f.Create()
	user.IsStaff = true
	return user
}

// AwgFactory provides methods to create test Awg data
type AwgFactory struct{}

// NewAwgFactory creates a new AwgFactory
func NewAwgFactory() *AwgFactory {
	return &AwgFactory{}
}

// Create creates a published test organization in San Francisco
func (f *AwgFactory) Create() *models.Awg {
	return &models.Awg{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Rescue",
		Status:       models.AwgStatusPublished,
		WorkwithDogs: true,
		ZipCode:      "94103",
		City:         "San Francisco",
		State:        "CA",
		Latitude:     37.7726,
		Longitude:    -122.4099,
		Email:        "rescue@test.com",
	}
}

// WithStatus sets a custom status for the organization
func (f *AwgFactory) WithStatus(status models.AwgStatus) *models.Awg {
	awg := f.Create()
	awg.Status = status
	return awg
}

// WithLocation sets custom coordinates for the organization
func (f *AwgFactory) WithLocation(zip string, lat, lng float64) *models.Awg {
	awg := f.Create()
	awg.ZipCode = zip
	awg.Latitude = lat
	awg.Longitude = lng
	return awg
}

// MemberFactory provides methods to create test AwgMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a member with all capabilities for the given user and organization
func (f *MemberFactory) Create(userID, awgID uuid.UUID) *models.AwgMember {
	return &models.AwgMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:                userID,
		AwgID:                 awgID,
		CanEditProfile:        true,
		CanManageAnimals:      true,
		CanManageMembers:      true,
		CanManageApplications: true,
		CanViewApplications:   true,
	}
}

// ViewerOnly creates a member who can only view applications
func (f *MemberFactory) ViewerOnly(userID, awgID uuid.UUID) *models.AwgMember {
	member := f.Create(userID, awgID)
	member.CanEditProfile = false
	member.CanManageAnimals = false
	member.CanManageMembers = false
	member.CanManageApplications = false
	return member
}

// BreedFactory provides methods to create test Breed data
type BreedFactory struct{}

// NewBreedFactory creates a new BreedFactory
func NewBreedFactory() *BreedFactory {
	return &BreedFactory{}
}

// Create creates a dog breed with a unique slug
func (f *BreedFactory) Create() *models.Breed {
	id := uuid.New()
	return &models.Breed{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Labrador Retriever",
		Slug:       "labrador-retriever-" + id.String()[:8],
		AnimalType: models.AnimalTypeDog,
	}
}

// WithSlug sets a custom name and slug for the breed
func (f *BreedFactory) WithSlug(name, slug string) *models.Breed {
	breed := f.Create()
	breed.Name = name
	breed.Slug = slug
	return breed
}

// AnimalFactory provides methods to create test Animal data
type AnimalFactory struct{}

// NewAnimalFactory creates a new AnimalFactory
func NewAnimalFactory() *AnimalFactory {
	return &AnimalFactory{}
}

// Create creates a published adult dog for the given organization and breed
func (f *AnimalFactory) Create(awgID, breedID uuid.UUID) *models.Animal {
	return &models.Animal{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "Rex",
		AnimalType:      models.AnimalTypeDog,
		AwgID:           awgID,
		PrimaryBreedID:  breedID,
		Sex:             models.AnimalSexMale,
		Size:            models.AnimalSizeMedium,
		Age:             models.AnimalAgeAdult,
		BehaviourDogs:   models.BehaviourNotTested,
		BehaviourCats:   models.BehaviourNotTested,
		BehaviourKids:   models.BehaviourNotTested,
		PrimaryPhotoURL: "https://images.test.com/rex.jpg",
		IsPublished:     true,
	}
}

// Unpublished creates an animal that is not publicly visible
func (f *AnimalFactory) Unpublished(awgID, breedID uuid.UUID) *models.Animal {
	animal := f.Create(awgID, breedID)
	animal.IsPublished = false
	return animal
}

// EuthListed creates a published animal with a euthanasia date
func (f *AnimalFactory) EuthListed(awgID, breedID uuid.UUID, date time.Time) *models.Animal {
	animal := f.Create(awgID, breedID)
	animal.IsEuthListed = true
	animal.EuthDate = &date
	return animal
}

// FostererFactory provides methods to create test FostererProfile data
type FostererFactory struct{}

// NewFostererFactory creates a new FostererFactory
func NewFostererFactory() *FostererFactory {
	return &FostererFactory{}
}

// Complete creates a fully filled-in fosterer profile for the given user
func (f *FostererFactory) Complete(userID uuid.UUID) *models.FostererProfile {
	numPets := 0
	numPeople := 1
	return &models.FostererProfile{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:                 userID,
		Firstname:              "Jane",
		Lastname:               "Doe",
		Email:                  "jane.doe@test.com",
		Phone:                  "+1-555-0123",
		StreetAddress:          "1 Test Street",
		City:                   "Oakland",
		State:                  "CA",
		ZipCode:                "94607",
		TypeOfAnimals:          []string{string(models.FostererAnimalDogs)},
		Timeframe:              models.TimeframeAnyDuration,
		NumExistingPets:        &numPets,
		ExperienceDescription:  "Grew up with dogs",
		NumPeopleInHome:        &numPeople,
		YardType:               models.YardFullyFenced,
		RentOwn:                models.TenancyOwn,
		HoursAloneDescription:  "Rarely more than 2 hours",
		HoursAloneLocation:     "Living room",
		SleepLocation:          "Kitchen",
		EverBeenConvictedAbuse: models.No,
		AgreeShareDetails:      models.Yes,
		IsComplete:             true,
	}
}

// SavedSearchFactory provides methods to create test SavedSearch data
type SavedSearchFactory struct{}

// NewSavedSearchFactory creates a new SavedSearchFactory
func NewSavedSearchFactory() *SavedSearchFactory {
	return &SavedSearchFactory{}
}

// Create creates a notifiable dog search for the given user
func (f *SavedSearchFactory) Create(userID uuid.UUID) *models.SavedSearch {
	return &models.SavedSearch{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:                 userID,
		Name:                   "Dogs near me",
		AnimalType:             models.AnimalTypeDog,
		IsNotificationsEnabled: true,
		CheckEvery:             24 * time.Hour,
	}
}

// ZipCodeFactory provides methods to create test ZipCode data
type ZipCodeFactory struct{}

// NewZipCodeFactory creates a new ZipCodeFactory
func NewZipCodeFactory() *ZipCodeFactory {
	return &ZipCodeFactory{}
}

// Create creates the San Francisco 94103 zip code entry
func (f *ZipCodeFactory) Create() *models.ZipCode {
	return &models.ZipCode{
		Zip:       "94103",
		Latitude:  37.7726,
		Longitude: -122.4099,
	}
}

// With creates a zip code entry with the given coordinates
func (f *ZipCodeFactory) With(zip string, lat, lng float64) *models.ZipCode {
	return &models.ZipCode{
		Zip:       zip,
		Latitude:  lat,
		Longitude: lng,
	}
}
