package models

import (
	"time"

	"github.com/google/uuid"
)

// Multi-choice questionnaire values. Stored as JSON-serialized string slices.

// FostererAnimalType is the kind of animal a fosterer will take
type FostererAnimalType string

const (
	FostererAnimalDogs FostererAnimalType = "DOGS"
	FostererAnimalCats FostererAnimalType = "CATS"
)

// AnimalCategory is a category of animal a fosterer is open to
type AnimalCategory string

const (
	CategoryAdultFemale      AnimalCategory = "ADULT_FEMALE"
	CategoryAdultMale        AnimalCategory = "ADULT_MALE"
	CategoryPregnantMother   AnimalCategory = "PREGNANT_MOTHER"
	CategoryMotherWithBabies AnimalCategory = "MOTHER_WITH_BABIES"
	CategoryBabies           AnimalCategory = "BABIES"
	CategoryPitBullyBreeds   AnimalCategory = "PIT_BULLY_BREEDS"
)

// Timeframe is how long a fosterer can take an animal for
type Timeframe string

const (
	TimeframeMax2Weeks   Timeframe = "MAX_2_WEEKS"
	TimeframeMax3Months  Timeframe = "MAX_3_MONTHS"
	TimeframeAnyDuration Timeframe = "ANY_DURATION"
	TimeframeOther       Timeframe = "OTHER"
)

// IsValid checks if the Timeframe is valid
func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeMax2Weeks, TimeframeMax3Months, TimeframeAnyDuration, TimeframeOther:
		return true
	}
	return false
}

// YardType describes the fosterer's yard
type YardType string

const (
	YardNone            YardType = "NO_YARD"
	YardUnfenced        YardType = "UNFENCED"
	YardPartiallyFenced YardType = "PARTIALLY_FENCED"
	YardFullyFenced     YardType = "FULLY_FENCED"
)

// IsValid checks if the YardType is valid
func (y YardType) IsValid() bool {
	switch y {
	case YardNone, YardUnfenced, YardPartiallyFenced, YardFullyFenced:
		return true
	}
	return false
}

// Tenancy is whether the fosterer rents or owns their home
type Tenancy string

const (
	TenancyRent Tenancy = "RENT"
	TenancyOwn  Tenancy = "OWN"
)

// IsValid checks if the Tenancy is valid
func (t Tenancy) IsValid() bool {
	return t == TenancyRent || t == TenancyOwn
}

// YesNo is an explicit yes/no answer (distinct from unanswered)
type YesNo string

const (
	Yes YesNo = "YES"
	No  YesNo = "NO"
)

// IsValid checks if the YesNo is valid
func (y YesNo) IsValid() bool {
	return y == Yes || y == No
}

// FostererProfile is the one-per-user foster questionnaire built up by the
// multi-stage wizard. Fields are nullable-ish (zero values) until their stage
// is submitted; IsComplete is set once by the final stage.
type FostererProfile struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null" validate:"required"`

	// Stage: about-you
	Firstname     string `json:"firstname" gorm:"size:64"`
	Lastname      string `json:"lastname" gorm:"size:64"`
	Email         string `json:"email" gorm:"size:255"`
	Phone         string `json:"phone" gorm:"size:32"`
	StreetAddress string `json:"street_address" gorm:"size:244"`
	City          string `json:"city" gorm:"size:32"`
	State         string `json:"state" gorm:"size:2"`
	ZipCode       string `json:"zip_code" gorm:"size:16"`

	// Stage: animal-preferences
	TypeOfAnimals         []string  `json:"type_of_animals" gorm:"serializer:json"`
	CategoryOfAnimals     []string  `json:"category_of_animals" gorm:"serializer:json"`
	BehaviouralAttributes []string  `json:"behavioural_attributes" gorm:"serializer:json"`
	Timeframe             Timeframe `json:"timeframe" gorm:"type:varchar(32)"`
	TimeframeOther        string    `json:"timeframe_other" gorm:"type:text"`

	// Stage: pet-experience
	NumExistingPets       *int     `json:"num_existing_pets,omitempty"`
	ExistingPetsDetails   string   `json:"existing_pets_details" gorm:"type:text"`
	ExperienceDescription string   `json:"experience_description" gorm:"type:text"`
	ExperienceCategories  []string `json:"experience_categories" gorm:"serializer:json"`
	ExperienceGivenUpPet  string   `json:"experience_given_up_pet" gorm:"type:text"`

	// Stage: household-details
	NumPeopleInHome       *int     `json:"num_people_in_home,omitempty"`
	PeopleAtHome          string   `json:"people_at_home" gorm:"type:text"`
	YardType              YardType `json:"yard_type" gorm:"type:varchar(32)"`
	YardFenceOver5ft      YesNo    `json:"yard_fence_over_5ft" gorm:"type:varchar(3)"`
	RentOwn               Tenancy  `json:"rent_own" gorm:"type:varchar(4)"`
	RentRestrictions      string   `json:"rent_restrictions" gorm:"type:text"`
	RentLandlordContact   string   `json:"rent_landlord_contact" gorm:"type:text"`
	RentOkFosterPets      YesNo    `json:"rent_ok_foster_pets" gorm:"type:varchar(3)"`
	HoursAloneDescription string   `json:"hours_alone_description" gorm:"type:text"`
	HoursAloneLocation    string   `json:"hours_alone_location" gorm:"type:text"`
	SleepLocation         string   `json:"sleep_location" gorm:"type:text"`

	// Stage: final-thoughts
	OtherInfo               string `json:"other_info" gorm:"type:text"`
	EverBeenConvictedAbuse  YesNo  `json:"ever_been_convicted_abuse" gorm:"type:varchar(3)"`
	AgreeShareDetails       YesNo  `json:"agree_share_details" gorm:"type:varchar(3)"`

	IsComplete bool `json:"is_complete" gorm:"not null;default:false"`

	User         *User                  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExistingPets []FostererExistingPet  `json:"existing_pets,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	References   []FostererReference    `json:"references,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	PeopleInHome []FostererPersonInHome `json:"people_in_home,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for FostererProfile
func (FostererProfile) TableName() string {
	return "fosterer_profiles"
}

// FostererExistingPet is a positional child row of the pet-experience stage.
type FostererExistingPet struct {
	BaseModel
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;not null;index" validate:"required"`
	Position  int       `json:"position" gorm:"not null"`

	Name             string `json:"name" gorm:"size:64"`
	TypeOfAnimal     string `json:"type_of_animal" gorm:"size:32"`
	Breed            string `json:"breed" gorm:"size:100"`
	Age              string `json:"age" gorm:"size:16"`
	IsSpayedNeutered bool   `json:"is_spayed_neutered" gorm:"not null;default:false"`
}

// TableName returns the table name for FostererExistingPet
func (FostererExistingPet) TableName() string {
	return "fosterer_existing_pets"
}

// IsFilled reports whether this entry carries real data (blank padding slots don't).
func (p *FostererExistingPet) IsFilled() bool {
	return p.Name != "" && p.TypeOfAnimal != ""
}

// FostererReference is a positional child row of the references stage.
type FostererReference struct {
	BaseModel
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;not null;index" validate:"required"`
	Position  int       `json:"position" gorm:"not null"`

	Name         string `json:"name" gorm:"size:128"`
	Relationship string `json:"relationship" gorm:"size:128"`
	Phone        string `json:"phone" gorm:"size:32"`
	Email        string `json:"email" gorm:"size:255"`
}

// TableName returns the table name for FostererReference
func (FostererReference) TableName() string {
	return "fosterer_references"
}

// IsFilled reports whether this entry carries real data.
func (r *FostererReference) IsFilled() bool {
	return r.Name != "" && (r.Phone != "" || r.Email != "")
}

// FostererPersonInHome is a positional child row of the household-details stage.
type FostererPersonInHome struct {
	BaseModel
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;not null;index" validate:"required"`
	Position  int       `json:"position" gorm:"not null"`

	Name     string `json:"name" gorm:"size:128"`
	Relation string `json:"relation" gorm:"size:64"`
	Age      string `json:"age" gorm:"size:16"`
	Email    string `json:"email" gorm:"size:255"`
}

// TableName returns the table name for FostererPersonInHome
func (FostererPersonInHome) TableName() string {
	return "fosterer_people_in_home"
}

// IsFilled reports whether this entry carries real data.
func (p *FostererPersonInHome) IsFilled() bool {
	return p.Name != "" && p.Relation != ""
}

// ApplicationStatus is the state of a foster application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// IsValid checks if the ApplicationStatus is valid
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// RejectReason is the coded reason an application was rejected
type RejectReason string

const (
	RejectUnsuitable         RejectReason = "UNSUITABLE"
	RejectUnreliable         RejectReason = "UNRELIABLE"
	RejectProperty           RejectReason = "PROPERTY"
	RejectHumanRoommates     RejectReason = "HUMAN_ROOMMATES"
	RejectPetRoommates       RejectReason = "PET_ROOMMATES"
	RejectNoLandlordApproval RejectReason = "NO_LANDLORD_APPROVAL"
	RejectLied               RejectReason = "LIED"
	RejectOther              RejectReason = "OTHER"
)

// IsValid checks if the RejectReason is valid
func (r RejectReason) IsValid() bool {
	switch r {
	case RejectUnsuitable, RejectUnreliable, RejectProperty, RejectHumanRoommates,
		RejectPetRoommates, RejectNoLandlordApproval, RejectLied, RejectOther:
		return true
	}
	return false
}

// Label returns the display label for a reject reason.
func (r RejectReason) Label() string {
	switch r {
	case RejectUnsuitable:
		return "Not suitable for the animal requested, and not willing to consider alternative"
	case RejectUnreliable:
		return "Concerns about fosterer reliability/commitment"
	case RejectProperty:
		return "Concerns with home and/or yard situation"
	case RejectHumanRoommates:
		return "Concerns with the people in the home"
	case RejectPetRoommates:
		return "Concerns with the other pets in the home"
	case RejectNoLandlordApproval:
		return "Landlord has not approved fostering"
	case RejectLied:
		return "Lied on Application"
	case RejectOther:
		return "Other"
	}
	return string(r)
}

// FosterApplication is one fosterer's application for one animal.
// The (fosterer, animal) pair is unique at the schema level so concurrent
// duplicate submissions cannot both land.
type FosterApplication struct {
	BaseModel
	FostererID uuid.UUID `json:"fosterer_id" gorm:"type:uuid;not null;uniqueIndex:idx_applications_fosterer_animal" validate:"required"`
	AnimalID   uuid.UUID `json:"animal_id" gorm:"type:uuid;not null;uniqueIndex:idx_applications_fosterer_animal;index" validate:"required"`

	Status             ApplicationStatus `json:"status" gorm:"type:varchar(32);not null;default:'PENDING'"`
	RejectReason       *RejectReason     `json:"reject_reason,omitempty" gorm:"type:varchar(32)"`
	RejectReasonDetail string            `json:"reject_reason_detail" gorm:"type:text"`
	SubmittedOn        time.Time         `json:"submitted_on" gorm:"autoCreateTime"`

	Fosterer *FostererProfile `json:"fosterer,omitempty" gorm:"foreignKey:FostererID;constraint:OnDelete:CASCADE"`
	Animal   *Animal          `json:"animal,omitempty" gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for FosterApplication
func (FosterApplication) TableName() string {
	return "foster_applications"
}
