package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnimalType represents the species of an animal
type AnimalType string

const (
	AnimalTypeDog AnimalType = "DOG"
	AnimalTypeCat AnimalType = "CAT"
)

// IsValid checks if the AnimalType is valid
func (t AnimalType) IsValid() bool {
	switch t {
	case AnimalTypeDog, AnimalTypeCat:
		return true
	}
	return false
}

// Pluralize returns the display plural for an animal type.
func (t AnimalType) Pluralize() string {
	if t == AnimalTypeCat {
		return "Cats"
	}
	return "Dogs"
}

// AnimalSex enumerates animal sexes
type AnimalSex string

const (
	AnimalSexFemale AnimalSex = "F"
	AnimalSexMale   AnimalSex = "M"
)

// IsValid checks if the AnimalSex is valid
func (s AnimalSex) IsValid() bool {
	return s == AnimalSexFemale || s == AnimalSexMale
}

// AnimalSize enumerates animal size bands
type AnimalSize string

const (
	AnimalSizeSmall  AnimalSize = "S"
	AnimalSizeMedium AnimalSize = "M"
	AnimalSizeLarge  AnimalSize = "L"
	AnimalSizeXLarge AnimalSize = "XL"
)

// IsValid checks if the AnimalSize is valid
func (s AnimalSize) IsValid() bool {
	switch s {
	case AnimalSizeSmall, AnimalSizeMedium, AnimalSizeLarge, AnimalSizeXLarge:
		return true
	}
	return false
}

// Label returns the display label for an animal size.
func (s AnimalSize) Label() string {
	switch s {
	case AnimalSizeSmall:
		return "Small (0-25 lbs)"
	case AnimalSizeMedium:
		return "Medium (26-60 lbs)"
	case AnimalSizeLarge:
		return "Large (61-100 lbs)"
	case AnimalSizeXLarge:
		return "X-Large (101 lbs+)"
	}
	return string(s)
}

// AnimalAge enumerates animal age bands
type AnimalAge string

const (
	AnimalAgeBaby   AnimalAge = "BABY"
	AnimalAgeYoung  AnimalAge = "YOUNG"
	AnimalAgeAdult  AnimalAge = "ADULT"
	AnimalAgeSenior AnimalAge = "SENIOR"
)

// IsValid checks if the AnimalAge is valid
func (a AnimalAge) IsValid() bool {
	switch a {
	case AnimalAgeBaby, AnimalAgeYoung, AnimalAgeAdult, AnimalAgeSenior:
		return true
	}
	return false
}

// Label returns the display label for an animal age band.
func (a AnimalAge) Label() string {
	switch a {
	case AnimalAgeBaby:
		return "Baby (< 1 year)"
	case AnimalAgeYoung:
		return "Young (1-3 years)"
	case AnimalAgeAdult:
		return "Adult (3-8 years)"
	case AnimalAgeSenior:
		return "Senior (8+ years)"
	}
	return string(a)
}

// BehaviourGrade grades how an animal behaves around a given audience
type BehaviourGrade string

const (
	BehaviourPoor      BehaviourGrade = "POOR"
	BehaviourSelective BehaviourGrade = "SELECTIVE"
	BehaviourGood      BehaviourGrade = "GOOD"
	BehaviourNotTested BehaviourGrade = "NOT_TESTED"
)

// IsValid checks if the BehaviourGrade is valid
func (g BehaviourGrade) IsValid() bool {
	switch g {
	case BehaviourPoor, BehaviourSelective, BehaviourGood, BehaviourNotTested:
		return true
	}
	return false
}

// Breed is a named breed of a given animal type, referenced by animals and saved searches.
type Breed struct {
	BaseModel
	Name       string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Slug       string     `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	AnimalType AnimalType `json:"animal_type" gorm:"type:varchar(3);not null;default:'DOG'"`
}

// TableName returns the table name for Breed
func (Breed) TableName() string {
	return "breeds"
}

// Animal is a single adoptable animal listed by an organization.
type Animal struct {
	BaseModel
	Name       string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	AnimalType AnimalType `json:"animal_type" gorm:"type:varchar(3);not null;default:'DOG';index"`

	AwgID         uuid.UUID `json:"awg_id" gorm:"type:uuid;not null;index" validate:"required"`
	AwgInternalID string    `json:"awg_internal_id" gorm:"size:64"`
	AwgProfileURL string    `json:"awg_profile_url" gorm:"size:255"`

	PrimaryBreedID   uuid.UUID  `json:"primary_breed_id" gorm:"type:uuid;not null" validate:"required"`
	SecondaryBreedID *uuid.UUID `json:"secondary_breed_id,omitempty" gorm:"type:uuid"`
	IsMixedBreed     bool       `json:"is_mixed_breed" gorm:"not null;default:false"`
	IsUnknownBreed   bool       `json:"is_unknown_breed" gorm:"not null;default:false"`

	Sex  AnimalSex  `json:"sex" gorm:"type:varchar(1);not null"`
	Size AnimalSize `json:"size" gorm:"type:varchar(2);not null"`
	Age  AnimalAge  `json:"age" gorm:"type:varchar(8);not null"`

	Description string `json:"description" gorm:"type:text"`

	BehaviourDogs BehaviourGrade `json:"behaviour_dogs" gorm:"type:varchar(10);not null;default:'NOT_TESTED'"`
	BehaviourCats BehaviourGrade `json:"behaviour_cats" gorm:"type:varchar(10);not null;default:'NOT_TESTED'"`
	BehaviourKids BehaviourGrade `json:"behaviour_kids" gorm:"type:varchar(10);not null;default:'NOT_TESTED'"`

	IsSpayedNeutered      bool   `json:"is_spayed_neutered" gorm:"not null;default:false"`
	IsVaccinationsCurrent bool   `json:"is_vaccinations_current" gorm:"not null;default:false"`
	VaccinationsNotes     string `json:"vaccinations_notes" gorm:"type:text"`
	IsSpecialNeeds        bool   `json:"is_special_needs" gorm:"not null;default:false"`
	SpecialNeeds          string `json:"special_needs" gorm:"type:text"`

	IsEuthListed bool       `json:"is_euth_listed" gorm:"not null;default:false"`
	EuthDate     *time.Time `json:"euth_date,omitempty" gorm:"type:date"`

	PrimaryPhotoURL  string     `json:"primary_photo_url" gorm:"size:255"`
	IsPublished      bool       `json:"is_published" gorm:"not null;default:false;index"`
	FirstPublishedAt *time.Time `json:"first_published_at,omitempty" gorm:"index"`

	Awg            *Awg   `json:"awg,omitempty" gorm:"foreignKey:AwgID;constraint:OnDelete:CASCADE"`
	PrimaryBreed   *Breed `json:"primary_breed,omitempty" gorm:"foreignKey:PrimaryBreedID;constraint:OnDelete:RESTRICT"`
	SecondaryBreed *Breed `json:"secondary_breed,omitempty" gorm:"foreignKey:SecondaryBreedID;constraint:OnDelete:RESTRICT"`

	Images []AnimalImage `json:"images,omitempty" gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Animal
func (Animal) TableName() string {
	return "animals"
}

// CanBePublished reports whether the publish guard holds: a primary photo exists.
func (a *Animal) CanBePublished() bool {
	return a.PrimaryPhotoURL != ""
}

// IsCurrentlyPublished reports effective visibility: the animal is published
// and so is its owning organization. Requires Awg to be loaded.
func (a *Animal) IsCurrentlyPublished() bool {
	return a.IsPublished && a.Awg != nil && a.Awg.IsCurrentlyPublished()
}

// ApplyPublicationRules enforces the publication invariants prior to a save:
// an animal without a primary photo is forced back to unpublished, and
// FirstPublishedAt is stamped exactly once when the animal first becomes
// effectively visible. The stamp is never cleared, so unpublish-then-republish
// cycles do not retrigger "published since" queries.
func (a *Animal) ApplyPublicationRules(now time.Time) {
	if !a.CanBePublished() {
		a.IsPublished = false
	}
	if a.FirstPublishedAt == nil && a.IsCurrentlyPublished() {
		t := now
		a.FirstPublishedAt = &t
	}
}

// BeforeSave heals publish state on every save
func (a *Animal) BeforeSave(tx *gorm.DB) error {
	a.ApplyPublicationRules(time.Now())
	return nil
}

// BreedsText builds the human-readable breed description.
func (a *Animal) BreedsText() string {
	if a.IsUnknownBreed {
		return "Unknown breed"
	}
	text := ""
	if a.PrimaryBreed != nil {
		text = a.PrimaryBreed.Name
	}
	if a.SecondaryBreed != nil && a.PrimaryBreed != nil && a.SecondaryBreed.ID != a.PrimaryBreed.ID {
		text = a.PrimaryBreed.Name + " / " + a.SecondaryBreed.Name
	}
	if a.IsMixedBreed && text != "" {
		text += " mix"
	}
	return text
}

// AnimalImage is an additional photo for an animal.
type AnimalImage struct {
	BaseModel
	AnimalID uuid.UUID `json:"animal_id" gorm:"type:uuid;not null;index" validate:"required"`
	PhotoURL string    `json:"photo_url" gorm:"not null;size:255" validate:"required,max=255"`
}

// TableName returns the table name for AnimalImage
func (AnimalImage) TableName() string {
	return "animal_images"
}

// AnimalShortList is a user's bookmark of an animal. Unique per (animal, user).
type AnimalShortList struct {
	BaseModel
	AnimalID uuid.UUID `json:"animal_id" gorm:"type:uuid;not null;uniqueIndex:idx_shortlists_animal_user" validate:"required"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_shortlists_animal_user;index" validate:"required"`

	Animal *Animal `json:"animal,omitempty" gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE"`
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AnimalShortList
func (AnimalShortList) TableName() string {
	return "animal_shortlists"
}
