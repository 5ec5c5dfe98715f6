package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedSearch is a user-owned snapshot of animal-search criteria checked
// periodically by the digest job.
type SavedSearch struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name   string    `json:"name" gorm:"not null;size:64" validate:"required,max=64"`

	AnimalType AnimalType  `json:"animal_type" gorm:"type:varchar(3);not null;default:'DOG'"`
	ZipCode    string      `json:"zip_code" gorm:"size:16"`
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	Radius     *int        `json:"radius,omitempty"`
	Sex        *AnimalSex  `json:"sex,omitempty" gorm:"type:varchar(1)"`
	Size       *AnimalSize `json:"size,omitempty" gorm:"type:varchar(2)"`
	Age        *AnimalAge  `json:"age,omitempty" gorm:"type:varchar(8)"`
	BreedID    *uuid.UUID  `json:"breed_id,omitempty" gorm:"type:uuid"`

	EuthDateWithinDays *int `json:"euth_date_within_days,omitempty"`
	GoodwithCats       bool `json:"goodwith_cats" gorm:"not null;default:false"`
	GoodwithDogs       bool `json:"goodwith_dogs" gorm:"not null;default:false"`
	GoodwithKids       bool `json:"goodwith_kids" gorm:"not null;default:false"`

	IsNotificationsEnabled bool          `json:"is_notifications_enabled" gorm:"not null;default:true"`
	LastCheckedAt          *time.Time    `json:"last_checked_at,omitempty"`
	CheckEvery             time.Duration `json:"check_every" gorm:"not null;default:86400000000000"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Breed *Breed `json:"breed,omitempty" gorm:"foreignKey:BreedID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SavedSearch
func (SavedSearch) TableName() string {
	return "saved_searches"
}

// IsReadyToCheck reports whether the search is due another digest check.
func (s *SavedSearch) IsReadyToCheck(now time.Time) bool {
	if s.LastCheckedAt == nil {
		return true
	}
	return s.LastCheckedAt.Add(s.CheckEvery).Before(now)
}
