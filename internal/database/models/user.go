package models

import "github.com/google/uuid"

// User is the root identity. Email is the login identifier.
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Username     string `json:"username" gorm:"not null;size:150" validate:"required,max=150"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	IsStaff      bool   `json:"is_staff" gorm:"not null;default:false"`

	Profile *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// UserProfile holds optional public profile details for a user
type UserProfile struct {
	BaseModel
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	ZipCode     string    `json:"zip_code" gorm:"size:10"`
}

// TableName returns the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}
