package models

import (
	"time"

	"github.com/google/uuid"
)

// AnimalComment is a top-level comment on an animal's listing.
type AnimalComment struct {
	BaseModel
	AnimalID uuid.UUID  `json:"animal_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID   uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Body     string     `json:"body" gorm:"type:text;not null" validate:"required"`
	EditedAt *time.Time `json:"edited_at,omitempty"`

	Animal      *Animal            `json:"animal,omitempty" gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE"`
	User        *User              `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SubComments []AnimalSubComment `json:"sub_comments,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AnimalComment
func (AnimalComment) TableName() string {
	return "animal_comments"
}

// CanBeEditedBy reports whether a user may edit this comment: its author or any staff user.
func (c *AnimalComment) CanBeEditedBy(user *User) bool {
	if user == nil {
		return false
	}
	return c.UserID == user.ID || user.IsStaff
}

// CanBeDeletedBy mirrors the edit rule.
func (c *AnimalComment) CanBeDeletedBy(user *User) bool {
	return c.CanBeEditedBy(user)
}

// AnimalSubComment is a reply to a comment. Threading is one level deep.
type AnimalSubComment struct {
	BaseModel
	CommentID uuid.UUID  `json:"comment_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Body      string     `json:"body" gorm:"type:text;not null" validate:"required"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`

	Comment *AnimalComment `json:"comment,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	User    *User          `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AnimalSubComment
func (AnimalSubComment) TableName() string {
	return "animal_sub_comments"
}

// CanBeEditedBy reports whether a user may edit this reply: its author or any staff user.
func (c *AnimalSubComment) CanBeEditedBy(user *User) bool {
	if user == nil {
		return false
	}
	return c.UserID == user.ID || user.IsStaff
}

// CanBeDeletedBy mirrors the edit rule.
func (c *AnimalSubComment) CanBeDeletedBy(user *User) bool {
	return c.CanBeEditedBy(user)
}
