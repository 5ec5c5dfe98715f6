package models

import "github.com/google/uuid"

// AwgStatus represents the listing status of an animal welfare group
type AwgStatus string

const (
	AwgStatusApplied     AwgStatus = "APPLIED"
	AwgStatusPublished   AwgStatus = "PUBLISHED"
	AwgStatusUnpublished AwgStatus = "UNPUBLISHED"
)

// IsValid checks if the AwgStatus is valid
func (s AwgStatus) IsValid() bool {
	switch s {
	case AwgStatusApplied, AwgStatusPublished, AwgStatusUnpublished:
		return true
	}
	return false
}

// AwgType represents how an organization helps animals
type AwgType string

const (
	AwgTypeShelterOnly      AwgType = "SHELTER_ONLY"
	AwgTypeFosterOnly       AwgType = "FOSTER_ONLY"
	AwgTypeShelterAndFoster AwgType = "SHELTER_AND_FOSTER"
)

// IsValid checks if the AwgType is valid
func (t AwgType) IsValid() bool {
	switch t {
	case AwgTypeShelterOnly, AwgTypeFosterOnly, AwgTypeShelterAndFoster:
		return true
	}
	return false
}

// Awg is an animal welfare group: the organization that lists adoptable animals.
// New organizations start in APPLIED; staff move them to PUBLISHED or UNPUBLISHED.
type Awg struct {
	BaseModel
	Name                 string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Status               AwgStatus `json:"status" gorm:"type:varchar(16);not null;default:'APPLIED'"`
	Description          string    `json:"description" gorm:"type:text"`
	AwgType              *AwgType  `json:"awg_type,omitempty" gorm:"type:varchar(32)"`
	Has501c3TaxExemption bool      `json:"has_501c3_tax_exemption" gorm:"not null;default:false"`
	CompanyEIN           string    `json:"company_ein" gorm:"size:16"`

	WorkwithDogs  bool `json:"workwith_dogs" gorm:"not null;default:false"`
	WorkwithCats  bool `json:"workwith_cats" gorm:"not null;default:false"`
	WorkwithOther bool `json:"workwith_other" gorm:"not null;default:false"`

	ZipCode              string  `json:"zip_code" gorm:"size:16"`
	City                 string  `json:"city" gorm:"size:32"`
	State                string  `json:"state" gorm:"size:2"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	IsExactLocationShown bool    `json:"is_exact_location_shown" gorm:"not null;default:false"`

	Email        string `json:"email" gorm:"size:255"`
	Phone        string `json:"phone" gorm:"size:32"`
	WebsiteURL   string `json:"website_url" gorm:"size:255"`
	FacebookURL  string `json:"facebook_url" gorm:"size:255"`
	InstagramURL string `json:"instagram_url" gorm:"size:255"`
	TwitterURL   string `json:"twitter_url" gorm:"size:255"`
	TiktokURL    string `json:"tiktok_url" gorm:"size:255"`

	Animals []Animal    `json:"animals,omitempty" gorm:"foreignKey:AwgID;constraint:OnDelete:CASCADE"`
	Members []AwgMember `json:"members,omitempty" gorm:"foreignKey:AwgID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Awg
func (Awg) TableName() string {
	return "awgs"
}

// IsCurrentlyPublished reports whether the organization's listings are publicly visible.
func (a *Awg) IsCurrentlyPublished() bool {
	return a.Status == AwgStatusPublished
}

// AwgMember joins a user to an organization with independent capability flags.
// Unique per (user, awg). No capability implies another.
type AwgMember struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_awg_members_user_awg" validate:"required"`
	AwgID  uuid.UUID `json:"awg_id" gorm:"type:uuid;not null;uniqueIndex:idx_awg_members_user_awg;index" validate:"required"`

	CanEditProfile        bool `json:"canEditProfile" gorm:"not null;default:false"`
	CanManageAnimals      bool `json:"canManageAnimals" gorm:"not null;default:false"`
	CanManageMembers      bool `json:"canManageMembers" gorm:"not null;default:false"`
	CanManageApplications bool `json:"canManageApplications" gorm:"not null;default:false"`
	CanViewApplications   bool `json:"canViewApplications" gorm:"not null;default:false"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Awg  *Awg  `json:"awg,omitempty" gorm:"foreignKey:AwgID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AwgMember
func (AwgMember) TableName() string {
	return "awg_members"
}

// HasAnyCapability reports whether at least one capability flag is set.
func (m *AwgMember) HasAnyCapability() bool {
	return m.CanEditProfile || m.CanManageAnimals || m.CanManageMembers ||
		m.CanManageApplications || m.CanViewApplications
}
