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

// CapabilitySet is a user's effective capabilities within one organization.
// Staff users get every capability for every organization; other users get
// exactly their membership flags.
type CapabilitySet struct {
	CanEditProfile        bool `json:"canEditProfile"`
	CanManageAnimals      bool `json:"canManageAnimals"`
	CanManageMembers      bool `json:"canManageMembers"`
	CanManageApplications bool `json:"canManageApplications"`
	CanViewApplications   bool `json:"canViewApplications"`
}

var allCapabilities = CapabilitySet{
	CanEditProfile:        true,
	CanManageAnimals:      true,
	CanManageMembers:      true,
	CanManageApplications: true,
	CanViewApplications:   true,
}

// HasAny reports whether at least one capability is present.
func (c CapabilitySet) HasAny() bool {
	return c.CanEditProfile || c.CanManageAnimals || c.CanManageMembers ||
		c.CanManageApplications || c.CanViewApplications
}

// PermissionsService resolves a user's capabilities for an organization
type PermissionsService struct {
	memberRepo repository.MemberRepositoryInterface
}

// NewPermissionsService creates a new permissions service
func NewPermissionsService(memberRepo repository.MemberRepositoryInterface) *PermissionsService {
	return &PermissionsService{memberRepo: memberRepo}
}

// Resolve returns the user's effective capability set for an organization.
// Unknown users and non-members resolve to the empty set, not an error.
func (s *PermissionsService) Resolve(user *models.User, awgID uuid.UUID) (CapabilitySet, error) {
	if user == nil {
		return CapabilitySet{}, nil
	}
	if user.IsStaff {
		return allCapabilities, nil
	}
	member, err := s.memberRepo.GetByUserAndAwg(user.ID, awgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CapabilitySet{}, nil
		}
		return CapabilitySet{}, fmt.Errorf("failed to resolve membership: %w", err)
	}
	return CapabilitySet{
		CanEditProfile:        member.CanEditProfile,
		CanManageAnimals:      member.CanManageAnimals,
		CanManageMembers:      member.CanManageMembers,
		CanManageApplications: member.CanManageApplications,
		CanViewApplications:   member.CanViewApplications,
	}, nil
}

// RequireCapability resolves capabilities and fails with an authorization
// error unless the selector returns true for them.
func (s *PermissionsService) RequireCapability(user *models.User, awgID uuid.UUID, selector func(CapabilitySet) bool) (CapabilitySet, error) {
	if user == nil {
		return CapabilitySet{}, apperrors.ErrMustBeLoggedIn
	}
	caps, err := s.Resolve(user, awgID)
	if err != nil {
		return CapabilitySet{}, err
	}
	if !selector(caps) {
		return CapabilitySet{}, apperrors.ErrMissingCapability
	}
	return caps, nil
}
