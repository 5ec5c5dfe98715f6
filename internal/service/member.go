package service

import (
	"errors"
	"fmt"
	"time"

	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService handles business logic for organization memberships
type MemberService struct {
	repo        repository.MemberRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	awgRepo     repository.AwgRepositoryInterface
	permissions *PermissionsService
	validator   *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, userRepo repository.UserRepositoryInterface, awgRepo repository.AwgRepositoryInterface, permissions *PermissionsService, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:        repo,
		userRepo:    userRepo,
		awgRepo:     awgRepo,
		permissions: permissions,
		validator:   validator,
	}
}

// AddMemberRequest invites an existing account into an organization
type AddMemberRequest struct {
	Email        string        `json:"email" validate:"required,email"`
	Capabilities CapabilitySet `json:"capabilities"`
}

// UpdateMemberRequest replaces a member's capability flags
type UpdateMemberRequest struct {
	Capabilities CapabilitySet `json:"capabilities"`
}

// MemberResponse represents the response for membership operations
type MemberResponse struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"user_id"`
	AwgID        uuid.UUID     `json:"awg_id"`
	Email        string        `json:"email"`
	Username     string        `json:"username"`
	Capabilities CapabilitySet `json:"capabilities"`
	CreatedAt    string        `json:"created_at"`
}

// List lists an organization's members. Requires any capability on the org.
func (s *MemberService) List(user *models.User, awgID uuid.UUID) ([]MemberResponse, error) {
	if _, err := s.permissions.RequireCapability(user, awgID, CapabilitySet.HasAny); err != nil {
		return nil, err
	}
	members, err := s.repo.GetByAwg(awgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	out := make([]MemberResponse, len(members))
	for i := range members {
		out[i] = *toMemberResponse(&members[i])
	}
	return out, nil
}

// Add grants an existing account membership in an organization.
// Requires the manage-members capability; the new member needs at least one flag.
func (s *MemberService) Add(user *models.User, awgID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error) {
	if _, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool { return c.CanManageMembers }); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Capabilities.HasAny() {
		return nil, apperrors.ErrMemberNeedsCapability
	}

	if _, err := s.awgRepo.GetByID(awgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAwgNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	target, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	member := &models.AwgMember{
		UserID:                target.ID,
		AwgID:                 awgID,
		CanEditProfile:        req.Capabilities.CanEditProfile,
		CanManageAnimals:      req.Capabilities.CanManageAnimals,
		CanManageMembers:      req.Capabilities.CanManageMembers,
		CanManageApplications: req.Capabilities.CanManageApplications,
		CanViewApplications:   req.Capabilities.CanViewApplications,
	}
	if err := s.repo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMemberExists
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	member.User = target
	return toMemberResponse(member), nil
}

// Update replaces a member's capability flags. Requires manage-members.
func (s *MemberService) Update(user *models.User, awgID, memberID uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	if _, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool { return c.CanManageMembers }); err != nil {
		return nil, err
	}
	if !req.Capabilities.HasAny() {
		return nil, apperrors.ErrMemberNeedsCapability
	}

	member, err := s.getMemberInAwg(memberID, awgID)
	if err != nil {
		return nil, err
	}

	member.CanEditProfile = req.Capabilities.CanEditProfile
	member.CanManageAnimals = req.Capabilities.CanManageAnimals
	member.CanManageMembers = req.Capabilities.CanManageMembers
	member.CanManageApplications = req.Capabilities.CanManageApplications
	member.CanViewApplications = req.Capabilities.CanViewApplications

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return toMemberResponse(member), nil
}

// Remove deletes a membership. Requires manage-members.
func (s *MemberService) Remove(user *models.User, awgID, memberID uuid.UUID) error {
	if _, err := s.permissions.RequireCapability(user, awgID, func(c CapabilitySet) bool { return c.CanManageMembers }); err != nil {
		return err
	}
	member, err := s.getMemberInAwg(memberID, awgID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(member.ID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// getMemberInAwg loads a membership and checks it belongs to the given org,
// so a manage-members grant on one org cannot touch another org's rows.
func (s *MemberService) getMemberInAwg(memberID, awgID uuid.UUID) (*models.AwgMember, error) {
	member, err := s.repo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member.AwgID != awgID {
		return nil, apperrors.ErrMemberNotFound
	}
	return member, nil
}

func toMemberResponse(member *models.AwgMember) *MemberResponse {
	resp := &MemberResponse{
		ID:     member.ID,
		UserID: member.UserID,
		AwgID:  member.AwgID,
		Capabilities: CapabilitySet{
			CanEditProfile:        member.CanEditProfile,
			CanManageAnimals:      member.CanManageAnimals,
			CanManageMembers:      member.CanManageMembers,
			CanManageApplications: member.CanManageApplications,
			CanViewApplications:   member.CanViewApplications,
		},
		CreatedAt: member.CreatedAt.Format(time.RFC3339),
	}
	if member.User != nil {
		resp.Email = member.User.Email
		resp.Username = member.User.Username
	}
	return resp
}
