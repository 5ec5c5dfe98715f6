package service

import (
	"context"
	"errors"
	"fmt"

	"animal-rescue-backend/internal/config"
	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/notifications"
	"animal-rescue-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// WizardStage identifies one step of the fosterer profile wizard.
type WizardStage string

const (
	StageAboutYou          WizardStage = "about-you"
	StageAnimalPreferences WizardStage = "animal-preferences"
	StagePetExperience     WizardStage = "pet-experience"
	StageReferences        WizardStage = "references"
	StageHouseholdDetails  WizardStage = "household-details"
	StageFinalThoughts     WizardStage = "final-thoughts"
	StageComplete          WizardStage = "complete"
)

// WizardStages is the canonical stage order.
var WizardStages = []WizardStage{
	StageAboutYou,
	StageAnimalPreferences,
	StagePetExperience,
	StageReferences,
	StageHouseholdDetails,
	StageFinalThoughts,
	StageComplete,
}

const (
	// MaxExistingPets is the number of pet slots on the pet-experience stage.
	MaxExistingPets = 6
	// MaxReferences is the number of reference slots.
	MaxReferences = 3
)

// FostererService handles the multi-stage fosterer profile wizard
type FostererService struct {
	repo      repository.FostererRepositoryInterface
	notifier  *notifications.Notifier
	config    *config.Config
	validator *validator.Validate
}

// NewFostererService creates a new fosterer service
func NewFostererService(repo repository.FostererRepositoryInterface, notifier *notifications.Notifier, cfg *config.Config, validator *validator.Validate) *FostererService {
	return &FostererService{
		repo:      repo,
		notifier:  notifier,
		config:    cfg,
		validator: validator,
	}
}

// AboutYouRequest is the about-you stage payload
type AboutYouRequest struct {
	Firstname     string `json:"firstname" validate:"required,max=64"`
	Lastname      string `json:"lastname" validate:"required,max=64"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Phone         string `json:"phone" validate:"required,max=32"`
	StreetAddress string `json:"street_address" validate:"required,max=244"`
	City          string `json:"city" validate:"required,max=32"`
	State         string `json:"state" validate:"required,len=2"`
	ZipCode       string `json:"zip_code" validate:"required,len=5,numeric"`
}

// AnimalPreferencesRequest is the animal-preferences stage payload
type AnimalPreferencesRequest struct {
	TypeOfAnimals         []string         `json:"type_of_animals" validate:"required,min=1"`
	CategoryOfAnimals     []string         `json:"category_of_animals"`
	BehaviouralAttributes []string         `json:"behavioural_attributes"`
	Timeframe             models.Timeframe `json:"timeframe" validate:"required"`
	TimeframeOther        string           `json:"timeframe_other" validate:"max=2000"`
}

// ExistingPetEntry is one slot of the pet-experience formset
type ExistingPetEntry struct {
	Name             string `json:"name" validate:"max=64"`
	TypeOfAnimal     string `json:"type_of_animal" validate:"max=32"`
	Breed            string `json:"breed" validate:"max=100"`
	Age              string `json:"age" validate:"max=16"`
	IsSpayedNeutered bool   `json:"is_spayed_neutered"`
}

// PetExperienceRequest is the pet-experience stage payload
type PetExperienceRequest struct {
	NumExistingPets       int                `json:"num_existing_pets" validate:"min=0"`
	ExistingPets          []ExistingPetEntry `json:"existing_pets" validate:"max=6,dive"`
	ExistingPetsDetails   string             `json:"existing_pets_details" validate:"max=5000"`
	ExperienceDescription string             `json:"experience_description" validate:"required,max=5000"`
	ExperienceCategories  []string           `json:"experience_categories"`
	ExperienceGivenUpPet  string             `json:"experience_given_up_pet" validate:"max=5000"`
}

// ReferenceEntry is one slot of the references formset
type ReferenceEntry struct {
	Name         string `json:"name" validate:"max=128"`
	Relationship string `json:"relationship" validate:"max=128"`
	Phone        string `json:"phone" validate:"max=32"`
	Email        string `json:"email" validate:"omitempty,email,max=255"`
}

// ReferencesRequest is the references stage payload
type ReferencesRequest struct {
	References []ReferenceEntry `json:"references" validate:"max=3,dive"`
}

// PersonInHomeEntry is one slot of the household formset
type PersonInHomeEntry struct {
	Name     string `json:"name" validate:"max=128"`
	Relation string `json:"relation" validate:"max=64"`
	Age      string `json:"age" validate:"max=16"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
}

// HouseholdDetailsRequest is the household-details stage payload
type HouseholdDetailsRequest struct {
	NumPeopleInHome       int                 `json:"num_people_in_home" validate:"min=0"`
	PeopleInHome          []PersonInHomeEntry `json:"people_in_home" validate:"dive"`
	PeopleAtHome          string              `json:"people_at_home" validate:"max=5000"`
	YardType              models.YardType     `json:"yard_type" validate:"required"`
	YardFenceOver5ft      models.YesNo        `json:"yard_fence_over_5ft"`
	RentOwn               models.Tenancy      `json:"rent_own" validate:"required"`
	RentRestrictions      string              `json:"rent_restrictions" validate:"max=5000"`
	RentLandlordContact   string              `json:"rent_landlord_contact" validate:"max=5000"`
	RentOkFosterPets      models.YesNo        `json:"rent_ok_foster_pets"`
	HoursAloneDescription string              `json:"hours_alone_description" validate:"required,max=5000"`
	HoursAloneLocation    string              `json:"hours_alone_location" validate:"required,max=5000"`
	SleepLocation         string              `json:"sleep_location" validate:"required,max=5000"`
}

// FinalThoughtsRequest is the final-thoughts stage payload
type FinalThoughtsRequest struct {
	OtherInfo              string       `json:"other_info" validate:"max=10000"`
	EverBeenConvictedAbuse models.YesNo `json:"ever_been_convicted_abuse" validate:"required"`
	AgreeShareDetails      models.YesNo `json:"agree_share_details" validate:"required"`
}

// WizardStateResponse describes the profile's progress through the wizard
type WizardStateResponse struct {
	Profile        *models.FostererProfile `json:"profile"`
	StagesComplete map[WizardStage]bool    `json:"stages_complete"`
	NextStage      WizardStage             `json:"next_stage"`
	IsComplete     bool                    `json:"is_complete"`
}

// GetState returns the user's wizard progress, creating an empty profile on
// first access so every stage has a row to write into.
func (s *FostererService) GetState(user *models.User) (*WizardStateResponse, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	profile, err := s.getOrCreate(user)
	if err != nil {
		return nil, err
	}
	return s.stateFor(profile), nil
}

// SubmitAboutYou stores the about-you stage
func (s *FostererService) SubmitAboutYou(user *models.User, req *AboutYouRequest) (*WizardStateResponse, error) {
	profile, err := s.begin(user, req)
	if err != nil {
		return nil, err
	}
	profile.Firstname = req.Firstname
	profile.Lastname = req.Lastname
	profile.Email = req.Email
	profile.Phone = req.Phone
	profile.StreetAddress = req.StreetAddress
	profile.City = req.City
	profile.State = req.State
	profile.ZipCode = req.ZipCode
	return s.save(profile)
}

// SubmitAnimalPreferences stores the animal-preferences stage
func (s *FostererService) SubmitAnimalPreferences(user *models.User, req *AnimalPreferencesRequest) (*WizardStateResponse, error) {
	profile, err := s.begin(user, req)
	if err != nil {
		return nil, err
	}
	if !req.Timeframe.IsValid() {
		return nil, apperrors.NewValidationError("timeframe", "unknown timeframe")
	}
	if req.Timeframe == models.TimeframeOther && req.TimeframeOther == "" {
		return nil, apperrors.NewValidationError("timeframe_other", "required when timeframe is OTHER")
	}
	profile.TypeOfAnimals = req.TypeOfAnimals
	profile.CategoryOfAnimals = req.CategoryOfAnimals
	profile.BehaviouralAttributes = req.BehaviouralAttributes
	profile.Timeframe = req.Timeframe
	profile.TimeframeOther = req.TimeframeOther
	return s.save(profile)
}

// SubmitPetExperience stores the pet-experience stage. The whole submission
// is rejected when fewer pet entries are filled in than the declared count.
func (s *FostererService) SubmitPetExperience(user *models.User, req *PetExperienceRequest) (*WizardStateResponse, error) {
	profile, err := s.begin(user, req)
	if err != nil {
		return nil, err
	}

	pets := make([]models.FostererExistingPet, 0, len(req.ExistingPets))
	for _, entry := range req.ExistingPets {
		pet := models.FostererExistingPet{
			Name:             entry.Name,
			TypeOfAnimal:     entry.TypeOfAnimal,
			Breed:            entry.Breed,
			Age:              entry.Age,
			IsSpayedNeutered: entry.IsSpayedNeutered,
		}
		if pet.IsFilled() {
			pets = append(pets, pet)
		}
	}
	declared := req.NumExistingPets
	if declared > MaxExistingPets {
		declared = MaxExistingPets
	}
	if len(pets) < declared {
		return nil, apperrors.NewValidationError("existing_pets",
			fmt.Sprintf("%d pets declared but only %d described", declared, len(pets)))
	}

	num := req.NumExistingPets
	profile.NumExistingPets = &num
	profile.ExistingPetsDetails = req.ExistingPetsDetails
	profile.ExperienceDescription = req.ExperienceDescription
	profile.ExperienceCategories = req.ExperienceCategories
	profile.ExperienceGivenUpPet = req.ExperienceGivenUpPet

	if err := s.repo.ReplaceExistingPets(profile.ID, pets); err != nil {
		return nil, fmt.Errorf("failed to save pets: %w", err)
	}
	return s.save(profile)
}

// SubmitReferences stores the references stage. At least one filled
// reference is required.
func (s *FostererService) SubmitReferences(user *models.User, req *ReferencesRequest) (*WizardStateResponse, error) {
	profile, err := s.begin(user, req)
	if err != nil {
		return nil, err
	}

	refs := make([]models.FostererReference, 0, len(req.References))
	for _, entry := range req.References {
		ref := models.FostererReference{
			Name:         entry.Name,
			Relationship: entry.Relationship,
			Phone:        entry.Phone,
			Email:        entry.Email,
		}
		if ref.IsFilled() {
			refs = append(refs, ref)
		}
	}
	if len(refs) == 0 {
		return nil, apperrors.NewValidationError("references", "at least one reference is required")
	}

	if err := s.repo.ReplaceReferences(profile.ID, refs); err != nil {
		return nil, fmt.Errorf("failed to save references: %w", err)
	}
	return s.save(profile)
}

// SubmitHouseholdDetails stores the household-details stage. Renters must
// provide landlord details; the people formset is reconciled against the
// declared household size.
func (s *FostererService) SubmitHouseholdDetails(user *models.User, req *HouseholdDetailsRequest) (*WizardStateResponse, error) {
	profile, err := s.begin(user, req)
	if err != nil {
		return nil, err
	}
	if !req.YardType.IsValid() {
		return nil, apperrors.NewValidationError("yard_type", "unknown yard type")
	}
	if !req.RentOwn.IsValid() {
		return nil, apperrors.NewValidationError("rent_own", "must be RENT or OWN")
	}
	if req.RentOwn == models.TenancyRent {
		if req.RentRestrictions == "" {
			return nil, apperrors.NewValidationError("rent_restrictions", "required for renters")
		}
		if req.RentLandlordContact == "" {
			return nil, apperrors.NewValidationError("rent_landlord_contact", "required for renters")
		}
		if !req.RentOkFosterPets.IsValid() {
			return nil, apperrors.NewValidationError("rent_ok_foster_pets", "required for renters")
		}
	}

	people := make([]models.FostererPersonInHome, 0, len(req.PeopleInHome))
	for _, entry := range req.PeopleInHome {
		person := models.FostererPersonInHome{
			Name:     entry.Name,
			Relation: entry.Relation,
			Age:      entry.Age,
			Email:    entry.Email,
		}
		if person.IsFilled() {
			people = append(people, person)
		}
	}
	if len(people) < req.NumPeopleInHome {
		return nil, apperrors.NewValidationError("people_in_home",
			fmt.Sprintf("%d people declared but only %d described", req.NumPeopleInHome, len(people)))
	}

	num := req.NumPeopleInHome
	profile.NumPeopleInHome = &num
	profile.PeopleAtHome = req.PeopleAtHome
	profile.YardType = req.YardType
	profile.YardFenceOver5ft = req.YardFenceOver5ft
	profile.RentOwn = req.RentOwn
	profile.RentRestrictions = req.RentRestrictions
	profile.RentLandlordContact = req.RentLandlordContact
	profile.RentOkFosterPets = req.RentOkFosterPets
	profile.HoursAloneDescription = req.HoursAloneDescription
	profile.HoursAloneLocation = req.HoursAloneLocation
	profile.SleepLocation = req.SleepLocation

	if err := s.repo.ReplacePeopleInHome(profile.ID, people); err != nil {
		return nil, fmt.Errorf("failed to save household: %w", err)
	}
	return s.save(profile)
}

// SubmitFinalThoughts stores the last stage and, when every earlier stage is
// complete, marks the profile complete. Completion fires the internal
// notification exactly once.
func (s *FostererService) SubmitFinalThoughts(ctx context.Context, user *models.User, req *FinalThoughtsRequest) (*WizardStateResponse, error) {
	profile, err := s.begin(user, req)
	if err != nil {
		return nil, err
	}
	if !req.EverBeenConvictedAbuse.IsValid() {
		return nil, apperrors.NewValidationError("ever_been_convicted_abuse", "must be YES or NO")
	}
	if req.AgreeShareDetails != models.Yes {
		return nil, apperrors.NewValidationError("agree_share_details", "consent to share details is required")
	}

	profile.OtherInfo = req.OtherInfo
	profile.EverBeenConvictedAbuse = req.EverBeenConvictedAbuse
	profile.AgreeShareDetails = req.AgreeShareDetails

	wasComplete := profile.IsComplete
	if s.allPriorStagesComplete(profile) {
		profile.IsComplete = true
	}

	state, err := s.save(profile)
	if err != nil {
		return nil, err
	}

	if !wasComplete && profile.IsComplete {
		s.notifier.Notify(ctx, notifications.Message{
			Template: notifications.TemplateFostererProfileComplete,
			To:       internalRecipients(s.config),
			Context: map[string]interface{}{
				"FostererName":  profile.Firstname + " " + profile.Lastname,
				"FostererEmail": profile.Email,
			},
		})
	}
	return state, nil
}

func (s *FostererService) begin(user *models.User, req interface{}) (*models.FostererProfile, error) {
	if user == nil {
		return nil, apperrors.ErrMustBeLoggedIn
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return s.getOrCreate(user)
}

func (s *FostererService) getOrCreate(user *models.User) (*models.FostererProfile, error) {
	profile, err := s.repo.GetByUserID(user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	profile = &models.FostererProfile{UserID: user.ID, Email: user.Email}
	if err := s.repo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

func (s *FostererService) save(profile *models.FostererProfile) (*WizardStateResponse, error) {
	if err := s.repo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	fresh, err := s.repo.GetByID(profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return s.stateFor(fresh), nil
}

// stageComplete reports whether a stage's required fields have been stored.
func stageComplete(profile *models.FostererProfile, stage WizardStage) bool {
	switch stage {
	case StageAboutYou:
		return profile.Firstname != "" && profile.Lastname != "" && profile.Email != ""
	case StageAnimalPreferences:
		return len(profile.TypeOfAnimals) > 0 && profile.Timeframe != ""
	case StagePetExperience:
		return profile.NumExistingPets != nil && profile.ExperienceDescription != ""
	case StageReferences:
		for i := range profile.References {
			if profile.References[i].IsFilled() {
				return true
			}
		}
		return false
	case StageHouseholdDetails:
		return profile.NumPeopleInHome != nil && profile.RentOwn != "" && profile.YardType != ""
	case StageFinalThoughts:
		return profile.AgreeShareDetails == models.Yes
	case StageComplete:
		return profile.IsComplete
	}
	return false
}

func (s *FostererService) allPriorStagesComplete(profile *models.FostererProfile) bool {
	for _, stage := range WizardStages[:len(WizardStages)-2] {
		if !stageComplete(profile, stage) {
			return false
		}
	}
	return true
}

func (s *FostererService) stateFor(profile *models.FostererProfile) *WizardStateResponse {
	state := &WizardStateResponse{
		Profile:        profile,
		StagesComplete: make(map[WizardStage]bool, len(WizardStages)),
		NextStage:      StageComplete,
		IsComplete:     profile.IsComplete,
	}
	for _, stage := range WizardStages {
		state.StagesComplete[stage] = stageComplete(profile, stage)
	}
	for _, stage := range WizardStages {
		if !state.StagesComplete[stage] {
			state.NextStage = stage
			break
		}
	}
	return state
}

// ParseStage validates a wizard stage path segment.
func ParseStage(raw string) (WizardStage, error) {
	stage := WizardStage(raw)
	for _, known := range WizardStages {
		if stage == known {
			return stage, nil
		}
	}
	return "", apperrors.ErrInvalidStage
}
