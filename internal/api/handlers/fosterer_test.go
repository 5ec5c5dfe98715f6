package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"animal-rescue-backend/internal/api/handlers"
	"animal-rescue-backend/internal/auth"
	"animal-rescue-backend/internal/config"
	"animal-rescue-backend/internal/database/models"
	"animal-rescue-backend/internal/mocks"
	"animal-rescue-backend/internal/notifications"
	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FostererHandlerTestSuite defines the test suite for FostererHandler
type FostererHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockFostererRepo *mocks.MockFostererRepositoryInterface
	mockUserRepo     *mocks.MockUserRepositoryInterface
	recorder         *notifications.RecorderProvider
	handler          *handlers.FostererHandler
}

func (suite *FostererHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFostererRepo = mocks.NewMockFostererRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.recorder = notifications.NewRecorderProvider()

	cfg := &config.Config{InternalNotifyList: "staff@rescue.test"}
	fostererService := service.NewFostererService(
		suite.mockFostererRepo, notifications.NewNotifier(suite.recorder), cfg, validator.New())
	userService := service.NewUserService(
		suite.mockUserRepo,
		auth.NewAuthService(&config.Config{JWTSecret: "test-secret"}),
		notifications.NewNotifier(notifications.NewRecorderProvider()),
		validator.New())
	suite.handler = handlers.NewFostererHandler(fostererService, userService)
}

func (suite *FostererHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FostererHandlerTestSuite) newRouter(userID *uuid.UUID) *gin.Engine {
	r := gin.New()
	if userID != nil {
		id := *userID
		r.Use(func(c *gin.Context) {
			c.Set("user_id", id)
		})
	}
	r.GET("/me/fosterer", suite.handler.GetState)
	r.POST("/me/fosterer/:stage", suite.handler.SubmitStage)
	return r
}

func (suite *FostererHandlerTestSuite) caller() *models.User {
	user := &models.User{Email: "jane@example.com", Username: "jane"}
	user.ID = uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	return user
}

// TestGetState_FirstAccess tests that the first visit creates an empty profile
func (suite *FostererHandlerTestSuite) TestGetState_FirstAccess() {
	user := suite.caller()

	suite.mockFostererRepo.EXPECT().GetByUserID(user.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockFostererRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(profile *models.FostererProfile) error {
		assert.Equal(suite.T(), user.ID, profile.UserID)
		assert.Equal(suite.T(), user.Email, profile.Email)
		profile.ID = uuid.New()
		return nil
	})

	w := jsonRequest(suite.newRouter(&user.ID), http.MethodGet, "/me/fosterer", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.WizardStateResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.IsComplete)
	assert.Equal(suite.T(), service.StageAboutYou, got.NextStage)
}

// TestGetState_Anonymous tests that the wizard requires a session
func (suite *FostererHandlerTestSuite) TestGetState_Anonymous() {
	w := jsonRequest(suite.newRouter(nil), http.MethodGet, "/me/fosterer", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestSubmitAboutYou_Success tests saving the first wizard stage
func (suite *FostererHandlerTestSuite) TestSubmitAboutYou_Success() {
	user := suite.caller()

	profile := &models.FostererProfile{UserID: user.ID, Email: user.Email}
	profile.ID = uuid.New()
	suite.mockFostererRepo.EXPECT().GetByUserID(user.ID).Return(profile, nil)
	suite.mockFostererRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.FostererProfile) error {
		assert.Equal(suite.T(), "Jane", p.Firstname)
		assert.Equal(suite.T(), "94103", p.ZipCode)
		return nil
	})
	suite.mockFostererRepo.EXPECT().GetByID(profile.ID).Return(profile, nil)

	w := postJSON(suite.newRouter(&user.ID), "/me/fosterer/about-you", map[string]string{
		"firstname":      "Jane",
		"lastname":       "Doe",
		"email":          "jane@example.com",
		"phone":          "415-555-0101",
		"street_address": "1 Foster Lane",
		"city":           "San Francisco",
		"state":          "CA",
		"zip_code":       "94103",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.WizardStateResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.StagesComplete[service.StageAboutYou])
}

// TestSubmitAboutYou_MissingFields tests that required stage fields are enforced
func (suite *FostererHandlerTestSuite) TestSubmitAboutYou_MissingFields() {
	user := suite.caller()

	w := postJSON(suite.newRouter(&user.ID), "/me/fosterer/about-you", map[string]string{
		"firstname": "Jane",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestSubmitPetExperience_UndescribedPets tests declaring more pets than described
func (suite *FostererHandlerTestSuite) TestSubmitPetExperience_UndescribedPets() {
	user := suite.caller()

	profile := &models.FostererProfile{UserID: user.ID}
	profile.ID = uuid.New()
	suite.mockFostererRepo.EXPECT().GetByUserID(user.ID).Return(profile, nil)

	w := postJSON(suite.newRouter(&user.ID), "/me/fosterer/pet-experience", map[string]interface{}{
		"num_existing_pets":      2,
		"existing_pets":          []map[string]string{{"name": "Milo", "type_of_animal": "cat"}},
		"experience_description": "Fostered kittens for two seasons",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestSubmitStage_UnknownStage tests posting to a stage that does not exist
func (suite *FostererHandlerTestSuite) TestSubmitStage_UnknownStage() {
	userID := uuid.New()

	w := postJSON(suite.newRouter(&userID), "/me/fosterer/shoe-size", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestSubmitFinalThoughts_CompletesProfile tests the completion notification
func (suite *FostererHandlerTestSuite) TestSubmitFinalThoughts_CompletesProfile() {
	user := suite.caller()

	numPets := 1
	numPeople := 2
	profile := &models.FostererProfile{
		UserID:                user.ID,
		Firstname:             "Jane",
		Lastname:              "Doe",
		Email:                 "jane@example.com",
		TypeOfAnimals:         []string{"dog"},
		Timeframe:             models.TimeframeAnyDuration,
		NumExistingPets:       &numPets,
		ExperienceDescription: "Long-time foster",
		References:            []models.FostererReference{{Name: "Sam", Phone: "415-555-0102"}},
		NumPeopleInHome:       &numPeople,
		RentOwn:               models.TenancyOwn,
		YardType:              models.YardFullyFenced,
	}
	profile.ID = uuid.New()

	suite.mockFostererRepo.EXPECT().GetByUserID(user.ID).Return(profile, nil)
	suite.mockFostererRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.FostererProfile) error {
		assert.True(suite.T(), p.IsComplete)
		return nil
	})
	suite.mockFostererRepo.EXPECT().GetByID(profile.ID).Return(profile, nil)

	w := postJSON(suite.newRouter(&user.ID), "/me/fosterer/final-thoughts", map[string]string{
		"ever_been_convicted_abuse": "NO",
		"agree_share_details":       "YES",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.WizardStateResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.IsComplete)

	// staff hear about the newly completed profile
	sends := suite.recorder.Sends()
	assert.Len(suite.T(), sends, 1)
	assert.Equal(suite.T(), "staff@rescue.test", sends[0].To[0].Email)
}

// TestSubmitFinalThoughts_WithoutConsent tests that consent to share details is required
func (suite *FostererHandlerTestSuite) TestSubmitFinalThoughts_WithoutConsent() {
	user := suite.caller()

	profile := &models.FostererProfile{UserID: user.ID}
	profile.ID = uuid.New()
	suite.mockFostererRepo.EXPECT().GetByUserID(user.ID).Return(profile, nil)

	w := postJSON(suite.newRouter(&user.ID), "/me/fosterer/final-thoughts", map[string]string{
		"ever_been_convicted_abuse": "NO",
		"agree_share_details":       "NO",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Empty(suite.T(), suite.recorder.Sends())
}

func TestFostererHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FostererHandlerTestSuite))
}
