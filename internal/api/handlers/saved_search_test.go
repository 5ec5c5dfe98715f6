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

// SavedSearchHandlerTestSuite defines the test suite for SavedSearchHandler
type SavedSearchHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockSearchRepo *mocks.MockSavedSearchRepositoryInterface
	mockAnimalRepo *mocks.MockAnimalRepositoryInterface
	mockZipRepo    *mocks.MockZipCodeRepositoryInterface
	mockBreedRepo  *mocks.MockBreedRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	recorder       *notifications.RecorderProvider
	handler        *handlers.SavedSearchHandler
}

func (suite *SavedSearchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSearchRepo = mocks.NewMockSavedSearchRepositoryInterface(suite.ctrl)
	suite.mockAnimalRepo = mocks.NewMockAnimalRepositoryInterface(suite.ctrl)
	suite.mockZipRepo = mocks.NewMockZipCodeRepositoryInterface(suite.ctrl)
	suite.mockBreedRepo = mocks.NewMockBreedRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.recorder = notifications.NewRecorderProvider()

	cfg := &config.Config{BaseURL: "https://rescue.test"}
	savedSearchService := service.NewSavedSearchService(
		suite.mockSearchRepo, suite.mockAnimalRepo, suite.mockZipRepo, suite.mockBreedRepo,
		notifications.NewNotifier(suite.recorder), cfg, validator.New())
	userService := service.NewUserService(
		suite.mockUserRepo,
		auth.NewAuthService(&config.Config{JWTSecret: "test-secret"}),
		notifications.NewNotifier(notifications.NewRecorderProvider()),
		validator.New())
	suite.handler = handlers.NewSavedSearchHandler(savedSearchService, userService)
}

func (suite *SavedSearchHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SavedSearchHandlerTestSuite) newRouter(userID *uuid.UUID) *gin.Engine {
	r := gin.New()
	if userID != nil {
		id := *userID
		r.Use(func(c *gin.Context) {
			c.Set("user_id", id)
		})
	}
	r.POST("/me/saved-searches", suite.handler.Create)
	r.GET("/me/saved-searches", suite.handler.List)
	r.PUT("/me/saved-searches/:id", suite.handler.Update)
	r.DELETE("/me/saved-searches/:id", suite.handler.Delete)
	r.POST("/staff/digest/run", suite.handler.RunDigest)
	return r
}

func (suite *SavedSearchHandlerTestSuite) caller() *models.User {
	user := &models.User{Email: "jane@example.com", Username: "jane"}
	user.ID = uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	return user
}

// TestCreate_Success tests saving search criteria for later digests
func (suite *SavedSearchHandlerTestSuite) TestCreate_Success() {
	user := suite.caller()

	zip := &models.ZipCode{Zip: "94103", Latitude: 37.7726, Longitude: -122.4099}
	suite.mockZipRepo.EXPECT().GetByZip("94103").Return(zip, nil)
	suite.mockSearchRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(search *models.SavedSearch) error {
		assert.Equal(suite.T(), user.ID, search.UserID)
		assert.Equal(suite.T(), models.AnimalTypeDog, search.AnimalType)
		assert.Equal(suite.T(), "94103", search.ZipCode)
		assert.InDelta(suite.T(), 37.7726, search.Latitude, 0.0001)
		assert.True(suite.T(), search.IsNotificationsEnabled)
		search.ID = uuid.New()
		return nil
	})

	w := postJSON(suite.newRouter(&user.ID), "/me/saved-searches", map[string]interface{}{
		"name":        "Senior dogs near me",
		"animal_type": "dog",
		"zip_code":    "94103",
		"age":         "senior",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.SavedSearchResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Senior dogs near me", got.Name)
	assert.Equal(suite.T(), models.AnimalTypeDog, got.AnimalType)
	if assert.NotNil(suite.T(), got.Age) {
		assert.Equal(suite.T(), models.AnimalAgeSenior, *got.Age)
	}
	assert.True(suite.T(), got.IsNotificationsEnabled)
}

// TestCreate_UnknownBreed tests saving a search for a breed we do not know
func (suite *SavedSearchHandlerTestSuite) TestCreate_UnknownBreed() {
	user := suite.caller()
	suite.mockBreedRepo.EXPECT().GetBySlug("unicorn").Return(nil, gorm.ErrRecordNotFound)

	w := postJSON(suite.newRouter(&user.ID), "/me/saved-searches", map[string]interface{}{
		"name":        "Unicorns",
		"animal_type": "dog",
		"breed_slug":  "unicorn",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCreate_Anonymous tests that saving a search requires a session
func (suite *SavedSearchHandlerTestSuite) TestCreate_Anonymous() {
	w := postJSON(suite.newRouter(nil), "/me/saved-searches", map[string]interface{}{
		"name":        "Senior dogs",
		"animal_type": "dog",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestList_Success tests listing the caller's saved searches
func (suite *SavedSearchHandlerTestSuite) TestList_Success() {
	user := suite.caller()

	search := models.SavedSearch{
		UserID:                 user.ID,
		Name:                   "Senior dogs",
		AnimalType:             models.AnimalTypeDog,
		IsNotificationsEnabled: true,
	}
	search.ID = uuid.New()
	suite.mockSearchRepo.EXPECT().GetByUser(user.ID).Return([]models.SavedSearch{search}, nil)

	w := jsonRequest(suite.newRouter(&user.ID), http.MethodGet, "/me/saved-searches", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string][]service.SavedSearchResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got["saved_searches"], 1)
	assert.Equal(suite.T(), "Senior dogs", got["saved_searches"][0].Name)
}

// TestUpdate_NotOwner tests that saved searches are invisible to other users
func (suite *SavedSearchHandlerTestSuite) TestUpdate_NotOwner() {
	user := suite.caller()

	search := &models.SavedSearch{UserID: uuid.New(), Name: "Senior dogs", AnimalType: models.AnimalTypeDog}
	search.ID = uuid.New()
	suite.mockSearchRepo.EXPECT().GetByID(search.ID).Return(search, nil)

	w := jsonRequest(suite.newRouter(&user.ID), http.MethodPut,
		"/me/saved-searches/"+search.ID.String(), map[string]interface{}{
			"name":        "Senior dogs",
			"animal_type": "dog",
		})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDelete_Success tests removing a saved search
func (suite *SavedSearchHandlerTestSuite) TestDelete_Success() {
	user := suite.caller()

	search := &models.SavedSearch{UserID: user.ID, Name: "Senior dogs", AnimalType: models.AnimalTypeDog}
	search.ID = uuid.New()
	suite.mockSearchRepo.EXPECT().GetByID(search.ID).Return(search, nil)
	suite.mockSearchRepo.EXPECT().Delete(search.ID).Return(nil)

	w := jsonRequest(suite.newRouter(&user.ID), http.MethodDelete, "/me/saved-searches/"+search.ID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestRunDigest_NothingDue tests the digest endpoint with no notifiable searches
func (suite *SavedSearchHandlerTestSuite) TestRunDigest_NothingDue() {
	suite.mockSearchRepo.EXPECT().GetNotifiable().Return([]models.SavedSearch{}, nil)

	w := postJSON(suite.newRouter(nil), "/staff/digest/run", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.DigestRunResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Zero(suite.T(), got.Checked)
	assert.Zero(suite.T(), got.Notified)
	assert.Empty(suite.T(), suite.recorder.Sends())
}

func TestSavedSearchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SavedSearchHandlerTestSuite))
}
