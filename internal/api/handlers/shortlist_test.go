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

// ShortListHandlerTestSuite defines the test suite for ShortListHandler
type ShortListHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockShortlistRepo *mocks.MockShortListRepositoryInterface
	mockAnimalRepo    *mocks.MockAnimalRepositoryInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	handler           *handlers.ShortListHandler
}

func (suite *ShortListHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShortlistRepo = mocks.NewMockShortListRepositoryInterface(suite.ctrl)
	suite.mockAnimalRepo = mocks.NewMockAnimalRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	shortlistService := service.NewShortListService(suite.mockShortlistRepo, suite.mockAnimalRepo)
	userService := service.NewUserService(
		suite.mockUserRepo,
		auth.NewAuthService(&config.Config{JWTSecret: "test-secret"}),
		notifications.NewNotifier(notifications.NewRecorderProvider()),
		validator.New())
	suite.handler = handlers.NewShortListHandler(shortlistService, userService)
}

func (suite *ShortListHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShortListHandlerTestSuite) newRouter(userID *uuid.UUID) *gin.Engine {
	r := gin.New()
	if userID != nil {
		id := *userID
		r.Use(func(c *gin.Context) {
			c.Set("user_id", id)
		})
	}
	r.POST("/animals/:id/shortlist", suite.handler.Toggle)
	return r
}

// TestToggle_Add tests shortlisting an animal that was not yet listed
func (suite *ShortListHandlerTestSuite) TestToggle_Add() {
	user := &models.User{Email: "jane@example.com"}
	user.ID = uuid.New()
	animal := listedAnimal()

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(&animal, nil)
	suite.mockShortlistRepo.EXPECT().Get(user.ID, animal.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockShortlistRepo.EXPECT().Create(gomock.Any()).Return(nil)

	w := postJSON(suite.newRouter(&user.ID), "/animals/"+animal.ID.String()+"/shortlist", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ToggleResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), animal.ID, got.AnimalID)
	assert.True(suite.T(), got.IsShortlisted)
}

// TestToggle_Remove tests un-shortlisting an already listed animal
func (suite *ShortListHandlerTestSuite) TestToggle_Remove() {
	user := &models.User{Email: "jane@example.com"}
	user.ID = uuid.New()
	animal := listedAnimal()
	entry := &models.AnimalShortList{UserID: user.ID, AnimalID: animal.ID}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(&animal, nil)
	suite.mockShortlistRepo.EXPECT().Get(user.ID, animal.ID).Return(entry, nil)
	suite.mockShortlistRepo.EXPECT().Delete(user.ID, animal.ID).Return(nil)

	w := postJSON(suite.newRouter(&user.ID), "/animals/"+animal.ID.String()+"/shortlist", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ToggleResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.IsShortlisted)
}

// TestToggle_Anonymous tests that shortlisting requires a session
func (suite *ShortListHandlerTestSuite) TestToggle_Anonymous() {
	w := postJSON(suite.newRouter(nil), "/animals/"+uuid.NewString()+"/shortlist", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestToggle_UnknownAnimal tests toggling an animal that does not exist
func (suite *ShortListHandlerTestSuite) TestToggle_UnknownAnimal() {
	user := &models.User{}
	user.ID = uuid.New()
	animalID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockAnimalRepo.EXPECT().GetByID(animalID).Return(nil, gorm.ErrRecordNotFound)

	w := postJSON(suite.newRouter(&user.ID), "/animals/"+animalID.String()+"/shortlist", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestToggle_InvalidID tests rejecting a malformed animal id
func (suite *ShortListHandlerTestSuite) TestToggle_InvalidID() {
	user := &models.User{}
	user.ID = uuid.New()

	w := postJSON(suite.newRouter(&user.ID), "/animals/nope/shortlist", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestShortListHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShortListHandlerTestSuite))
}
