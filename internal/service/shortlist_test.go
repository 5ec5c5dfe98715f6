package service_test

import (
	"testing"

	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/mocks"
	"animal-rescue-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ShortListServiceTestSuite defines the test suite for ShortListService
type ShortListServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockShortListRepositoryInterface
	mockAnimalRepo   *mocks.MockAnimalRepositoryInterface
	shortListService *service.ShortListService
}

// SetupTest sets up the test suite
func (suite *ShortListServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockShortListRepositoryInterface(suite.ctrl)
	suite.mockAnimalRepo = mocks.NewMockAnimalRepositoryInterface(suite.ctrl)
	suite.shortListService = service.NewShortListService(suite.mockRepo, suite.mockAnimalRepo)
}

// TearDownTest cleans up after each test
func (suite *ShortListServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestToggleAdds tests that toggling an unlisted animal creates an entry
func (suite *ShortListServiceTestSuite) TestToggleAdds() {
	user := &models.User{}
	user.ID = uuid.New()
	animal := publishedAnimal()

	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil).Times(1)
	suite.mockRepo.EXPECT().Get(user.ID, animal.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.AnimalShortList) error {
			assert.Equal(suite.T(), user.ID, entry.UserID)
			assert.Equal(suite.T(), animal.ID, entry.AnimalID)
			return nil
		}).
		Times(1)

	response, err := suite.shortListService.Toggle(user, animal.ID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.True(suite.T(), response.IsShortlisted)
	assert.Equal(suite.T(), animal.ID, response.AnimalID)
}

// TestToggleRemoves tests that toggling an already shortlisted animal removes it
func (suite *ShortListServiceTestSuite) TestToggleRemoves() {
	user := &models.User{}
	user.ID = uuid.New()
	animal := publishedAnimal()

	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil).Times(1)
	suite.mockRepo.EXPECT().
		Get(user.ID, animal.ID).
		Return(&models.AnimalShortList{UserID: user.ID, AnimalID: animal.ID}, nil).
		Times(1)
	suite.mockRepo.EXPECT().Delete(user.ID, animal.ID).Return(nil).Times(1)

	response, err := suite.shortListService.Toggle(user, animal.ID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.False(suite.T(), response.IsShortlisted)
}

// TestToggleAnonymous tests that an anonymous toggle is rejected
func (suite *ShortListServiceTestSuite) TestToggleAnonymous() {
	response, err := suite.shortListService.Toggle(nil, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrMustBeLoggedIn)
	assert.Nil(suite.T(), response)
}

// TestToggleHiddenAnimal tests that an animal in an unpublished org cannot be shortlisted
func (suite *ShortListServiceTestSuite) TestToggleHiddenAnimal() {
	user := &models.User{}
	user.ID = uuid.New()
	animal := publishedAnimal()
	animal.Awg.Status = models.AwgStatusUnpublished

	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil).Times(1)

	response, err := suite.shortListService.Toggle(user, animal.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAnimalNotFound)
	assert.Nil(suite.T(), response)
}

// TestToggleUnknownAnimal tests that a missing animal maps to a not-found error
func (suite *ShortListServiceTestSuite) TestToggleUnknownAnimal() {
	user := &models.User{}
	user.ID = uuid.New()
	animalID := uuid.New()

	suite.mockAnimalRepo.EXPECT().GetByID(animalID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.shortListService.Toggle(user, animalID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAnimalNotFound)
	assert.Nil(suite.T(), response)
}

// TestToggleConcurrentCreate tests that a duplicate-key race still reports the listed state
func (suite *ShortListServiceTestSuite) TestToggleConcurrentCreate() {
	user := &models.User{}
	user.ID = uuid.New()
	animal := publishedAnimal()

	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil).Times(1)
	suite.mockRepo.EXPECT().Get(user.ID, animal.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey).Times(1)

	response, err := suite.shortListService.Toggle(user, animal.ID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.True(suite.T(), response.IsShortlisted)
}

// TestShortListServiceTestSuite runs the test suite
func TestShortListServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShortListServiceTestSuite))
}
