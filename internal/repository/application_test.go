//go:build integration
// +build integration

package repository

import (
	"testing"

	"animal-rescue-backend/internal/database/models"
	"animal-rescue-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ApplicationRepositoryTestSuite tests the ApplicationRepository
type ApplicationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ApplicationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ApplicationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewApplicationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ApplicationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ApplicationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ApplicationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedFostererAndAnimal creates a fosterer profile and a published animal
func (suite *ApplicationRepositoryTestSuite) seedFostererAndAnimal() (*models.FostererProfile, *models.Animal, *models.Awg) {
	db := suite.baseTestSuite.DB

	user := suite.factories.User.Create()
	suite.NoError(NewUserRepository(db).Create(user))
	profile := suite.factories.Fosterer.Complete(user.ID)
	suite.NoError(NewFostererRepository(db).Create(profile))

	awg := suite.factories.Awg.Create()
	suite.NoError(NewAwgRepository(db).Create(awg))
	breed := suite.factories.Breed.Create()
	suite.NoError(NewBreedRepository(db).Create(breed))
	animal := suite.factories.Animal.Create(awg.ID, breed.ID)
	suite.NoError(NewAnimalRepository(db).Create(animal))

	return profile, animal, awg
}

// TestCreate tests submitting an application
func (suite *ApplicationRepositoryTestSuite) TestCreate() {
	profile, animal, _ := suite.seedFostererAndAnimal()

	app := &models.FosterApplication{
		FostererID: profile.ID,
		AnimalID:   animal.ID,
		Status:     models.ApplicationStatusPending,
	}
	err := suite.repo.Create(app)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, app.ID)
	suite.NotZero(app.SubmittedOn)
}

// TestCreateDuplicate tests that one fosterer cannot apply twice for one animal
func (suite *ApplicationRepositoryTestSuite) TestCreateDuplicate() {
	profile, animal, _ := suite.seedFostererAndAnimal()

	first := &models.FosterApplication{
		FostererID: profile.ID,
		AnimalID:   animal.ID,
		Status:     models.ApplicationStatusPending,
	}
	suite.NoError(suite.repo.Create(first))

	second := &models.FosterApplication{
		FostererID: profile.ID,
		AnimalID:   animal.ID,
		Status:     models.ApplicationStatusPending,
	}
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByID tests loading an application with its relations
func (suite *ApplicationRepositoryTestSuite) TestGetByID() {
	profile, animal, awg := suite.seedFostererAndAnimal()

	app := &models.FosterApplication{
		FostererID: profile.ID,
		AnimalID:   animal.ID,
		Status:     models.ApplicationStatusPending,
	}
	suite.NoError(suite.repo.Create(app))

	found, err := suite.repo.GetByID(app.ID)

	suite.NoError(err)
	suite.Equal(app.ID, found.ID)
	if suite.NotNil(found.Fosterer) {
		suite.Equal(profile.ID, found.Fosterer.ID)
	}
	if suite.NotNil(found.Animal) {
		suite.Equal(animal.ID, found.Animal.ID)
		if suite.NotNil(found.Animal.Awg) {
			suite.Equal(awg.ID, found.Animal.Awg.ID)
		}
	}
}

// TestGetByAwgStatusFilter tests the org listing with a status filter
func (suite *ApplicationRepositoryTestSuite) TestGetByAwgStatusFilter() {
	profile, animal, awg := suite.seedFostererAndAnimal()

	// Second fosterer applying for the same animal
	otherUser := suite.factories.User.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(otherUser))
	otherProfile := suite.factories.Fosterer.Complete(otherUser.ID)
	suite.NoError(NewFostererRepository(suite.baseTestSuite.DB).Create(otherProfile))

	pending := &models.FosterApplication{
		FostererID: profile.ID,
		AnimalID:   animal.ID,
		Status:     models.ApplicationStatusPending,
	}
	suite.NoError(suite.repo.Create(pending))

	accepted := &models.FosterApplication{
		FostererID: otherProfile.ID,
		AnimalID:   animal.ID,
		Status:     models.ApplicationStatusAccepted,
	}
	suite.NoError(suite.repo.Create(accepted))

	status := models.ApplicationStatusPending
	apps, total, err := suite.repo.GetByAwg(awg.ID, &status, 100, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(apps, 1)
	suite.Equal(pending.ID, apps[0].ID)

	all, total, err := suite.repo.GetByAwg(awg.ID, nil, 100, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(all, 2)
}

// TestGetByFosterer tests listing a fosterer's own applications
func (suite *ApplicationRepositoryTestSuite) TestGetByFosterer() {
	profile, animal, _ := suite.seedFostererAndAnimal()

	app := &models.FosterApplication{
		FostererID: profile.ID,
		AnimalID:   animal.ID,
		Status:     models.ApplicationStatusPending,
	}
	suite.NoError(suite.repo.Create(app))

	apps, err := suite.repo.GetByFosterer(profile.ID)

	suite.NoError(err)
	suite.Len(apps, 1)
	if suite.NotNil(apps[0].Animal) {
		suite.Equal(animal.ID, apps[0].Animal.ID)
	}
}

// TestUpdate tests transitioning an application's status
func (suite *ApplicationRepositoryTestSuite) TestUpdate() {
	profile, animal, _ := suite.seedFostererAndAnimal()

	app := &models.FosterApplication{
		FostererID: profile.ID,
		AnimalID:   animal.ID,
		Status:     models.ApplicationStatusPending,
	}
	suite.NoError(suite.repo.Create(app))

	reason := models.RejectProperty
	app.Status = models.ApplicationStatusRejected
	app.RejectReason = &reason
	app.RejectReasonDetail = "No yard"
	suite.NoError(suite.repo.Update(app))

	found, err := suite.repo.GetByID(app.ID)
	suite.NoError(err)
	suite.Equal(models.ApplicationStatusRejected, found.Status)
	if suite.NotNil(found.RejectReason) {
		suite.Equal(models.RejectProperty, *found.RejectReason)
	}
	suite.Equal("No yard", found.RejectReasonDetail)
}

// TestApplicationRepositoryTestSuite runs the test suite
func TestApplicationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationRepositoryTestSuite))
}
