//go:build integration
// +build integration

package repository

import (
	"testing"

	"animal-rescue-backend/internal/database/models"
	"animal-rescue-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateDuplicateEmail tests the unique email constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.WithEmail("dup@test.com")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.User.WithEmail("dup@test.com")
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByEmailCaseInsensitive tests that login lookups ignore case
func (suite *UserRepositoryTestSuite) TestGetByEmailCaseInsensitive() {
	user := suite.factories.User.WithEmail("jane.doe@test.com")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("Jane.Doe@Test.com")

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestUpsertProfile tests that profile saves are idempotent per user
func (suite *UserRepositoryTestSuite) TestUpsertProfile() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.UpsertProfile(&models.UserProfile{
		UserID:      user.ID,
		Description: "Dog person",
		ZipCode:     "94103",
	}))

	// Second save replaces the same row
	suite.NoError(suite.repo.UpsertProfile(&models.UserProfile{
		UserID:      user.ID,
		Description: "Cat person now",
		ZipCode:     "94110",
	}))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	if suite.NotNil(found.Profile) {
		suite.Equal("Cat person now", found.Profile.Description)
		suite.Equal("94110", found.Profile.ZipCode)
	}

	var count int64
	suite.baseTestSuite.DB.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
