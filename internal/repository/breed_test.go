//go:build integration
// +build integration

package repository

import (
	"testing"

	"animal-rescue-backend/internal/database/models"
	"animal-rescue-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// BreedRepositoryTestSuite tests the BreedRepository
type BreedRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BreedRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BreedRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBreedRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BreedRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BreedRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BreedRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertIsIdempotent tests that re-running the seed loader is safe
func (suite *BreedRepositoryTestSuite) TestUpsertIsIdempotent() {
	first := suite.factories.Breed.WithSlug("Beagle", "beagle")
	suite.NoError(suite.repo.Upsert(first))

	second := suite.factories.Breed.WithSlug("Beagle", "beagle")
	suite.NoError(suite.repo.Upsert(second))

	found, err := suite.repo.GetBySlug("beagle")
	suite.NoError(err)
	suite.Equal(first.ID, found.ID)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Breed{}).Where("slug = ?", "beagle").Count(&count)
	suite.Equal(int64(1), count)
}

// TestGetByType tests listing breeds of one species sorted by name
func (suite *BreedRepositoryTestSuite) TestGetByType() {
	lab := suite.factories.Breed.Create()
	suite.NoError(suite.repo.Create(lab))

	cat := suite.factories.Breed.WithSlug("Domestic Shorthair", "domestic-shorthair")
	cat.AnimalType = models.AnimalTypeCat
	suite.NoError(suite.repo.Create(cat))

	dogs, err := suite.repo.GetByType(models.AnimalTypeDog)
	suite.NoError(err)
	suite.Len(dogs, 1)
	suite.Equal(lab.ID, dogs[0].ID)

	cats, err := suite.repo.GetByType(models.AnimalTypeCat)
	suite.NoError(err)
	suite.Len(cats, 1)
	suite.Equal("Domestic Shorthair", cats[0].Name)
}

// TestGetBySlugs tests the multi-slug lookup used by saved searches
func (suite *BreedRepositoryTestSuite) TestGetBySlugs() {
	lab := suite.factories.Breed.WithSlug("Labrador Retriever", "labrador-retriever")
	suite.NoError(suite.repo.Create(lab))
	beagle := suite.factories.Breed.WithSlug("Beagle", "beagle")
	suite.NoError(suite.repo.Create(beagle))

	breeds, err := suite.repo.GetBySlugs([]string{"beagle", "labrador-retriever", "missing"})

	suite.NoError(err)
	suite.Len(breeds, 2)
	suite.Equal("Beagle", breeds[0].Name)
	suite.Equal("Labrador Retriever", breeds[1].Name)
}

// TestBreedRepositoryTestSuite runs the test suite
func TestBreedRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BreedRepositoryTestSuite))
}
