//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"animal-rescue-backend/internal/database/models"
	"animal-rescue-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AnimalRepositoryTestSuite tests the AnimalRepository
type AnimalRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AnimalRepository
	awgRepo       *AwgRepository
	breedRepo     *BreedRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AnimalRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAnimalRepository(suite.baseTestSuite.DB)
	suite.awgRepo = NewAwgRepository(suite.baseTestSuite.DB)
	suite.breedRepo = NewBreedRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AnimalRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AnimalRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AnimalRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedAwgAndBreed creates a published organization and a dog breed
func (suite *AnimalRepositoryTestSuite) seedAwgAndBreed() (*models.Awg, *models.Breed) {
	awg := suite.factories.Awg.Create()
	suite.NoError(suite.awgRepo.Create(awg))
	breed := suite.factories.Breed.Create()
	suite.NoError(suite.breedRepo.Create(breed))
	return awg, breed
}

// TestCreate tests creating a new animal
func (suite *AnimalRepositoryTestSuite) TestCreate() {
	awg, breed := suite.seedAwgAndBreed()

	animal := suite.factories.Animal.Create(awg.ID, breed.ID)
	err := suite.repo.Create(animal)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, animal.ID)
	suite.NotZero(animal.CreatedAt)
}

// TestGetByIDForAwg tests that the org-scoped lookup rejects other orgs' animals
func (suite *AnimalRepositoryTestSuite) TestGetByIDForAwg() {
	awg, breed := suite.seedAwgAndBreed()
	otherAwg := suite.factories.Awg.Create()
	suite.NoError(suite.awgRepo.Create(otherAwg))

	animal := suite.factories.Animal.Create(awg.ID, breed.ID)
	suite.NoError(suite.repo.Create(animal))

	found, err := suite.repo.GetByIDForAwg(animal.ID, awg.ID)
	suite.NoError(err)
	suite.Equal(animal.ID, found.ID)

	_, err = suite.repo.GetByIDForAwg(animal.ID, otherAwg.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSearchVisibility tests that unpublished animals and orgs never surface
func (suite *AnimalRepositoryTestSuite) TestSearchVisibility() {
	awg, breed := suite.seedAwgAndBreed()
	hiddenAwg := suite.factories.Awg.WithStatus(models.AwgStatusUnpublished)
	suite.NoError(suite.awgRepo.Create(hiddenAwg))

	visible := suite.factories.Animal.Create(awg.ID, breed.ID)
	suite.NoError(suite.repo.Create(visible))

	unpublished := suite.factories.Animal.Unpublished(awg.ID, breed.ID)
	suite.NoError(suite.repo.Create(unpublished))

	inHiddenAwg := suite.factories.Animal.Create(hiddenAwg.ID, breed.ID)
	suite.NoError(suite.repo.Create(inHiddenAwg))

	page, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType: models.AnimalTypeDog,
		Limit:      21,
	})

	suite.NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Len(page.Results, 1)
	suite.Equal(visible.ID, page.Results[0].Animal.ID)
	suite.Nil(page.Results[0].DistanceMeters)
}

// TestSearchRadius tests radius filtering and distance annotation
func (suite *AnimalRepositoryTestSuite) TestSearchRadius() {
	breed := suite.factories.Breed.Create()
	suite.NoError(suite.breedRepo.Create(breed))

	sfAwg := suite.factories.Awg.WithLocation("94103", 37.7726, -122.4099)
	suite.NoError(suite.awgRepo.Create(sfAwg))
	nycAwg := suite.factories.Awg.WithLocation("10001", 40.7484, -73.9857)
	suite.NoError(suite.awgRepo.Create(nycAwg))

	nearby := suite.factories.Animal.Create(sfAwg.ID, breed.ID)
	suite.NoError(suite.repo.Create(nearby))
	farAway := suite.factories.Animal.Create(nycAwg.ID, breed.ID)
	suite.NoError(suite.repo.Create(farAway))

	radius := 50
	origin := suite.factories.ZipCode.With("94110", 37.7485, -122.4184)
	page, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType:  models.AnimalTypeDog,
		Origin:      origin,
		RadiusMiles: &radius,
		Sort:        SortDistance,
		Limit:       21,
	})

	suite.NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Len(page.Results, 1)
	suite.Equal(nearby.ID, page.Results[0].Animal.ID)
	if suite.NotNil(page.Results[0].DistanceMeters) {
		// The SF org sits about 3 km from the origin zip
		suite.Less(*page.Results[0].DistanceMeters, 10*models.MetersPerMile)
	}
}

// TestSearchAttributeFilters tests sex, size and age filters
func (suite *AnimalRepositoryTestSuite) TestSearchAttributeFilters() {
	awg, breed := suite.seedAwgAndBreed()

	male := suite.factories.Animal.Create(awg.ID, breed.ID)
	suite.NoError(suite.repo.Create(male))

	female := suite.factories.Animal.Create(awg.ID, breed.ID)
	female.Name = "Lady"
	female.Sex = models.AnimalSexFemale
	female.Size = models.AnimalSizeSmall
	female.Age = models.AnimalAgeSenior
	suite.NoError(suite.repo.Create(female))

	sex := models.AnimalSexFemale
	size := models.AnimalSizeSmall
	age := models.AnimalAgeSenior
	page, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType: models.AnimalTypeDog,
		Sex:        &sex,
		Size:       &size,
		Age:        &age,
		Limit:      21,
	})

	suite.NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Equal(female.ID, page.Results[0].Animal.ID)
}

// TestSearchGoodWith tests behaviour filters only match the GOOD grade
func (suite *AnimalRepositoryTestSuite) TestSearchGoodWith() {
	awg, breed := suite.seedAwgAndBreed()

	friendly := suite.factories.Animal.Create(awg.ID, breed.ID)
	friendly.BehaviourCats = models.BehaviourGood
	suite.NoError(suite.repo.Create(friendly))

	selective := suite.factories.Animal.Create(awg.ID, breed.ID)
	selective.BehaviourCats = models.BehaviourSelective
	suite.NoError(suite.repo.Create(selective))

	page, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType:   models.AnimalTypeDog,
		GoodWithCats: true,
		Limit:        21,
	})

	suite.NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Equal(friendly.ID, page.Results[0].Animal.ID)
}

// TestSearchPagination tests that pages are stable and the total is exact
func (suite *AnimalRepositoryTestSuite) TestSearchPagination() {
	awg, breed := suite.seedAwgAndBreed()

	for i := 0; i < 3; i++ {
		animal := suite.factories.Animal.Create(awg.ID, breed.ID)
		suite.NoError(suite.repo.Create(animal))
	}

	first, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType: models.AnimalTypeDog,
		Sort:       SortName,
		Limit:      2,
		Offset:     0,
	})
	suite.NoError(err)
	suite.Equal(int64(3), first.Total)
	suite.Len(first.Results, 2)

	second, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType: models.AnimalTypeDog,
		Sort:       SortName,
		Limit:      2,
		Offset:     2,
	})
	suite.NoError(err)
	suite.Equal(int64(3), second.Total)
	suite.Len(second.Results, 1)
	suite.NotEqual(first.Results[0].Animal.ID, second.Results[0].Animal.ID)
	suite.NotEqual(first.Results[1].Animal.ID, second.Results[0].Animal.ID)
}

// TestSearchShortlistedBy tests restricting results to a user's shortlist
func (suite *AnimalRepositoryTestSuite) TestSearchShortlistedBy() {
	awg, breed := suite.seedAwgAndBreed()

	user := suite.factories.User.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))

	listed := suite.factories.Animal.Create(awg.ID, breed.ID)
	suite.NoError(suite.repo.Create(listed))
	unlisted := suite.factories.Animal.Create(awg.ID, breed.ID)
	suite.NoError(suite.repo.Create(unlisted))

	shortlistRepo := NewShortListRepository(suite.baseTestSuite.DB)
	suite.NoError(shortlistRepo.Create(&models.AnimalShortList{UserID: user.ID, AnimalID: listed.ID}))

	page, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType:    models.AnimalTypeDog,
		ShortlistedBy: &user.ID,
		Limit:         21,
	})

	suite.NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Equal(listed.ID, page.Results[0].Animal.ID)
}

// TestSearchPublishedSince tests the digest window filter
func (suite *AnimalRepositoryTestSuite) TestSearchPublishedSince() {
	awg, breed := suite.seedAwgAndBreed()
	since := time.Now().Add(-24 * time.Hour)

	oldStamp := since.Add(-time.Hour)
	old := suite.factories.Animal.Create(awg.ID, breed.ID)
	old.FirstPublishedAt = &oldStamp
	suite.NoError(suite.repo.Create(old))

	newStamp := since.Add(time.Hour)
	fresh := suite.factories.Animal.Create(awg.ID, breed.ID)
	fresh.FirstPublishedAt = &newStamp
	suite.NoError(suite.repo.Create(fresh))

	page, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType:     models.AnimalTypeDog,
		PublishedSince: &since,
		Limit:          21,
	})

	suite.NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Equal(fresh.ID, page.Results[0].Animal.ID)
}

// TestSearchEuthWindow tests the euthanasia date window filter
func (suite *AnimalRepositoryTestSuite) TestSearchEuthWindow() {
	awg, breed := suite.seedAwgAndBreed()

	urgent := suite.factories.Animal.EuthListed(awg.ID, breed.ID, time.Now().AddDate(0, 0, 3))
	suite.NoError(suite.repo.Create(urgent))
	distant := suite.factories.Animal.EuthListed(awg.ID, breed.ID, time.Now().AddDate(0, 0, 30))
	suite.NoError(suite.repo.Create(distant))
	unlisted := suite.factories.Animal.Create(awg.ID, breed.ID)
	suite.NoError(suite.repo.Create(unlisted))

	days := 7
	page, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType:         models.AnimalTypeDog,
		EuthDateWithinDays: &days,
		Limit:              21,
	})

	suite.NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Equal(urgent.ID, page.Results[0].Animal.ID)
}

// TestSearchEuthWindowZeroDays tests that a zero-day window still covers the
// rest of today but nothing after it
func (suite *AnimalRepositoryTestSuite) TestSearchEuthWindowZeroDays() {
	awg, breed := suite.seedAwgAndBreed()

	now := time.Now()
	noon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())

	today := suite.factories.Animal.EuthListed(awg.ID, breed.ID, noon)
	suite.NoError(suite.repo.Create(today))
	tomorrow := suite.factories.Animal.EuthListed(awg.ID, breed.ID, noon.AddDate(0, 0, 1))
	suite.NoError(suite.repo.Create(tomorrow))

	days := 0
	page, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType:         models.AnimalTypeDog,
		EuthDateWithinDays: &days,
		Limit:              21,
	})

	suite.NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Equal(today.ID, page.Results[0].Animal.ID)
}

// TestSearchUnsupportedSort tests that an unknown sort key errors out
func (suite *AnimalRepositoryTestSuite) TestSearchUnsupportedSort() {
	_, err := suite.repo.Search(AnimalSearchCriteria{
		AnimalType: models.AnimalTypeDog,
		Sort:       "cuteness",
		Limit:      21,
	})
	suite.Error(err)
}

// TestListDistinctBreedSlugs tests the browseable-breeds listing
func (suite *AnimalRepositoryTestSuite) TestListDistinctBreedSlugs() {
	awg, lab := suite.seedAwgAndBreed()
	beagle := suite.factories.Breed.WithSlug("Beagle", "beagle")
	suite.NoError(suite.breedRepo.Create(beagle))
	unused := suite.factories.Breed.WithSlug("Poodle", "poodle")
	suite.NoError(suite.breedRepo.Create(unused))

	first := suite.factories.Animal.Create(awg.ID, lab.ID)
	first.SecondaryBreedID = &beagle.ID
	suite.NoError(suite.repo.Create(first))

	hidden := suite.factories.Animal.Unpublished(awg.ID, unused.ID)
	suite.NoError(suite.repo.Create(hidden))

	slugs, err := suite.repo.ListDistinctBreedSlugs(models.AnimalTypeDog)

	suite.NoError(err)
	suite.Contains(slugs, lab.Slug)
	suite.Contains(slugs, "beagle")
	suite.NotContains(slugs, "poodle")
}

// TestAnimalRepositoryTestSuite runs the test suite
func TestAnimalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AnimalRepositoryTestSuite))
}
