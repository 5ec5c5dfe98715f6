package service_test

import (
	"testing"

	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/mocks"
	"animal-rescue-backend/internal/repository"
	"animal-rescue-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// BrowseServiceTestSuite defines the test suite for BrowseService
type BrowseServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockAnimalRepo    *mocks.MockAnimalRepositoryInterface
	mockZipRepo       *mocks.MockZipCodeRepositoryInterface
	mockShortlistRepo *mocks.MockShortListRepositoryInterface
	browseService     *service.BrowseService
}

// SetupTest sets up the test suite
func (suite *BrowseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAnimalRepo = mocks.NewMockAnimalRepositoryInterface(suite.ctrl)
	suite.mockZipRepo = mocks.NewMockZipCodeRepositoryInterface(suite.ctrl)
	suite.mockShortlistRepo = mocks.NewMockShortListRepositoryInterface(suite.ctrl)

	suite.browseService = service.NewBrowseService(suite.mockAnimalRepo, suite.mockZipRepo, suite.mockShortlistRepo)
}

// TearDownTest cleans up after each test
func (suite *BrowseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSearchDefaults tests that an empty request searches dogs with the default page size
func (suite *BrowseServiceTestSuite) TestSearchDefaults() {
	suite.mockAnimalRepo.EXPECT().
		Search(gomock.Any()).
		DoAndReturn(func(c repository.AnimalSearchCriteria) (*repository.AnimalSearchPage, error) {
			assert.Equal(suite.T(), models.AnimalTypeDog, c.AnimalType)
			assert.Nil(suite.T(), c.Origin)
			assert.Equal(suite.T(), service.BrowsePageSize, c.Limit)
			assert.Equal(suite.T(), 0, c.Offset)
			return &repository.AnimalSearchPage{}, nil
		}).
		Times(1)

	resp, err := suite.browseService.Search(&service.BrowseRequest{}, uuid.Nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), service.BrowsePageSize, resp.PageSize)
}

// TestSearchWithZipAppliesDefaultRadius tests zip geocoding plus the 50-mile default
func (suite *BrowseServiceTestSuite) TestSearchWithZipAppliesDefaultRadius() {
	zip := &models.ZipCode{Zip: "94103", Latitude: 37.7726, Longitude: -122.4099}
	suite.mockZipRepo.EXPECT().GetByZip("94103").Return(zip, nil).Times(1)
	suite.mockAnimalRepo.EXPECT().
		Search(gomock.Any()).
		DoAndReturn(func(c repository.AnimalSearchCriteria) (*repository.AnimalSearchPage, error) {
			assert.Equal(suite.T(), zip, c.Origin)
			assert.NotNil(suite.T(), c.RadiusMiles)
			assert.Equal(suite.T(), service.DefaultRadiusMiles, *c.RadiusMiles)
			return &repository.AnimalSearchPage{}, nil
		}).
		Times(1)

	_, err := suite.browseService.Search(&service.BrowseRequest{Zip: "94103"}, uuid.Nil)
	assert.NoError(suite.T(), err)
}

// TestSearchRadiusAny tests that "any" disables the radius bound but keeps the origin
func (suite *BrowseServiceTestSuite) TestSearchRadiusAny() {
	zip := &models.ZipCode{Zip: "94103"}
	suite.mockZipRepo.EXPECT().GetByZip("94103").Return(zip, nil).Times(1)
	suite.mockAnimalRepo.EXPECT().
		Search(gomock.Any()).
		DoAndReturn(func(c repository.AnimalSearchCriteria) (*repository.AnimalSearchPage, error) {
			assert.Equal(suite.T(), zip, c.Origin)
			assert.Nil(suite.T(), c.RadiusMiles)
			return &repository.AnimalSearchPage{}, nil
		}).
		Times(1)

	_, err := suite.browseService.Search(&service.BrowseRequest{Zip: "94103", Radius: "Any"}, uuid.Nil)
	assert.NoError(suite.T(), err)
}

// TestSearchBadRadius tests that a non-numeric radius fails validation
func (suite *BrowseServiceTestSuite) TestSearchBadRadius() {
	zip := &models.ZipCode{Zip: "94103"}
	suite.mockZipRepo.EXPECT().GetByZip("94103").Return(zip, nil).Times(1)

	resp, err := suite.browseService.Search(&service.BrowseRequest{Zip: "94103", Radius: "nearby"}, uuid.Nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestSearchUnknownZip tests that unknown zips are a validation failure
func (suite *BrowseServiceTestSuite) TestSearchUnknownZip() {
	suite.mockZipRepo.EXPECT().GetByZip("00000").Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.browseService.Search(&service.BrowseRequest{Zip: "00000"}, uuid.Nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidZipCode)
	assert.Nil(suite.T(), resp)
}

// TestSearchNormalizesEnums tests case-insensitive enum parameters
func (suite *BrowseServiceTestSuite) TestSearchNormalizesEnums() {
	suite.mockAnimalRepo.EXPECT().
		Search(gomock.Any()).
		DoAndReturn(func(c repository.AnimalSearchCriteria) (*repository.AnimalSearchPage, error) {
			assert.Equal(suite.T(), models.AnimalTypeCat, c.AnimalType)
			assert.Equal(suite.T(), models.AnimalSexFemale, *c.Sex)
			assert.Equal(suite.T(), models.AnimalAgeSenior, *c.Age)
			return &repository.AnimalSearchPage{}, nil
		}).
		Times(1)

	_, err := suite.browseService.Search(&service.BrowseRequest{
		AnimalType: "cat",
		Sex:        "f",
		Age:        "senior",
	}, uuid.Nil)
	assert.NoError(suite.T(), err)
}

// TestSearchAuthenticatedMarksShortlist tests shortlist flags on results
func (suite *BrowseServiceTestSuite) TestSearchAuthenticatedMarksShortlist() {
	userID := uuid.New()
	animal := models.Animal{Name: "Rex", AnimalType: models.AnimalTypeDog}
	animal.ID = uuid.New()
	other := models.Animal{Name: "Luna", AnimalType: models.AnimalTypeDog}
	other.ID = uuid.New()

	suite.mockAnimalRepo.EXPECT().
		Search(gomock.Any()).
		Return(&repository.AnimalSearchPage{
			Results: []repository.AnimalSearchResult{{Animal: animal}, {Animal: other}},
			Total:   2,
		}, nil).
		Times(1)
	suite.mockShortlistRepo.EXPECT().
		GetAnimalIDsForUser(userID).
		Return([]uuid.UUID{animal.ID}, nil).
		Times(1)

	resp, err := suite.browseService.Search(&service.BrowseRequest{}, userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Animals, 2)
	assert.True(suite.T(), *resp.Animals[0].IsShortlisted)
	assert.False(suite.T(), *resp.Animals[1].IsShortlisted)
}

// TestSearchAnonymousOmitsShortlist tests that anonymous results carry no shortlist flag
func (suite *BrowseServiceTestSuite) TestSearchAnonymousOmitsShortlist() {
	animal := models.Animal{Name: "Rex", AnimalType: models.AnimalTypeDog}
	animal.ID = uuid.New()

	suite.mockAnimalRepo.EXPECT().
		Search(gomock.Any()).
		Return(&repository.AnimalSearchPage{
			Results: []repository.AnimalSearchResult{{Animal: animal}},
			Total:   1,
		}, nil).
		Times(1)

	resp, err := suite.browseService.Search(&service.BrowseRequest{}, uuid.Nil)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.Animals[0].IsShortlisted)
}

// TestSearchDistanceConversion tests meters-to-miles conversion on results
func (suite *BrowseServiceTestSuite) TestSearchDistanceConversion() {
	zip := &models.ZipCode{Zip: "94103"}
	suite.mockZipRepo.EXPECT().GetByZip("94103").Return(zip, nil).Times(1)

	animal := models.Animal{Name: "Rex", AnimalType: models.AnimalTypeDog}
	animal.ID = uuid.New()
	meters := 10 * models.MetersPerMile

	suite.mockAnimalRepo.EXPECT().
		Search(gomock.Any()).
		Return(&repository.AnimalSearchPage{
			Results: []repository.AnimalSearchResult{{Animal: animal, DistanceMeters: &meters}},
			Total:   1,
		}, nil).
		Times(1)

	resp, err := suite.browseService.Search(&service.BrowseRequest{Zip: "94103"}, uuid.Nil)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.Animals[0].DistanceMiles)
	assert.InDelta(suite.T(), 10.0, *resp.Animals[0].DistanceMiles, 0.001)
}

// TestGetAnimalHiddenWhenOrgUnpublished tests effective visibility on the detail page
func (suite *BrowseServiceTestSuite) TestGetAnimalHiddenWhenOrgUnpublished() {
	awg := &models.Awg{Name: "Hidden Org", Status: models.AwgStatusUnpublished}
	awg.ID = uuid.New()
	animal := &models.Animal{Name: "Rex", AwgID: awg.ID, IsPublished: true, Awg: awg}
	animal.ID = uuid.New()

	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil).Times(1)

	resp, err := suite.browseService.GetAnimal(animal.ID, uuid.Nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAnimalNotFound)
	assert.Nil(suite.T(), resp)
}

// TestListBreedsUnknownType tests breed listing input validation
func (suite *BrowseServiceTestSuite) TestListBreedsUnknownType() {
	slugs, err := suite.browseService.ListBreeds("HAMSTER")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidAnimalType)
	assert.Nil(suite.T(), slugs)
}

// TestListBreeds tests the breed filter listing
func (suite *BrowseServiceTestSuite) TestListBreeds() {
	suite.mockAnimalRepo.EXPECT().
		ListDistinctBreedSlugs(models.AnimalTypeDog).
		Return([]string{"beagle", "labrador-retriever"}, nil).
		Times(1)

	slugs, err := suite.browseService.ListBreeds("dog")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"beagle", "labrador-retriever"}, slugs)
}

func TestBrowseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BrowseServiceTestSuite))
}
