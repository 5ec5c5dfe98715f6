package service_test

import (
	"context"
	"testing"

	"animal-rescue-backend/internal/config"
	"animal-rescue-backend/internal/database/models"
	apperrors "animal-rescue-backend/internal/errors"
	"animal-rescue-backend/internal/mocks"
	"animal-rescue-backend/internal/notifications"
	"animal-rescue-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CommentServiceTestSuite defines the test suite for CommentService
type CommentServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockCommentRepositoryInterface
	mockAnimalRepo *mocks.MockAnimalRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	recorder       *notifications.RecorderProvider
	commentService *service.CommentService
}

// SetupTest sets up the test suite
func (suite *CommentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCommentRepositoryInterface(suite.ctrl)
	suite.mockAnimalRepo = mocks.NewMockAnimalRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.recorder = notifications.NewRecorderProvider()

	cfg := &config.Config{BaseURL: "https://rescue.test"}
	notifier := notifications.NewNotifier(suite.recorder)

	suite.commentService = service.NewCommentService(
		suite.mockRepo, suite.mockAnimalRepo, suite.mockUserRepo, notifier, cfg, validator.New())
}

// TearDownTest cleans up after each test
func (suite *CommentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests posting a comment and notifying earlier participants
func (suite *CommentServiceTestSuite) TestCreate() {
	author := &models.User{Username: "jane"}
	author.ID = uuid.New()
	animal := publishedAnimal()

	earlier := &models.User{Email: "mark@example.com", Username: "mark"}
	earlier.ID = uuid.New()

	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil).Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(comment *models.AnimalComment) error {
			assert.Equal(suite.T(), animal.ID, comment.AnimalID)
			assert.Equal(suite.T(), author.ID, comment.UserID)
			comment.ID = uuid.New()
			return nil
		}).
		Times(1)
	// The author is excluded from the participant fan-out
	suite.mockRepo.EXPECT().
		GetParticipantUserIDs(animal.ID).
		Return([]uuid.UUID{author.ID, earlier.ID}, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().GetByID(earlier.ID).Return(earlier, nil).Times(1)

	response, err := suite.commentService.Create(context.Background(), author, animal.ID, &service.CommentBodyRequest{
		Body: "Is Rex good with kids?",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "jane", response.Username)

	sends := suite.recorder.Sends()
	assert.Len(suite.T(), sends, 1)
	assert.Equal(suite.T(), "mark@example.com", sends[0].To[0].Email)
}

// TestCreateNoOtherParticipants tests that the first comment sends no email
func (suite *CommentServiceTestSuite) TestCreateNoOtherParticipants() {
	author := &models.User{Username: "jane"}
	author.ID = uuid.New()
	animal := publishedAnimal()

	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	suite.mockRepo.EXPECT().
		GetParticipantUserIDs(animal.ID).
		Return([]uuid.UUID{author.ID}, nil).
		Times(1)

	response, err := suite.commentService.Create(context.Background(), author, animal.ID, &service.CommentBodyRequest{
		Body: "First!",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Empty(suite.T(), suite.recorder.Sends())
}

// TestCreateHiddenAnimal tests that hidden animals accept no comments
func (suite *CommentServiceTestSuite) TestCreateHiddenAnimal() {
	author := &models.User{}
	author.ID = uuid.New()
	animal := publishedAnimal()
	animal.IsPublished = false

	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil).Times(1)

	response, err := suite.commentService.Create(context.Background(), author, animal.ID, &service.CommentBodyRequest{
		Body: "Hello?",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAnimalNotFound)
	assert.Nil(suite.T(), response)
}

// TestCreateAnonymous tests that anonymous users cannot comment
func (suite *CommentServiceTestSuite) TestCreateAnonymous() {
	response, err := suite.commentService.Create(context.Background(), nil, uuid.New(), &service.CommentBodyRequest{
		Body: "Hi",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMustBeLoggedIn)
	assert.Nil(suite.T(), response)
}

// TestUpdateByAuthor tests that the author can edit their comment
func (suite *CommentServiceTestSuite) TestUpdateByAuthor() {
	author := &models.User{Username: "jane"}
	author.ID = uuid.New()

	comment := &models.AnimalComment{AnimalID: uuid.New(), UserID: author.ID, Body: "old", User: author}
	comment.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByID(comment.ID).Return(comment, nil).Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.AnimalComment) error {
			assert.Equal(suite.T(), "new text", updated.Body)
			assert.NotNil(suite.T(), updated.EditedAt)
			return nil
		}).
		Times(1)

	response, err := suite.commentService.Update(author, comment.ID, &service.CommentBodyRequest{Body: "new text"})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "new text", response.Body)
	assert.NotNil(suite.T(), response.EditedAt)
}

// TestUpdateByStranger tests that other users cannot edit a comment
func (suite *CommentServiceTestSuite) TestUpdateByStranger() {
	stranger := &models.User{}
	stranger.ID = uuid.New()

	comment := &models.AnimalComment{AnimalID: uuid.New(), UserID: uuid.New(), Body: "old"}
	comment.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByID(comment.ID).Return(comment, nil).Times(1)

	response, err := suite.commentService.Update(stranger, comment.ID, &service.CommentBodyRequest{Body: "hijack"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMissingCapability)
	assert.Nil(suite.T(), response)
}

// TestDeleteByStaff tests that staff can moderate any comment
func (suite *CommentServiceTestSuite) TestDeleteByStaff() {
	staff := &models.User{IsStaff: true}
	staff.ID = uuid.New()

	comment := &models.AnimalComment{AnimalID: uuid.New(), UserID: uuid.New(), Body: "spam"}
	comment.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByID(comment.ID).Return(comment, nil).Times(1)
	suite.mockRepo.EXPECT().Delete(comment.ID).Return(nil).Times(1)

	err := suite.commentService.Delete(staff, comment.ID)

	assert.NoError(suite.T(), err)
}

// TestReply tests posting a reply under an existing comment
func (suite *CommentServiceTestSuite) TestReply() {
	author := &models.User{Username: "mark"}
	author.ID = uuid.New()
	animal := publishedAnimal()

	comment := &models.AnimalComment{AnimalID: animal.ID, UserID: uuid.New(), Body: "root"}
	comment.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByID(comment.ID).Return(comment, nil).Times(1)
	suite.mockAnimalRepo.EXPECT().GetByID(animal.ID).Return(animal, nil).Times(1)
	suite.mockRepo.EXPECT().
		CreateSubComment(gomock.Any()).
		DoAndReturn(func(sub *models.AnimalSubComment) error {
			assert.Equal(suite.T(), comment.ID, sub.CommentID)
			assert.Equal(suite.T(), author.ID, sub.UserID)
			sub.ID = uuid.New()
			return nil
		}).
		Times(1)
	suite.mockRepo.EXPECT().
		GetParticipantUserIDs(animal.ID).
		Return([]uuid.UUID{author.ID}, nil).
		Times(1)

	response, err := suite.commentService.Reply(context.Background(), author, comment.ID, &service.CommentBodyRequest{
		Body: "Yes, he is.",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), comment.ID, response.CommentID)
	assert.Equal(suite.T(), "mark", response.Username)
}

// TestReplyUnknownComment tests replying to a deleted thread
func (suite *CommentServiceTestSuite) TestReplyUnknownComment() {
	author := &models.User{}
	author.ID = uuid.New()
	commentID := uuid.New()

	suite.mockRepo.EXPECT().GetByID(commentID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.commentService.Reply(context.Background(), author, commentID, &service.CommentBodyRequest{
		Body: "Hello?",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCommentNotFound)
	assert.Nil(suite.T(), response)
}

// TestDeleteReplyByAuthor tests that the author can delete their own reply
func (suite *CommentServiceTestSuite) TestDeleteReplyByAuthor() {
	author := &models.User{}
	author.ID = uuid.New()

	sub := &models.AnimalSubComment{CommentID: uuid.New(), UserID: author.ID, Body: "oops"}
	sub.ID = uuid.New()

	suite.mockRepo.EXPECT().GetSubCommentByID(sub.ID).Return(sub, nil).Times(1)
	suite.mockRepo.EXPECT().DeleteSubComment(sub.ID).Return(nil).Times(1)

	err := suite.commentService.DeleteReply(author, sub.ID)

	assert.NoError(suite.T(), err)
}

// TestCommentServiceTestSuite runs the test suite
func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
