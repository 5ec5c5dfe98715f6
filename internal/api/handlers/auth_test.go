package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	recorder     *notifications.RecorderProvider
	authService  *auth.AuthService
	userService  *service.UserService
	handler      *handlers.AuthHandler
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.recorder = notifications.NewRecorderProvider()

	suite.authService = auth.NewAuthService(&config.Config{JWTSecret: "test-secret"})
	suite.userService = service.NewUserService(
		suite.mockUserRepo, suite.authService, notifications.NewNotifier(suite.recorder), validator.New())
	suite.handler = handlers.NewAuthHandler(suite.userService)
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// newRouter builds the auth routes, optionally injecting an authenticated user
func (suite *AuthHandlerTestSuite) newRouter(userID *uuid.UUID) *gin.Engine {
	r := gin.New()
	if userID != nil {
		id := *userID
		r.Use(func(c *gin.Context) {
			c.Set("user_id", id)
		})
	}
	r.POST("/auth/register", suite.handler.Register)
	r.POST("/auth/login", suite.handler.Login)
	r.GET("/auth/me", suite.handler.Me)
	r.PUT("/auth/me/profile", suite.handler.UpdateProfile)
	return r
}

func postJSON(router *gin.Engine, url string, body interface{}) *httptest.ResponseRecorder {
	return jsonRequest(router, http.MethodPost, url, body)
}

func jsonRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestRegister_Success tests creating an account and receiving a session token
func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	suite.mockUserRepo.EXPECT().GetByEmail("jane@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		assert.Equal(suite.T(), "jane@example.com", user.Email)
		assert.Equal(suite.T(), "jane", user.Username)
		assert.NotEqual(suite.T(), "secret-password", user.PasswordHash)
		user.ID = uuid.New()
		return nil
	})

	w := postJSON(suite.newRouter(nil), "/auth/register", map[string]string{
		"email":    "jane@example.com",
		"username": "jane",
		"password": "secret-password",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.SessionResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(suite.T(), got.AccessToken)
	assert.Equal(suite.T(), "Bearer", got.TokenType)
	assert.Equal(suite.T(), "jane@example.com", got.User.Email)

	// the welcome mail went out
	sends := suite.recorder.Sends()
	assert.Len(suite.T(), sends, 1)
	assert.Equal(suite.T(), "jane@example.com", sends[0].To[0].Email)
}

// TestRegister_DuplicateEmail tests registering an email that already exists
func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	existing := &models.User{Email: "jane@example.com"}
	suite.mockUserRepo.EXPECT().GetByEmail("jane@example.com").Return(existing, nil)

	w := postJSON(suite.newRouter(nil), "/auth/register", map[string]string{
		"email":    "jane@example.com",
		"username": "jane",
		"password": "secret-password",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Empty(suite.T(), suite.recorder.Sends())
}

// TestRegister_InvalidFields tests that field-level validation failures are
// client errors, not server errors
func (suite *AuthHandlerTestSuite) TestRegister_InvalidFields() {
	w := postJSON(suite.newRouter(nil), "/auth/register", map[string]string{
		"email":    "not-an-email",
		"username": "jane",
		"password": "secret-password",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Empty(suite.T(), suite.recorder.Sends())
}

// TestRegister_MalformedBody tests rejecting a body that is not valid JSON
func (suite *AuthHandlerTestSuite) TestRegister_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.newRouter(nil).ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestLogin_Success tests logging in with valid credentials
func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	assert.NoError(suite.T(), err)

	user := &models.User{Email: "jane@example.com", Username: "jane", PasswordHash: string(hash)}
	user.ID = uuid.New()
	suite.mockUserRepo.EXPECT().GetByEmail("jane@example.com").Return(user, nil)

	w := postJSON(suite.newRouter(nil), "/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "secret-password",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.SessionResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), user.ID, got.User.ID)

	// the token must round-trip through our own validator
	claims, err := suite.authService.ValidateJWT(got.AccessToken)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, claims.UserID)
}

// TestLogin_WrongPassword tests rejecting a bad password
func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	assert.NoError(suite.T(), err)

	user := &models.User{Email: "jane@example.com", PasswordHash: string(hash)}
	suite.mockUserRepo.EXPECT().GetByEmail("jane@example.com").Return(user, nil)

	w := postJSON(suite.newRouter(nil), "/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestLogin_UnknownEmail tests that unknown accounts fail the same way as bad passwords
func (suite *AuthHandlerTestSuite) TestLogin_UnknownEmail() {
	suite.mockUserRepo.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	w := postJSON(suite.newRouter(nil), "/auth/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "secret-password",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestMe_Success tests fetching the current account
func (suite *AuthHandlerTestSuite) TestMe_Success() {
	user := &models.User{Email: "jane@example.com", Username: "jane"}
	user.ID = uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)

	w := jsonRequest(suite.newRouter(&user.ID), http.MethodGet, "/auth/me", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.UserResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "jane@example.com", got.Email)
}

// TestMe_Anonymous tests that the endpoint requires a session
func (suite *AuthHandlerTestSuite) TestMe_Anonymous() {
	w := jsonRequest(suite.newRouter(nil), http.MethodGet, "/auth/me", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestUpdateProfile_Success tests saving the caller's profile
func (suite *AuthHandlerTestSuite) TestUpdateProfile_Success() {
	user := &models.User{Email: "jane@example.com", Username: "jane"}
	user.ID = uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockUserRepo.EXPECT().UpsertProfile(gomock.Any()).DoAndReturn(func(profile *models.UserProfile) error {
		assert.Equal(suite.T(), user.ID, profile.UserID)
		assert.Equal(suite.T(), "94103", profile.ZipCode)
		return nil
	})

	w := jsonRequest(suite.newRouter(&user.ID), http.MethodPut, "/auth/me/profile", map[string]string{
		"description": "Looking to foster seniors",
		"zip_code":    "94103",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.UserResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "94103", got.ZipCode)
	assert.Equal(suite.T(), "Looking to foster seniors", got.Description)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
