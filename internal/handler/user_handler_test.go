package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"taskboard/internal/api"
	"taskboard/internal/forms"
	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupUserTest(userID uuid.UUID) (*gin.Engine, *MockAuthService) {
	r := newRouter()
	svc := new(MockAuthService)
	h := handler.NewUserHandler(svc, zap.NewNop())

	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/forgot-password", h.ForgotPassword)
	r.POST("/api/auth/reset-password", h.ResetPassword)

	authorized := r.Group("/api/auth", withUser(userID))
	authorized.GET("/me", h.Me)
	authorized.PATCH("/change-password", h.ChangePassword)
	authorized.POST("/upload-profile-picture", h.UploadProfilePicture)
	return r, svc
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	router, svc := setupUserTest(uuid.New())
	user := &model.User{ID: uuid.New(), Name: "Test User", Email: "test@example.com"}
	svc.On("Register", mock.Anything, "Test User", "test@example.com", "password123").Return("jwt", user, nil)

	// Act
	resp := doJSON(router, http.MethodPost, "/api/auth/register", api.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	var response api.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, "jwt", response.Token)
	assert.Equal(t, user.ID.String(), response.User.ID)
	assert.Equal(t, "test@example.com", response.User.Email)
	svc.AssertExpectations(t)
}

func TestRegister_UserAlreadyExists(t *testing.T) {
	router, svc := setupUserTest(uuid.New())
	svc.On("Register", mock.Anything, "Test User", "existing@example.com", "password123").
		Return("", nil, service.ErrEmailTaken)

	resp := doJSON(router, http.MethodPost, "/api/auth/register", api.RegisterRequest{
		Name:     "Test User",
		Email:    "existing@example.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	body := decodeError(resp)
	assert.Equal(t, "User already exists", body.Message)
	assert.Equal(t, "EMAIL_TAKEN", body.Code)
}

func TestRegister_InvalidInput(t *testing.T) {
	router, svc := setupUserTest(uuid.New())

	resp := doJSON(router, http.MethodPost, "/api/auth/register", api.RegisterRequest{
		Name:     "Test User",
		Email:    "not-an-email",
		Password: "password123",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid email address", decodeError(resp).Message)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, svc := setupUserTest(uuid.New())
	svc.On("Login", mock.Anything, "test@example.com", "wrong").Return("", nil, service.ErrInvalidCredentials)

	resp := doJSON(router, http.MethodPost, "/api/auth/login", api.LoginRequest{Email: "test@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Invalid email or password", decodeError(resp).Message)
}

func TestMe(t *testing.T) {
	userID := uuid.New()
	router, svc := setupUserTest(userID)
	svc.On("Me", mock.Anything, userID).Return(&model.User{ID: userID, Name: "Ann"}, nil)

	resp := doJSON(router, http.MethodGet, "/api/auth/me", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	var env api.UserEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	assert.Equal(t, "Ann", env.User.Name)
}

func TestChangePassword_Wrong(t *testing.T) {
	userID := uuid.New()
	router, svc := setupUserTest(userID)
	svc.On("ChangePassword", mock.Anything, userID, "old", "newsecret").Return(service.ErrWrongPassword)

	resp := doJSON(router, http.MethodPatch, "/api/auth/change-password", api.ChangePasswordRequest{
		CurrentPassword: "old",
		NewPassword:     "newsecret",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "WRONG_PASSWORD", decodeError(resp).Code)
}

func TestForgotPassword_AlwaysSameMessage(t *testing.T) {
	router, svc := setupUserTest(uuid.New())
	svc.On("ForgotPassword", mock.Anything, "ghost@example.com").Return(nil)

	resp := doJSON(router, http.MethodPost, "/api/auth/forgot-password", api.ForgotPasswordRequest{Email: "ghost@example.com"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "reset link has been sent")
}

func TestUploadProfilePicture(t *testing.T) {
	userID := uuid.New()
	router, svc := setupUserTest(userID)
	svc.On("UploadAvatar", mock.Anything, userID, "image/png", mock.Anything, int64(4)).
		Return(&model.User{ID: userID, ProfilePicture: "http://cdn/a.png"}, nil)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="a.png"`)
	header.Set("Content-Type", "image/png")
	part, _ := w.CreatePart(header)
	_, _ = part.Write([]byte("\x89PNG"))
	require.NoError(t, w.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/auth/upload-profile-picture", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	var out api.ProfilePictureResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "Profile picture updated", out.Message)
	assert.Equal(t, "http://cdn/a.png", out.User.ProfilePicture)
}

func TestUploadProfilePicture_StorageDisabled(t *testing.T) {
	userID := uuid.New()
	router, svc := setupUserTest(userID)
	svc.On("UploadAvatar", mock.Anything, userID, "image/png", mock.Anything, mock.Anything).
		Return(nil, service.ErrStorageUnavailable)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="a.png"`)
	header.Set("Content-Type", "image/png")
	part, _ := w.CreatePart(header)
	_, _ = part.Write([]byte("png"))
	require.NoError(t, w.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/auth/upload-profile-picture", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestUploadProfilePicture_BodyTooLarge(t *testing.T) {
	userID := uuid.New()
	router, svc := setupUserTest(userID)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="big.png"`)
	header.Set("Content-Type", "image/png")
	part, _ := w.CreatePart(header)
	_, _ = part.Write(bytes.Repeat([]byte{0}, forms.MaxAvatarBytes+1<<20))
	require.NoError(t, w.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/auth/upload-profile-picture", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var out api.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, forms.ErrImageTooLarge.Error(), out.Message)
	svc.AssertNotCalled(t, "UploadAvatar", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
