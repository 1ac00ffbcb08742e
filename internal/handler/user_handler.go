package handler

import (
	"errors"
	"net/http"

	"taskboard/internal/api"
	"taskboard/internal/apierror"
	"taskboard/internal/forms"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const forgotPasswordMessage = "If an account exists for this email, a reset link has been sent."

// avatarFormOverhead is the room left for multipart boundaries and part headers
// on top of the image itself.
const avatarFormOverhead = 64 << 10

type UserHandler struct {
	auth   service.AuthServiceInterface
	logger *zap.Logger
}

func NewUserHandler(auth service.AuthServiceInterface, logger *zap.Logger) *UserHandler {
	return &UserHandler{auth: auth, logger: logger}
}

// Register godoc
// @Summary      Register a new user
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      api.RegisterRequest  true  "Account details"
// @Success      201   {object}  api.AuthResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      409   {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	token, user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, api.AuthResponse{Token: token, User: toUser(user)})
}

// Login godoc
// @Summary      Log in
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      api.LoginRequest  true  "Credentials"
// @Success      200   {object}  api.AuthResponse
// @Failure      401   {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.AuthResponse{Token: token, User: toUser(user)})
}

// Me godoc
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.UserEnvelope
// @Router       /auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.UserEnvelope{User: toUser(user)})
}

// ChangePassword godoc
// @Summary      Change the password of the current user
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      api.ChangePasswordRequest  true  "Passwords"
// @Success      200   {object}  api.MessageResponse
// @Failure      400   {object}  api.ErrorResponse
// @Router       /auth/change-password [patch]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req api.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password changed successfully"})
}

// UploadProfilePicture godoc
// @Summary      Upload a profile picture
// @Tags         Auth
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image of at most 5MB"
// @Success      200    {object}  api.ProfilePictureResponse
// @Failure      400    {object}  api.ErrorResponse
// @Failure      503    {object}  api.ErrorResponse
// @Router       /auth/upload-profile-picture [post]
func (h *UserHandler) UploadProfilePicture(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, forms.MaxAvatarBytes+avatarFormOverhead)
	fh, err := c.FormFile("image")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusBadRequest, apierror.Validation(forms.ErrImageTooLarge.Error()).Response())
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation(forms.ErrNotAnImage.Error()).Response())
		return
	}

	file, err := fh.Open()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer file.Close()

	user, err := h.auth.UploadAvatar(c.Request.Context(), userID, fh.Header.Get("Content-Type"), file, fh.Size)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.ProfilePictureResponse{Message: "Profile picture updated", User: toUser(user)})
}

// ForgotPassword godoc
// @Summary      Request a password reset link
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      api.ForgotPasswordRequest  true  "Email"
// @Success      200   {object}  api.MessageResponse
// @Router       /auth/forgot-password [post]
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req api.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: forgotPasswordMessage})
}

// ResetPassword godoc
// @Summary      Reset a password with an emailed token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      api.ResetPasswordRequest  true  "Token and new password"
// @Success      200   {object}  api.MessageResponse
// @Failure      400   {object}  api.ErrorResponse
// @Router       /auth/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req api.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password reset successfully"})
}
