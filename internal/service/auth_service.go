package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"taskboard/internal/auth"
	"taskboard/internal/forms"
	"taskboard/internal/mailer"
	"taskboard/internal/metrics"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TokenIssuer interface {
	Generate(userID uuid.UUID) (string, error)
}

type ResetTokens interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Consume(ctx context.Context, token string) (uuid.UUID, error)
}

type AvatarStorage interface {
	Put(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader, size int64) (string, error)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, name, email, password string) (string, *model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	Me(ctx context.Context, userID uuid.UUID) (*model.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, next string) error
	UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader, size int64) (*model.User, error)
}

type AuthService struct {
	users        repository.UserRepositoryInterface
	tokens       TokenIssuer
	resets       ResetTokens
	mail         mailer.Mailer
	avatars      AvatarStorage
	resetURLBase string
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

var _ AuthServiceInterface = (*AuthService)(nil)

type AuthDeps struct {
	Users        repository.UserRepositoryInterface
	Tokens       TokenIssuer
	Resets       ResetTokens
	Mailer       mailer.Mailer
	Avatars      AvatarStorage // nil when S3 is not configured
	ResetURLBase string
	Metrics      *metrics.Metrics
	Logger       *zap.Logger
}

func NewAuthService(d AuthDeps) *AuthService {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:        d.Users,
		tokens:       d.Tokens,
		resets:       d.Resets,
		mail:         d.Mailer,
		avatars:      d.Avatars,
		resetURLBase: strings.TrimRight(d.ResetURLBase, "/"),
		metrics:      d.Metrics,
		logger:       logger,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (token string, user *model.User, err error) {
	defer func() { s.metrics.AuthEvent("register", err) }()

	name, err = forms.Name(name)
	if err != nil {
		return "", nil, invalid(err)
	}
	email, err = forms.Email(email)
	if err != nil {
		return "", nil, invalid(err)
	}
	if len(password) < forms.MinPasswordLength {
		return "", nil, invalid(forms.ErrPasswordTooShort)
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return "", nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user = &model.User{
		ID:             uuid.New(),
		Email:          email,
		Name:           name,
		HashedPassword: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err = s.tokens.Generate(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (token string, user *model.User, err error) {
	defer func() { s.metrics.AuthEvent("login", err) }()

	email = strings.ToLower(strings.TrimSpace(email))
	user, err = s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	token, err = s.tokens.Generate(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if err := forms.NewPassword(next); err != nil {
		return invalid(err)
	}

	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.CheckPassword(user.HashedPassword, current); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return ErrWrongPassword
		}
		return err
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

// ForgotPassword mails a reset link. Unknown addresses succeed silently so
// the endpoint cannot be used to probe for accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (err error) {
	defer func() { s.metrics.AuthEvent("forgot_password", err) }()

	email, err = forms.Email(email)
	if err != nil {
		return invalid(err)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.logger.Debug("password reset for unknown email")
		return nil
	}

	// Failures are only logged: the response is the same whether or not
	// the address has an account.
	token, err := s.resets.Issue(ctx, user.ID)
	if err != nil {
		s.logger.Error("issue password reset token", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil
	}

	link := s.resetURLBase + "/" + token
	if err := s.mail.SendPasswordReset(ctx, user.Email, user.Name, link); err != nil {
		s.logger.Error("send password reset", zap.String("user_id", user.ID.String()), zap.Error(err))
		return nil
	}
	s.logger.Info("password reset issued", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, next string) (err error) {
	defer func() { s.metrics.AuthEvent("reset_password", err) }()

	if len(next) < forms.MinPasswordLength {
		return invalid(forms.ErrPasswordTooShort)
	}

	userID, err := s.resets.Consume(ctx, token)
	if err != nil {
		return err
	}

	if _, err := s.Me(ctx, userID); err != nil {
		return err
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

func (s *AuthService) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader, size int64) (*model.User, error) {
	if s.avatars == nil {
		return nil, ErrStorageUnavailable
	}
	if err := forms.Avatar(contentType, size); err != nil {
		return nil, invalid(err)
	}

	if _, err := s.Me(ctx, userID); err != nil {
		return nil, err
	}

	url, err := s.avatars.Put(ctx, userID, contentType, body, size)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateProfilePicture(ctx, userID, url); err != nil {
		return nil, fmt.Errorf("update profile picture: %w", err)
	}
	return s.Me(ctx, userID)
}
