package views

import (
	"context"
	"io"

	"taskboard/internal/api"
	"taskboard/internal/forms"
	"taskboard/internal/notify"

	"go.uber.org/zap"
)

// Profile is the session state the settings page updates.
type Profile interface {
	SetUser(u api.User) error
	Logout() (string, error)
}

type Settings struct {
	api      API
	profile  Profile
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewSettings(a API, profile Profile, n notify.Notifier, logger *zap.Logger) *Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Settings{api: a, profile: profile, notifier: n, logger: logger}
}

func (p *Settings) Load(ctx context.Context) (*api.User, error) {
	user, err := p.api.Me(ctx)
	if err != nil {
		p.logger.Debug("failed to fetch user", zap.Error(err))
		p.notifier.Error("Failed to load user details")
		return nil, err
	}
	return user, nil
}

func (p *Settings) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if err := forms.ChangePassword(next, confirm); err != nil {
		p.notifier.Error(err.Error())
		return err
	}
	if err := p.api.ChangePassword(ctx, current, next); err != nil {
		p.notifier.Error(failure(err, "Failed to change password"))
		return err
	}
	p.notifier.Success("Password changed successfully")
	return nil
}

// UploadAvatar checks type and size before sending r.
func (p *Settings) UploadAvatar(ctx context.Context, filename, contentType string, size int64, r io.Reader) (*api.User, error) {
	if err := forms.Avatar(contentType, size); err != nil {
		p.notifier.Error(err.Error())
		return nil, err
	}
	user, err := p.api.UploadProfilePicture(ctx, filename, contentType, r)
	if err != nil {
		p.notifier.Error(failure(err, "Failed to upload image"))
		return nil, err
	}
	if p.profile != nil {
		if err := p.profile.SetUser(*user); err != nil {
			p.logger.Warn("failed to cache profile", zap.Error(err))
		}
	}
	p.notifier.Success("Profile picture updated")
	return user, nil
}

func (p *Settings) Logout() (string, error) {
	return p.profile.Logout()
}
