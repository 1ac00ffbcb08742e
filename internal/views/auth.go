package views

import (
	"context"

	"taskboard/internal/forms"
	"taskboard/internal/notify"
	"taskboard/internal/session"
)

// Authenticator signs users in and out.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, name, email, password string) (string, error)
}

type AuthPages struct {
	api      API
	auth     Authenticator
	notifier notify.Notifier
}

func NewAuthPages(a API, auth Authenticator, n notify.Notifier) *AuthPages {
	return &AuthPages{api: a, auth: auth, notifier: n}
}

func (p *AuthPages) Login(ctx context.Context, email, password string) (string, error) {
	email, err := forms.Email(email)
	if err != nil {
		p.notifier.Error(err.Error())
		return "", err
	}
	return p.auth.Login(ctx, email, password)
}

func (p *AuthPages) Signup(ctx context.Context, name, email, password string) (string, error) {
	name, err := forms.Name(name)
	if err == nil {
		email, err = forms.Email(email)
	}
	if err != nil {
		p.notifier.Error(err.Error())
		return "", err
	}
	return p.auth.Signup(ctx, name, email, password)
}

// ForgotPassword asks the server to mail a reset link.
func (p *AuthPages) ForgotPassword(ctx context.Context, email string) error {
	email, err := forms.Email(email)
	if err != nil {
		p.notifier.Error(err.Error())
		return err
	}
	if _, err := p.api.ForgotPassword(ctx, email); err != nil {
		p.notifier.Error(failure(err, "Something went wrong"))
		return err
	}
	p.notifier.Success("Reset link sent!")
	return nil
}

// ResetPassword sets a new password and returns the login route.
func (p *AuthPages) ResetPassword(ctx context.Context, token, password, confirm string) (string, error) {
	if err := forms.ResetPassword(password, confirm); err != nil {
		p.notifier.Error(err.Error())
		return "", err
	}
	if err := p.api.ResetPassword(ctx, token, password); err != nil {
		p.notifier.Error(failure(err, "Failed to reset password"))
		return "", err
	}
	p.notifier.Success("Password reset successfully!")
	return session.RouteLogin, nil
}
