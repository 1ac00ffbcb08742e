package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrStorageUnavailable = errors.New("avatar storage is not configured")
)

// ValidationError carries a message meant for the end user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// invalid turns a forms error into a ValidationError.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return Invalid(err.Error())
}
