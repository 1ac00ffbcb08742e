// Package forms validates user input before it is sent to the API. The
// server runs the same checks so both sides report identical messages.
package forms

import (
	"errors"
	"strings"
)

const (
	MinPasswordLength = 6
	MaxAvatarBytes    = 5 << 20
)

var (
	ErrBoardTitleRequired   = errors.New("Board title is required")
	ErrListTitleRequired    = errors.New("List title is required")
	ErrCardTitleRequired    = errors.New("Card title is required")
	ErrTitleRequired        = errors.New("Title is required")
	ErrCommentEmpty         = errors.New("Comment cannot be empty")
	ErrPasswordTooShort     = errors.New("Password must be at least 6 characters")
	ErrPasswordsMismatch    = errors.New("Passwords do not match")
	ErrNewPasswordTooShort  = errors.New("New password must be at least 6 characters")
	ErrNewPasswordsMismatch = errors.New("New passwords do not match")
	ErrNotAnImage           = errors.New("Please select an image file")
	ErrImageTooLarge        = errors.New("Image size must be less than 5MB")
	ErrNameRequired         = errors.New("Please enter your full name.")
	ErrEmailRequired        = errors.New("Email is required")
)

func required(value string, err error) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", err
	}
	return value, nil
}

// BoardTitle returns the trimmed title of a new board.
func BoardTitle(title string) (string, error) {
	return required(title, ErrBoardTitleRequired)
}

func ListTitle(title string) (string, error) {
	return required(title, ErrListTitleRequired)
}

// CardTitle validates the title typed when a card is created.
func CardTitle(title string) (string, error) {
	return required(title, ErrCardTitleRequired)
}

// EditedCardTitle validates the title in the card detail editor.
func EditedCardTitle(title string) (string, error) {
	return required(title, ErrTitleRequired)
}

func Comment(text string) (string, error) {
	return required(text, ErrCommentEmpty)
}

func Name(name string) (string, error) {
	return required(name, ErrNameRequired)
}

// Email trims and lower-cases an address.
func Email(email string) (string, error) {
	email, err := required(email, ErrEmailRequired)
	return strings.ToLower(email), err
}

// ResetPassword checks the new password typed on the reset page.
func ResetPassword(password, confirm string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordsMismatch
	}
	return nil
}

// ChangePassword checks the settings form. The confirmation is compared first.
func ChangePassword(newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrNewPasswordsMismatch
	}
	return NewPassword(newPassword)
}

func NewPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrNewPasswordTooShort
	}
	return nil
}

// Avatar accepts any image/* content type of at most MaxAvatarBytes.
func Avatar(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if size > MaxAvatarBytes {
		return ErrImageTooLarge
	}
	return nil
}
