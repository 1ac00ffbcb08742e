package api

import "time"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type CreateBoardRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	BackgroundColor string `json:"backgroundColor"`
}

type CreateListRequest struct {
	BoardID     string `json:"boardId" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateListRequest is a partial update: nil fields are left untouched.
type UpdateListRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ReorderListsRequest struct {
	BoardID        string   `json:"boardId" binding:"required,uuid"`
	OrderedListIDs []string `json:"orderedListIds" binding:"required,dive,uuid"`
}

type CreateCardRequest struct {
	ListID      string   `json:"listId" binding:"required,uuid"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	DueDate     *Date    `json:"dueDate,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

// UpdateCardRequest is a partial update. DueDate distinguishes an absent
// field (keep) from an explicit null (clear).
type UpdateCardRequest struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	DueDate     NullableDate `json:"dueDate,omitzero"`
	Labels      *[]string    `json:"labels,omitempty"`
}

type ReorderCardsRequest struct {
	ListID  string   `json:"listId" binding:"required,uuid"`
	CardIDs []string `json:"cardIds" binding:"required,dive,uuid"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClearDueDate returns a NullableDate that removes a card's due date.
func ClearDueDate() NullableDate {
	return NullableDate{Set: true}
}

// SetDueDate returns a NullableDate that sets a card's due date.
func SetDueDate(t time.Time) NullableDate {
	return NullableDate{Set: true, Value: &t}
}
