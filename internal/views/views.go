// Package views holds the page controllers of the board UI. Each one calls
// the REST client and reports the outcome as a toast.
package views

import (
	"context"
	"io"

	"taskboard/internal/api"
)

// API is the REST surface the pages use. *client.Client implements it.
type API interface {
	Me(ctx context.Context) (*api.User, error)
	ChangePassword(ctx context.Context, current, next string) error
	UploadProfilePicture(ctx context.Context, filename, contentType string, r io.Reader) (*api.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error

	Boards(ctx context.Context) ([]api.Board, error)
	CreateBoard(ctx context.Context, title, description, backgroundColor string) (*api.Board, error)
	DeleteBoard(ctx context.Context, boardID string) error

	Lists(ctx context.Context, boardID string) ([]api.List, error)
	CreateList(ctx context.Context, boardID, title, description string) (*api.List, error)
	UpdateList(ctx context.Context, listID string, req api.UpdateListRequest) (*api.List, error)
	DeleteList(ctx context.Context, listID string) error
	ReorderLists(ctx context.Context, boardID string, listIDs []string) error

	Cards(ctx context.Context, listID string) ([]api.Card, error)
	CreateCard(ctx context.Context, req api.CreateCardRequest) (*api.Card, error)
	UpdateCard(ctx context.Context, cardID string, req api.UpdateCardRequest) (*api.Card, error)
	DeleteCard(ctx context.Context, cardID string) error
	ReorderCards(ctx context.Context, listID string, cardIDs []string) error
	AddComment(ctx context.Context, cardID, text string) (*api.Card, error)
	DeleteComment(ctx context.Context, cardID, commentID string) (*api.Card, error)
	MyTasks(ctx context.Context) ([]api.Card, error)
}

// failure returns the error text, or fallback when there is none.
func failure(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
