package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"taskboard/internal/api"
)

var (
	ErrBoardIDRequired   = errors.New("Board ID is required")
	ErrListIDRequired    = errors.New("List ID is required")
	ErrCardIDRequired    = errors.New("Card ID is required")
	ErrCommentArgs       = errors.New("Card ID and comment text are required")
	ErrCommentIDArgs     = errors.New("Card ID and comment ID are required")
	ErrReorderListsArgs  = errors.New("Board ID and list IDs array are required")
	ErrReorderCardsArgs  = errors.New("List ID and card IDs array are required")
	ErrImageNameRequired = errors.New("Image file name is required")
)

func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	var out api.AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", api.LoginRequest{Email: email, Password: password}, &out, "Login failed")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*api.AuthResponse, error) {
	var out api.AuthResponse
	req := api.RegisterRequest{Name: name, Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &out, "Registration failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var out api.UserEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &out, "Failed to fetch user details"); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	req := api.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	return c.doJSON(ctx, http.MethodPatch, "/auth/change-password", req, nil, "Failed to change password")
}

// UploadProfilePicture sends r as the multipart "image" field.
func (c *Client) UploadProfilePicture(ctx context.Context, filename, contentType string, r io.Reader) (*api.User, error) {
	if filename == "" {
		return nil, ErrImageNameRequired
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var out api.ProfilePictureResponse
	if err := c.do(ctx, http.MethodPost, "/auth/upload-profile-picture", &buf, w.FormDataContentType(), &out, "Failed to change profile picture"); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ForgotPassword returns the server's confirmation message.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out api.MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", api.ForgotPasswordRequest{Email: email}, &out, "Failed to send reset link"); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	req := api.ResetPasswordRequest{Token: token, NewPassword: newPassword}
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password", req, nil, "Failed to reset password")
}

func (c *Client) Boards(ctx context.Context) ([]api.Board, error) {
	var out api.BoardsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/boards", nil, &out, "Failed to fetch boards"); err != nil {
		return nil, err
	}
	if out.Boards == nil {
		return []api.Board{}, nil
	}
	return out.Boards, nil
}

func (c *Client) CreateBoard(ctx context.Context, title, description, backgroundColor string) (*api.Board, error) {
	var out api.BoardEnvelope
	req := api.CreateBoardRequest{Title: title, Description: description, BackgroundColor: backgroundColor}
	if err := c.doJSON(ctx, http.MethodPost, "/boards", req, &out, "Failed to create board"); err != nil {
		return nil, err
	}
	return &out.Board, nil
}

func (c *Client) DeleteBoard(ctx context.Context, boardID string) error {
	if boardID == "" {
		return ErrBoardIDRequired
	}
	return c.doJSON(ctx, http.MethodDelete, "/boards/"+url.PathEscape(boardID), nil, nil, "Failed to delete board")
}

func (c *Client) Lists(ctx context.Context, boardID string) ([]api.List, error) {
	if boardID == "" {
		return nil, ErrBoardIDRequired
	}
	var out api.ListsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/lists/board/"+url.PathEscape(boardID), nil, &out, "Failed to fetch lists for this board"); err != nil {
		return nil, err
	}
	if out.Lists == nil {
		return []api.List{}, nil
	}
	return out.Lists, nil
}

func (c *Client) CreateList(ctx context.Context, boardID, title, description string) (*api.List, error) {
	if boardID == "" {
		return nil, ErrBoardIDRequired
	}
	var out api.ListEnvelope
	req := api.CreateListRequest{BoardID: boardID, Title: title, Description: description}
	if err := c.doJSON(ctx, http.MethodPost, "/lists", req, &out, "Failed to create list"); err != nil {
		return nil, err
	}
	return &out.List, nil
}

func (c *Client) UpdateList(ctx context.Context, listID string, req api.UpdateListRequest) (*api.List, error) {
	if listID == "" {
		return nil, ErrListIDRequired
	}
	var out api.ListEnvelope
	if err := c.doJSON(ctx, http.MethodPatch, "/lists/"+url.PathEscape(listID), req, &out, "Failed to update list"); err != nil {
		return nil, err
	}
	return &out.List, nil
}

func (c *Client) DeleteList(ctx context.Context, listID string) error {
	if listID == "" {
		return ErrListIDRequired
	}
	return c.doJSON(ctx, http.MethodDelete, "/lists/"+url.PathEscape(listID), nil, nil, "Failed to delete list")
}

// ReorderLists persists the full list order of a board.
func (c *Client) ReorderLists(ctx context.Context, boardID string, listIDs []string) error {
	if boardID == "" || listIDs == nil {
		return ErrReorderListsArgs
	}
	req := api.ReorderListsRequest{BoardID: boardID, OrderedListIDs: listIDs}
	return c.doJSON(ctx, http.MethodPatch, "/lists/reorder", req, nil, "Failed to reorder lists")
}

func (c *Client) Cards(ctx context.Context, listID string) ([]api.Card, error) {
	if listID == "" {
		return nil, ErrListIDRequired
	}
	var out api.CardsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/cards/list/"+url.PathEscape(listID), nil, &out, "Failed to fetch cards for this list"); err != nil {
		return nil, err
	}
	if out.Cards == nil {
		return []api.Card{}, nil
	}
	return out.Cards, nil
}

func (c *Client) CreateCard(ctx context.Context, req api.CreateCardRequest) (*api.Card, error) {
	if req.ListID == "" {
		return nil, ErrListIDRequired
	}
	var out api.CardEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/cards", req, &out, "Failed to create card"); err != nil {
		return nil, err
	}
	return &out.Card, nil
}

func (c *Client) UpdateCard(ctx context.Context, cardID string, req api.UpdateCardRequest) (*api.Card, error) {
	if cardID == "" {
		return nil, ErrCardIDRequired
	}
	var out api.CardEnvelope
	if err := c.doJSON(ctx, http.MethodPatch, "/cards/"+url.PathEscape(cardID), req, &out, "Failed to update card"); err != nil {
		return nil, err
	}
	return &out.Card, nil
}

func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	if cardID == "" {
		return ErrCardIDRequired
	}
	return c.doJSON(ctx, http.MethodDelete, "/cards/"+url.PathEscape(cardID), nil, nil, "Failed to delete card")
}

// ReorderCards makes cardIDs the content of listID, in order.
func (c *Client) ReorderCards(ctx context.Context, listID string, cardIDs []string) error {
	if listID == "" || cardIDs == nil {
		return ErrReorderCardsArgs
	}
	req := api.ReorderCardsRequest{ListID: listID, CardIDs: cardIDs}
	return c.doJSON(ctx, http.MethodPatch, "/cards/reorder", req, nil, "Failed to reorder cards")
}

func (c *Client) AddComment(ctx context.Context, cardID, text string) (*api.Card, error) {
	if cardID == "" || text == "" {
		return nil, ErrCommentArgs
	}
	var out api.CardEnvelope
	path := "/cards/" + url.PathEscape(cardID) + "/comments"
	if err := c.doJSON(ctx, http.MethodPost, path, api.AddCommentRequest{Text: text}, &out, "Failed to add comment"); err != nil {
		return nil, err
	}
	return &out.Card, nil
}

func (c *Client) DeleteComment(ctx context.Context, cardID, commentID string) (*api.Card, error) {
	if cardID == "" || commentID == "" {
		return nil, ErrCommentIDArgs
	}
	var out api.CardEnvelope
	path := "/cards/" + url.PathEscape(cardID) + "/comments/" + url.PathEscape(commentID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &out, "Failed to delete comment"); err != nil {
		return nil, err
	}
	return &out.Card, nil
}

func (c *Client) MyTasks(ctx context.Context) ([]api.Card, error) {
	var out api.CardsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/cards/my-tasks", nil, &out, "Failed to fetch your tasks"); err != nil {
		return nil, err
	}
	if out.Cards == nil {
		return []api.Card{}, nil
	}
	return out.Cards, nil
}
