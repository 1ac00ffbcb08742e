package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskboard/internal/api"
	"taskboard/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, token string, h http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return client.New(srv.URL+"/api", client.TokenFunc(func() string { return token }))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_LoginSendsCredentialsWithoutToken(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada@example.com", req.Email)
		assert.Equal(t, "secret1", req.Password)

		writeJSON(w, http.StatusOK, api.AuthResponse{Token: "tok", User: api.User{ID: "u1", Name: "Ada"}})
	})

	out, err := c.Login(context.Background(), "ada@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "tok", out.Token)
	assert.Equal(t, "Ada", out.User.Name)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/boards", r.URL.Path)
		writeJSON(w, http.StatusOK, api.BoardsEnvelope{Boards: []api.Board{{ID: "b1", Title: "Roadmap"}}})
	})

	boards, err := c.Boards(context.Background())

	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "Roadmap", boards[0].Title)
}

func TestClient_ErrorUsesServerMessage(t *testing.T) {
	c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, api.ErrorResponse{Message: "Access denied", Code: "FORBIDDEN"})
	})

	err := c.DeleteBoard(context.Background(), "b1")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Access denied", apiErr.Message)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)
	assert.Equal(t, http.StatusForbidden, client.StatusOf(err))
}

func TestClient_ErrorFallsBackToGenericMessage(t *testing.T) {
	tests := []struct {
		name string
		call func(c *client.Client) error
		want string
	}{
		{"boards", func(c *client.Client) error { _, err := c.Boards(context.Background()); return err }, "Failed to fetch boards"},
		{"lists", func(c *client.Client) error { _, err := c.Lists(context.Background(), "b1"); return err }, "Failed to fetch lists for this board"},
		{"cards", func(c *client.Client) error { _, err := c.Cards(context.Background(), "l1"); return err }, "Failed to fetch cards for this list"},
		{"my tasks", func(c *client.Client) error { _, err := c.MyTasks(context.Background()); return err }, "Failed to fetch your tasks"},
		{"reorder lists", func(c *client.Client) error {
			return c.ReorderLists(context.Background(), "b1", []string{"l1"})
		}, "Failed to reorder lists"},
		{"reorder cards", func(c *client.Client) error {
			return c.ReorderCards(context.Background(), "l1", []string{"c1"})
		}, "Failed to reorder cards"},
		{"me", func(c *client.Client) error { _, err := c.Me(context.Background()); return err }, "Failed to fetch user details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = io.WriteString(w, "<html>oops</html>")
			})

			err := tt.call(c)

			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, http.StatusInternalServerError, client.StatusOf(err))
		})
	}
}

func TestClient_ArgumentChecksSkipTheNetwork(t *testing.T) {
	c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})
	ctx := context.Background()

	assert.ErrorIs(t, c.DeleteBoard(ctx, ""), client.ErrBoardIDRequired)
	_, err := c.Lists(ctx, "")
	assert.ErrorIs(t, err, client.ErrBoardIDRequired)
	_, err = c.Cards(ctx, "")
	assert.ErrorIs(t, err, client.ErrListIDRequired)
	assert.ErrorIs(t, c.DeleteCard(ctx, ""), client.ErrCardIDRequired)
	_, err = c.AddComment(ctx, "c1", "")
	assert.ErrorIs(t, err, client.ErrCommentArgs)
	_, err = c.DeleteComment(ctx, "c1", "")
	assert.ErrorIs(t, err, client.ErrCommentIDArgs)
	assert.ErrorIs(t, c.ReorderLists(ctx, "b1", nil), client.ErrReorderListsArgs)
	assert.ErrorIs(t, c.ReorderCards(ctx, "", []string{"c1"}), client.ErrReorderCardsArgs)
}

func TestClient_ReorderCardsBody(t *testing.T) {
	c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/cards/reorder", r.URL.Path)
		var req api.ReorderCardsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "l2", req.ListID)
		assert.Equal(t, []string{"c3", "c1"}, req.CardIDs)
		writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Cards reordered successfully"})
	})

	require.NoError(t, c.ReorderCards(context.Background(), "l2", []string{"c3", "c1"}))
}

func TestClient_ReorderEmptyListIsAllowed(t *testing.T) {
	c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, []interface{}{}, raw["cardIds"])
		writeJSON(w, http.StatusOK, api.MessageResponse{Message: "ok"})
	})

	require.NoError(t, c.ReorderCards(context.Background(), "l1", []string{}))
}

func TestClient_UpdateCardClearsDueDate(t *testing.T) {
	c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cards/c1", r.URL.Path)
		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "null", string(raw["dueDate"]))
		_, hasLabels := raw["labels"]
		assert.False(t, hasLabels)
		writeJSON(w, http.StatusOK, api.CardEnvelope{Card: api.Card{ID: "c1", Title: "Ship"}})
	})

	card, err := c.UpdateCard(context.Background(), "c1", api.UpdateCardRequest{DueDate: api.ClearDueDate()})

	require.NoError(t, err)
	assert.Equal(t, "Ship", card.Title)
}

func TestClient_CreateCardWithDueDate(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateCardRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.DueDate)
		assert.True(t, due.Equal(req.DueDate.Time))
		assert.Equal(t, []string{"bug"}, req.Labels)
		writeJSON(w, http.StatusCreated, api.CardEnvelope{Card: api.Card{ID: "c9", ListID: req.ListID, Title: req.Title}})
	})

	card, err := c.CreateCard(context.Background(), api.CreateCardRequest{
		ListID: "l1", Title: "Fix", DueDate: &api.Date{Time: due}, Labels: []string{"bug"},
	})

	require.NoError(t, err)
	assert.Equal(t, "c9", card.ID)
}

func TestClient_UploadProfilePicture(t *testing.T) {
	c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/upload-profile-picture", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "me.png", hdr.Filename)
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
		data, _ := io.ReadAll(f)
		assert.Equal(t, "pngdata", string(data))
		writeJSON(w, http.StatusOK, api.ProfilePictureResponse{
			Message: "Profile picture updated",
			User:    api.User{ID: "u1", ProfilePicture: "http://cdn/avatars/u1/x.png"},
		})
	})

	user, err := c.UploadProfilePicture(context.Background(), "me.png", "image/png", strings.NewReader("pngdata"))

	require.NoError(t, err)
	assert.Equal(t, "http://cdn/avatars/u1/x.png", user.ProfilePicture)
}

func TestClient_DeleteCommentReturnsCard(t *testing.T) {
	c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/cards/c1/comments/m1", r.URL.Path)
		writeJSON(w, http.StatusOK, api.CardEnvelope{Card: api.Card{ID: "c1", Comments: []api.Comment{}}})
	})

	card, err := c.DeleteComment(context.Background(), "c1", "m1")

	require.NoError(t, err)
	assert.Empty(t, card.Comments)
}

func TestClient_EmptyCollectionsAreNonNil(t *testing.T) {
	c := newTestClient(t, "abc", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	cards, err := c.MyTasks(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestNew_DefaultsBaseURL(t *testing.T) {
	c := client.New("", nil)
	assert.Equal(t, client.DefaultBaseURL, c.BaseURL())

	c = client.New("http://host/api/", nil)
	assert.Equal(t, "http://host/api", c.BaseURL())
}
