package views

import (
	"context"
	"io"

	"taskboard/internal/api"

	"github.com/stretchr/testify/mock"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Me(ctx context.Context) (*api.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.User), args.Error(1)
}

func (m *MockAPI) ChangePassword(ctx context.Context, current, next string) error {
	return m.Called(ctx, current, next).Error(0)
}

func (m *MockAPI) UploadProfilePicture(ctx context.Context, filename, contentType string, r io.Reader) (*api.User, error) {
	args := m.Called(ctx, filename, contentType, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.User), args.Error(1)
}

func (m *MockAPI) ForgotPassword(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockAPI) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.Called(ctx, token, newPassword).Error(0)
}

func (m *MockAPI) Boards(ctx context.Context) ([]api.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Board), args.Error(1)
}

func (m *MockAPI) CreateBoard(ctx context.Context, title, description, backgroundColor string) (*api.Board, error) {
	args := m.Called(ctx, title, description, backgroundColor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Board), args.Error(1)
}

func (m *MockAPI) DeleteBoard(ctx context.Context, boardID string) error {
	return m.Called(ctx, boardID).Error(0)
}

func (m *MockAPI) Lists(ctx context.Context, boardID string) ([]api.List, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.List), args.Error(1)
}

func (m *MockAPI) CreateList(ctx context.Context, boardID, title, description string) (*api.List, error) {
	args := m.Called(ctx, boardID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.List), args.Error(1)
}

func (m *MockAPI) UpdateList(ctx context.Context, listID string, req api.UpdateListRequest) (*api.List, error) {
	args := m.Called(ctx, listID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.List), args.Error(1)
}

func (m *MockAPI) DeleteList(ctx context.Context, listID string) error {
	return m.Called(ctx, listID).Error(0)
}

func (m *MockAPI) ReorderLists(ctx context.Context, boardID string, listIDs []string) error {
	return m.Called(ctx, boardID, listIDs).Error(0)
}

func (m *MockAPI) Cards(ctx context.Context, listID string) ([]api.Card, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Card), args.Error(1)
}

func (m *MockAPI) CreateCard(ctx context.Context, req api.CreateCardRequest) (*api.Card, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Card), args.Error(1)
}

func (m *MockAPI) UpdateCard(ctx context.Context, cardID string, req api.UpdateCardRequest) (*api.Card, error) {
	args := m.Called(ctx, cardID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Card), args.Error(1)
}

func (m *MockAPI) DeleteCard(ctx context.Context, cardID string) error {
	return m.Called(ctx, cardID).Error(0)
}

func (m *MockAPI) ReorderCards(ctx context.Context, listID string, cardIDs []string) error {
	return m.Called(ctx, listID, cardIDs).Error(0)
}

func (m *MockAPI) AddComment(ctx context.Context, cardID, text string) (*api.Card, error) {
	args := m.Called(ctx, cardID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Card), args.Error(1)
}

func (m *MockAPI) DeleteComment(ctx context.Context, cardID, commentID string) (*api.Card, error) {
	args := m.Called(ctx, cardID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Card), args.Error(1)
}

func (m *MockAPI) MyTasks(ctx context.Context) ([]api.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Card), args.Error(1)
}

type recorder struct {
	successes []string
	errors    []string
}

func (r *recorder) Success(m string) int { r.successes = append(r.successes, m); return 0 }
func (r *recorder) Error(m string) int   { r.errors = append(r.errors, m); return 0 }

type fakeProfile struct {
	user      *api.User
	loggedOut bool
}

func (f *fakeProfile) SetUser(u api.User) error {
	f.user = &u
	return nil
}

func (f *fakeProfile) Logout() (string, error) {
	f.loggedOut = true
	return "/login", nil
}

type fakeAuth struct {
	email, name string
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) (string, error) {
	f.email = email
	return "/", nil
}

func (f *fakeAuth) Signup(_ context.Context, name, email, _ string) (string, error) {
	f.name, f.email = name, email
	return "/", nil
}
