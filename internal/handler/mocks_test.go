package handler_test

import (
	"context"
	"io"

	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

var _ service.AuthServiceInterface = (*MockAuthService)(nil)

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, name, email, password)
	user, _ := args.Get(1).(*model.User)
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(1).(*model.User)
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	return m.Called(ctx, userID, current, next).Error(0)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, next string) error {
	return m.Called(ctx, token, next).Error(0)
}

func (m *MockAuthService) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, body io.Reader, size int64) (*model.User, error) {
	args := m.Called(ctx, userID, contentType, body, size)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type MockBoardService struct {
	mock.Mock
}

var _ service.BoardServiceInterface = (*MockBoardService)(nil)

func (m *MockBoardService) List(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, userID)
	boards, _ := args.Get(0).([]model.Board)
	return boards, args.Error(1)
}

func (m *MockBoardService) Create(ctx context.Context, userID uuid.UUID, title, description, backgroundColor string) (*model.Board, error) {
	args := m.Called(ctx, userID, title, description, backgroundColor)
	board, _ := args.Get(0).(*model.Board)
	return board, args.Error(1)
}

func (m *MockBoardService) Delete(ctx context.Context, userID, boardID uuid.UUID) error {
	return m.Called(ctx, userID, boardID).Error(0)
}

type MockListService struct {
	mock.Mock
}

var _ service.ListServiceInterface = (*MockListService)(nil)

func (m *MockListService) ByBoard(ctx context.Context, userID, boardID uuid.UUID) ([]model.List, error) {
	args := m.Called(ctx, userID, boardID)
	lists, _ := args.Get(0).([]model.List)
	return lists, args.Error(1)
}

func (m *MockListService) Create(ctx context.Context, userID, boardID uuid.UUID, title, description string) (*model.List, error) {
	args := m.Called(ctx, userID, boardID, title, description)
	list, _ := args.Get(0).(*model.List)
	return list, args.Error(1)
}

func (m *MockListService) Update(ctx context.Context, userID, listID uuid.UUID, title, description *string) (*model.List, error) {
	args := m.Called(ctx, userID, listID, title, description)
	list, _ := args.Get(0).(*model.List)
	return list, args.Error(1)
}

func (m *MockListService) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	return m.Called(ctx, userID, listID).Error(0)
}

func (m *MockListService) Reorder(ctx context.Context, userID, boardID uuid.UUID, orderedIDs []uuid.UUID) error {
	return m.Called(ctx, userID, boardID, orderedIDs).Error(0)
}

type MockCardService struct {
	mock.Mock
}

var _ service.CardServiceInterface = (*MockCardService)(nil)

func (m *MockCardService) ByList(ctx context.Context, userID, listID uuid.UUID) ([]model.Card, error) {
	args := m.Called(ctx, userID, listID)
	cards, _ := args.Get(0).([]model.Card)
	return cards, args.Error(1)
}

func (m *MockCardService) Create(ctx context.Context, userID uuid.UUID, in service.NewCard) (*model.Card, error) {
	args := m.Called(ctx, userID, in)
	card, _ := args.Get(0).(*model.Card)
	return card, args.Error(1)
}

func (m *MockCardService) Update(ctx context.Context, userID, cardID uuid.UUID, patch service.CardPatch) (*model.Card, error) {
	args := m.Called(ctx, userID, cardID, patch)
	card, _ := args.Get(0).(*model.Card)
	return card, args.Error(1)
}

func (m *MockCardService) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	return m.Called(ctx, userID, cardID).Error(0)
}

func (m *MockCardService) Reorder(ctx context.Context, userID, listID uuid.UUID, orderedIDs []uuid.UUID) error {
	return m.Called(ctx, userID, listID, orderedIDs).Error(0)
}

func (m *MockCardService) AddComment(ctx context.Context, userID, cardID uuid.UUID, text string) (*model.Card, error) {
	args := m.Called(ctx, userID, cardID, text)
	card, _ := args.Get(0).(*model.Card)
	return card, args.Error(1)
}

func (m *MockCardService) DeleteComment(ctx context.Context, userID, cardID, commentID uuid.UUID) (*model.Card, error) {
	args := m.Called(ctx, userID, cardID, commentID)
	card, _ := args.Get(0).(*model.Card)
	return card, args.Error(1)
}

func (m *MockCardService) MyTasks(ctx context.Context, userID uuid.UUID) ([]model.Card, error) {
	args := m.Called(ctx, userID)
	cards, _ := args.Get(0).([]model.Card)
	return cards, args.Error(1)
}
