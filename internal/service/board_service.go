package service

import (
	"context"

	"taskboard/internal/forms"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
)

type BoardServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Board, error)
	Create(ctx context.Context, userID uuid.UUID, title, description, backgroundColor string) (*model.Board, error)
	Delete(ctx context.Context, userID, boardID uuid.UUID) error
}

type BoardService struct {
	boards repository.BoardRepositoryInterface
}

var _ BoardServiceInterface = (*BoardService)(nil)

func NewBoardService(boards repository.BoardRepositoryInterface) *BoardService {
	return &BoardService{boards: boards}
}

func (s *BoardService) List(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	return s.boards.GetOwned(ctx, userID)
}

func (s *BoardService) Create(ctx context.Context, userID uuid.UUID, title, description, backgroundColor string) (*model.Board, error) {
	title, err := forms.BoardTitle(title)
	if err != nil {
		return nil, invalid(err)
	}

	board := &model.Board{
		ID:              uuid.New(),
		Title:           title,
		Description:     description,
		BackgroundColor: backgroundColor,
		OwnerID:         userID,
	}
	if err := s.boards.Create(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *BoardService) Delete(ctx context.Context, userID, boardID uuid.UUID) error {
	if _, err := ownedBoard(ctx, s.boards, userID, boardID); err != nil {
		return err
	}
	return s.boards.Delete(ctx, boardID)
}

// ownedBoard loads a board and checks that userID owns it.
func ownedBoard(ctx context.Context, boards repository.BoardRepositoryInterface, userID, boardID uuid.UUID) (*model.Board, error) {
	board, err := boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board.OwnerID != userID {
		return nil, ErrForbidden
	}
	return board, nil
}
