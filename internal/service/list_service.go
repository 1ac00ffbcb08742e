package service

import (
	"context"

	"taskboard/internal/forms"
	"taskboard/internal/metrics"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
)

type ListServiceInterface interface {
	ByBoard(ctx context.Context, userID, boardID uuid.UUID) ([]model.List, error)
	Create(ctx context.Context, userID, boardID uuid.UUID, title, description string) (*model.List, error)
	Update(ctx context.Context, userID, listID uuid.UUID, title, description *string) (*model.List, error)
	Delete(ctx context.Context, userID, listID uuid.UUID) error
	Reorder(ctx context.Context, userID, boardID uuid.UUID, orderedIDs []uuid.UUID) error
}

type ListService struct {
	boards  repository.BoardRepositoryInterface
	lists   repository.ListRepositoryInterface
	metrics *metrics.Metrics
}

var _ ListServiceInterface = (*ListService)(nil)

func NewListService(boards repository.BoardRepositoryInterface, lists repository.ListRepositoryInterface, m *metrics.Metrics) *ListService {
	return &ListService{boards: boards, lists: lists, metrics: m}
}

func (s *ListService) ByBoard(ctx context.Context, userID, boardID uuid.UUID) ([]model.List, error) {
	if _, err := ownedBoard(ctx, s.boards, userID, boardID); err != nil {
		return nil, err
	}
	return s.lists.GetByBoardID(ctx, boardID)
}

func (s *ListService) Create(ctx context.Context, userID, boardID uuid.UUID, title, description string) (*model.List, error) {
	title, err := forms.ListTitle(title)
	if err != nil {
		return nil, invalid(err)
	}
	if _, err := ownedBoard(ctx, s.boards, userID, boardID); err != nil {
		return nil, err
	}

	list := &model.List{
		ID:          uuid.New(),
		BoardID:     boardID,
		Title:       title,
		Description: description,
	}
	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ListService) Update(ctx context.Context, userID, listID uuid.UUID, title, description *string) (*model.List, error) {
	list, err := s.ownedList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		t, err := forms.ListTitle(*title)
		if err != nil {
			return nil, invalid(err)
		}
		list.Title = t
	}
	if description != nil {
		list.Description = *description
	}

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ListService) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}
	return s.lists.Delete(ctx, listID)
}

func (s *ListService) Reorder(ctx context.Context, userID, boardID uuid.UUID, orderedIDs []uuid.UUID) (err error) {
	defer func() { s.metrics.Reorder("lists", err) }()

	if _, err := ownedBoard(ctx, s.boards, userID, boardID); err != nil {
		return err
	}
	return s.lists.Reorder(ctx, boardID, orderedIDs)
}

func (s *ListService) ownedList(ctx context.Context, userID, listID uuid.UUID) (*model.List, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if _, err := ownedBoard(ctx, s.boards, userID, list.BoardID); err != nil {
		return nil, err
	}
	return list, nil
}
