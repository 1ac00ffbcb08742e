package service

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/forms"
	"taskboard/internal/metrics"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/google/uuid"
)

type NewCard struct {
	ListID      uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Labels      []string
}

// CardPatch is a partial update. Nil fields are kept. ClearDueDate wins over DueDate.
type CardPatch struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Labels       *[]string
}

type CardServiceInterface interface {
	ByList(ctx context.Context, userID, listID uuid.UUID) ([]model.Card, error)
	Create(ctx context.Context, userID uuid.UUID, in NewCard) (*model.Card, error)
	Update(ctx context.Context, userID, cardID uuid.UUID, patch CardPatch) (*model.Card, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
	Reorder(ctx context.Context, userID, listID uuid.UUID, orderedIDs []uuid.UUID) error
	AddComment(ctx context.Context, userID, cardID uuid.UUID, text string) (*model.Card, error)
	DeleteComment(ctx context.Context, userID, cardID, commentID uuid.UUID) (*model.Card, error)
	MyTasks(ctx context.Context, userID uuid.UUID) ([]model.Card, error)
}

type CardService struct {
	boards   repository.BoardRepositoryInterface
	lists    repository.ListRepositoryInterface
	cards    repository.CardRepositoryInterface
	comments repository.CommentRepositoryInterface
	metrics  *metrics.Metrics
}

var _ CardServiceInterface = (*CardService)(nil)

func NewCardService(
	boards repository.BoardRepositoryInterface,
	lists repository.ListRepositoryInterface,
	cards repository.CardRepositoryInterface,
	comments repository.CommentRepositoryInterface,
	m *metrics.Metrics,
) *CardService {
	return &CardService{boards: boards, lists: lists, cards: cards, comments: comments, metrics: m}
}

func (s *CardService) ByList(ctx context.Context, userID, listID uuid.UUID) ([]model.Card, error) {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return nil, err
	}
	return s.cards.GetByListID(ctx, listID)
}

func (s *CardService) Create(ctx context.Context, userID uuid.UUID, in NewCard) (*model.Card, error) {
	title, err := forms.CardTitle(in.Title)
	if err != nil {
		return nil, invalid(err)
	}
	if _, err := s.ownedList(ctx, userID, in.ListID); err != nil {
		return nil, err
	}

	card := &model.Card{
		ID:          uuid.New(),
		ListID:      in.ListID,
		Title:       title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Labels:      model.NormalizeLabels(in.Labels),
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *CardService) Update(ctx context.Context, userID, cardID uuid.UUID, patch CardPatch) (*model.Card, error) {
	card, err := s.ownedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title, err := forms.EditedCardTitle(*patch.Title)
		if err != nil {
			return nil, invalid(err)
		}
		card.Title = title
	}
	if patch.Description != nil {
		card.Description = *patch.Description
	}
	switch {
	case patch.ClearDueDate:
		card.DueDate = nil
	case patch.DueDate != nil:
		card.DueDate = patch.DueDate
	}
	if patch.Labels != nil {
		card.Labels = model.NormalizeLabels(*patch.Labels)
	}

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return s.cards.GetByID(ctx, cardID)
}

func (s *CardService) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	if _, err := s.ownedCard(ctx, userID, cardID); err != nil {
		return err
	}
	return s.cards.Delete(ctx, cardID)
}

// Reorder makes orderedIDs the content of listID. Ids from other lists of the
// same board move into listID.
func (s *CardService) Reorder(ctx context.Context, userID, listID uuid.UUID, orderedIDs []uuid.UUID) (err error) {
	defer func() { s.metrics.Reorder("cards", err) }()

	list, err := s.ownedList(ctx, userID, listID)
	if err != nil {
		return err
	}
	return s.cards.Reorder(ctx, list.BoardID, listID, orderedIDs)
}

func (s *CardService) AddComment(ctx context.Context, userID, cardID uuid.UUID, text string) (*model.Card, error) {
	text, err := forms.Comment(text)
	if err != nil {
		return nil, invalid(err)
	}
	if _, err := s.ownedCard(ctx, userID, cardID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:       uuid.New(),
		CardID:   cardID,
		AuthorID: userID,
		Text:     text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.cards.GetByID(ctx, cardID)
}

// DeleteComment is allowed to the board owner and to the comment's author.
func (s *CardService) DeleteComment(ctx context.Context, userID, cardID, commentID uuid.UUID) (*model.Card, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.CardID != cardID {
		return nil, repository.ErrCommentNotFound
	}

	if _, err := s.ownedCard(ctx, userID, cardID); err != nil {
		if !errors.Is(err, ErrForbidden) || comment.AuthorID != userID {
			return nil, err
		}
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return nil, err
	}
	return s.cards.GetByID(ctx, cardID)
}

func (s *CardService) MyTasks(ctx context.Context, userID uuid.UUID) ([]model.Card, error) {
	return s.cards.GetByOwner(ctx, userID)
}

func (s *CardService) ownedList(ctx context.Context, userID, listID uuid.UUID) (*model.List, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if _, err := ownedBoard(ctx, s.boards, userID, list.BoardID); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *CardService) ownedCard(ctx context.Context, userID, cardID uuid.UUID) (*model.Card, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedList(ctx, userID, card.ListID); err != nil {
		return nil, err
	}
	return card, nil
}
