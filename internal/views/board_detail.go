package views

import (
	"context"
	"slices"
	"strings"
	"time"

	"taskboard/internal/api"
	"taskboard/internal/dnd"
	"taskboard/internal/forms"
	"taskboard/internal/notify"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const cardFetchConcurrency = 4

// BoardDetail is one board with its lists and their cards. Its state lives in
// the drag controller so drags and edits see the same lists.
type BoardDetail struct {
	boardID  string
	api      API
	notifier notify.Notifier
	logger   *zap.Logger
	drag     *dnd.Controller
}

func NewBoardDetail(boardID string, a API, n notify.Notifier, logger *zap.Logger) *BoardDetail {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardDetail{
		boardID:  boardID,
		api:      a,
		notifier: n,
		logger:   logger,
		drag:     dnd.NewController(boardID, nil, a, n, logger),
	}
}

func (b *BoardDetail) BoardID() string {
	return b.boardID
}

func (b *BoardDetail) Lists() []api.List {
	return b.drag.Lists()
}

// Drag exposes the reorder controller for this board.
func (b *BoardDetail) Drag() *dnd.Controller {
	return b.drag
}

// Load fetches the lists, then every list's cards in parallel. A list whose
// cards cannot be fetched is shown empty.
func (b *BoardDetail) Load(ctx context.Context) error {
	lists, err := b.api.Lists(ctx, b.boardID)
	if err != nil {
		b.logger.Debug("failed to fetch lists", zap.String("board_id", b.boardID), zap.Error(err))
		b.notifier.Error("Failed to load board data")
		b.drag.SetLists(nil)
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cardFetchConcurrency)
	for i := range lists {
		g.Go(func() error {
			cards, err := b.api.Cards(gctx, lists[i].ID)
			if err != nil {
				b.logger.Warn("cards fetch failed", zap.String("list_id", lists[i].ID), zap.Error(err))
				cards = []api.Card{}
			}
			lists[i].Cards = cards
			return nil
		})
	}
	_ = g.Wait()

	b.drag.SetLists(lists)
	return nil
}

func (b *BoardDetail) mutate(fn func([]api.List) []api.List) {
	b.drag.SetLists(fn(b.drag.Lists()))
}

func (b *BoardDetail) AddList(ctx context.Context, title, description string) (*api.List, error) {
	title, err := forms.ListTitle(title)
	if err != nil {
		b.notifier.Error(err.Error())
		return nil, err
	}
	list, err := b.api.CreateList(ctx, b.boardID, title, strings.TrimSpace(description))
	if err != nil {
		b.notifier.Error(failure(err, "Failed to create list"))
		return nil, err
	}
	if list.Cards == nil {
		list.Cards = []api.Card{}
	}
	b.mutate(func(lists []api.List) []api.List { return append(lists, *list) })
	b.notifier.Success("List created successfully!")
	return list, nil
}

// EditList saves a new title and description and keeps the list's cards.
func (b *BoardDetail) EditList(ctx context.Context, listID, title, description string) (*api.List, error) {
	title, err := forms.ListTitle(title)
	if err != nil {
		b.notifier.Error(err.Error())
		return nil, err
	}
	description = strings.TrimSpace(description)
	updated, err := b.api.UpdateList(ctx, listID, api.UpdateListRequest{Title: &title, Description: &description})
	if err != nil {
		b.notifier.Error(failure(err, "Failed to update list"))
		return nil, err
	}
	b.mutate(func(lists []api.List) []api.List {
		for i := range lists {
			if lists[i].ID == listID {
				cards := lists[i].Cards
				lists[i] = *updated
				lists[i].Cards = cards
			}
		}
		return lists
	})
	b.notifier.Success("List updated successfully!")
	return updated, nil
}

func (b *BoardDetail) DeleteList(ctx context.Context, listID string) error {
	if err := b.api.DeleteList(ctx, listID); err != nil {
		b.notifier.Error(failure(err, "Failed to delete list"))
		return err
	}
	b.mutate(func(lists []api.List) []api.List {
		return slices.DeleteFunc(lists, func(l api.List) bool { return l.ID == listID })
	})
	b.notifier.Success("List deleted successfully")
	return nil
}

func (b *BoardDetail) AddCard(ctx context.Context, listID, title, description string) (*api.Card, error) {
	title, err := forms.CardTitle(title)
	if err == nil && listID == "" {
		err = forms.ErrCardTitleRequired
	}
	if err != nil {
		b.notifier.Error(err.Error())
		return nil, err
	}
	card, err := b.api.CreateCard(ctx, api.CreateCardRequest{
		ListID:      listID,
		Title:       title,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		b.notifier.Error(failure(err, "Failed to create card"))
		return nil, err
	}
	b.mutate(func(lists []api.List) []api.List {
		for i := range lists {
			if lists[i].ID == listID {
				lists[i].Cards = append(lists[i].Cards, *card)
			}
		}
		return lists
	})
	b.notifier.Success("Card created successfully!")
	return card, nil
}

func (b *BoardDetail) replaceCard(card api.Card) {
	b.mutate(func(lists []api.List) []api.List {
		for i := range lists {
			for j := range lists[i].Cards {
				if lists[i].Cards[j].ID == card.ID {
					lists[i].Cards[j] = card
				}
			}
		}
		return lists
	})
}

// EditCard is the quick edit of title and description.
func (b *BoardDetail) EditCard(ctx context.Context, cardID, title, description string) (*api.Card, error) {
	title, err := forms.CardTitle(title)
	if err != nil {
		b.notifier.Error(err.Error())
		return nil, err
	}
	description = strings.TrimSpace(description)
	card, err := b.api.UpdateCard(ctx, cardID, api.UpdateCardRequest{Title: &title, Description: &description})
	if err != nil {
		b.notifier.Error(failure(err, "Failed to update card"))
		return nil, err
	}
	b.replaceCard(*card)
	b.notifier.Success("Card updated successfully!")
	return card, nil
}

// CardDetail is the full card editor form. A nil DueDate clears the date.
type CardDetail struct {
	Title       string
	Description string
	DueDate     *time.Time
	Labels      []string
}

func (b *BoardDetail) SaveCardDetail(ctx context.Context, cardID string, d CardDetail) (*api.Card, error) {
	title, err := forms.EditedCardTitle(d.Title)
	if err != nil {
		b.notifier.Error(err.Error())
		return nil, err
	}
	description := strings.TrimSpace(d.Description)
	labels := d.Labels
	if labels == nil {
		labels = []string{}
	}
	req := api.UpdateCardRequest{
		Title:       &title,
		Description: &description,
		DueDate:     api.ClearDueDate(),
		Labels:      &labels,
	}
	if d.DueDate != nil {
		req.DueDate = api.SetDueDate(*d.DueDate)
	}

	card, err := b.api.UpdateCard(ctx, cardID, req)
	if err != nil {
		b.notifier.Error(failure(err, "Failed to update card"))
		return nil, err
	}
	b.replaceCard(*card)
	b.notifier.Success("Card updated successfully!")
	return card, nil
}

// DeleteCard removes the card locally once the server confirms.
func (b *BoardDetail) DeleteCard(ctx context.Context, cardID string) error {
	if err := b.api.DeleteCard(ctx, cardID); err != nil {
		b.notifier.Error(failure(err, "Failed to delete card"))
		return err
	}
	b.mutate(func(lists []api.List) []api.List {
		for i := range lists {
			lists[i].Cards = slices.DeleteFunc(lists[i].Cards, func(c api.Card) bool { return c.ID == cardID })
		}
		return lists
	})
	b.notifier.Success("Card deleted successfully")
	return nil
}

func (b *BoardDetail) AddComment(ctx context.Context, cardID, text string) (*api.Card, error) {
	text, err := forms.Comment(text)
	if err != nil {
		b.notifier.Error(err.Error())
		return nil, err
	}
	card, err := b.api.AddComment(ctx, cardID, text)
	if err != nil {
		b.notifier.Error(failure(err, "Failed to add comment"))
		return nil, err
	}
	b.replaceCard(*card)
	b.notifier.Success("Comment added!")
	return card, nil
}

func (b *BoardDetail) DeleteComment(ctx context.Context, cardID, commentID string) (*api.Card, error) {
	card, err := b.api.DeleteComment(ctx, cardID, commentID)
	if err != nil {
		b.notifier.Error(failure(err, "Failed to delete comment"))
		return nil, err
	}
	b.replaceCard(*card)
	b.notifier.Success("Comment deleted successfully!")
	return card, nil
}

// FindCard returns the card with id and the list holding it.
func (b *BoardDetail) FindCard(cardID string) (api.Card, string, bool) {
	for _, l := range b.drag.Lists() {
		for _, c := range l.Cards {
			if c.ID == cardID {
				return c, l.ID, true
			}
		}
	}
	return api.Card{}, "", false
}
