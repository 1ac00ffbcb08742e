// Package dnd implements drag-and-drop reordering of lists and cards on a
// board: optimistic local moves, persisted on drop, reverted on failure.
package dnd

import (
	"context"
	"errors"
	"slices"
	"sync"

	"taskboard/internal/api"
	"taskboard/internal/notify"

	"go.uber.org/zap"
)

var (
	ErrUnknownItem     = errors.New("unknown list or card")
	ErrAlreadyDragging = errors.New("a drag is already in progress")
	ErrNotDragging     = errors.New("no drag in progress")
)

const (
	msgCardsSaved    = "Cards reordered successfully"
	msgListsSaved    = "Lists reordered successfully"
	msgCardsReverted = "Failed to save card order — reverted"
	msgListsReverted = "Failed to save list order — reverted"
)

// Persister saves a new order on the server.
type Persister interface {
	ReorderLists(ctx context.Context, boardID string, listIDs []string) error
	ReorderCards(ctx context.Context, listID string, cardIDs []string) error
}

type Phase int

const (
	Idle Phase = iota
	Dragging
)

// Outcome says what a drop did.
type Outcome int

const (
	Unchanged Outcome = iota
	ListsReordered
	CardsReordered
	Reverted
)

type Controller struct {
	mu       sync.Mutex
	boardID  string
	lists    []api.List
	snapshot []api.List
	active   string
	phase    Phase

	persist  Persister
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewController(boardID string, lists []api.List, p Persister, n notify.Notifier, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		boardID:  boardID,
		lists:    cloneLists(lists),
		persist:  p,
		notifier: n,
		logger:   logger,
	}
}

func cloneLists(in []api.List) []api.List {
	out := make([]api.List, len(in))
	for i, l := range in {
		out[i] = l
		out[i].Cards = slices.Clone(l.Cards)
	}
	return out
}

// Lists returns a copy of the current, possibly speculative, board state.
func (c *Controller) Lists() []api.List {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneLists(c.lists)
}

// SetLists replaces the board state after a create, edit or delete.
func (c *Controller) SetLists(lists []api.List) {
	c.mu.Lock()
	c.lists = cloneLists(lists)
	c.mu.Unlock()
}

func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Controller) ActiveID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Controller) isList(id string) bool {
	return c.listIndex(id) >= 0
}

func (c *Controller) listIndex(id string) int {
	return slices.IndexFunc(c.lists, func(l api.List) bool { return l.ID == id })
}

func cardIndex(cards []api.Card, id string) int {
	return slices.IndexFunc(cards, func(card api.Card) bool { return card.ID == id })
}

// container returns the index of the list that is id or holds the card id.
func (c *Controller) container(id string) int {
	if i := c.listIndex(id); i >= 0 {
		return i
	}
	return slices.IndexFunc(c.lists, func(l api.List) bool { return cardIndex(l.Cards, id) >= 0 })
}

// Start begins dragging a list or a card and snapshots the board.
func (c *Controller) Start(activeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == Dragging {
		return ErrAlreadyDragging
	}
	if c.container(activeID) < 0 {
		return ErrUnknownItem
	}
	c.snapshot = cloneLists(c.lists)
	c.active = activeID
	c.phase = Dragging
	return nil
}

// Over moves a dragged card into the hovered list. below reports that the
// card is past the bottom edge of the hovered card. Lists are only moved on
// drop.
func (c *Controller) Over(activeID, overID string, below bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != Dragging || overID == "" || c.isList(activeID) {
		return
	}
	from := c.container(activeID)
	to := c.container(overID)
	if from < 0 || to < 0 || from == to {
		return
	}

	source := c.lists[from].Cards
	target := c.lists[to].Cards
	idx := cardIndex(source, activeID)
	card := source[idx]

	insertAt := len(target)
	if overIdx := cardIndex(target, overID); overIdx >= 0 {
		insertAt = overIdx
		if below {
			insertAt++
		}
	}

	c.lists[from].Cards = slices.Delete(slices.Clone(source), idx, idx+1)
	c.lists[to].Cards = slices.Insert(slices.Clone(target), insertAt, card)
}

// Cancel abandons the drag and restores the board as it was at Start.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restore()
}

func (c *Controller) restore() {
	if c.snapshot != nil {
		c.lists = c.snapshot
	}
	c.reset()
}

func (c *Controller) reset() {
	c.snapshot = nil
	c.active = ""
	c.phase = Idle
}

// End drops the dragged item on overID and persists the new order. An empty
// overID cancels the drag. On a failed save the board reverts to the
// snapshot taken at Start and the error is returned.
func (c *Controller) End(ctx context.Context, activeID, overID string) (Outcome, error) {
	c.mu.Lock()
	if c.phase != Dragging {
		c.mu.Unlock()
		return Unchanged, ErrNotDragging
	}
	if overID == "" {
		c.restore()
		c.mu.Unlock()
		return Unchanged, nil
	}
	from := c.container(activeID)
	to := c.container(overID)
	if from < 0 || to < 0 {
		c.restore()
		c.mu.Unlock()
		return Unchanged, nil
	}

	if c.isList(activeID) {
		return c.endList(ctx, from, to)
	}
	return c.endCard(ctx, activeID, overID, from, to)
}

// endList is called with c.mu held.
func (c *Controller) endList(ctx context.Context, from, to int) (Outcome, error) {
	if from == to {
		c.reset()
		c.mu.Unlock()
		return Unchanged, nil
	}
	moved := c.lists[from]
	next := slices.Delete(slices.Clone(c.lists), from, from+1)
	next = slices.Insert(next, to, moved)
	c.lists = next

	ids := make([]string, len(next))
	for i, l := range next {
		ids[i] = l.ID
	}
	boardID := c.boardID
	snapshot := c.snapshot
	c.reset()
	c.mu.Unlock()

	if err := c.persist.ReorderLists(ctx, boardID, ids); err != nil {
		c.revertTo(snapshot)
		c.notifier.Error(msgListsReverted)
		c.logger.Warn("list reorder failed", zap.String("board_id", boardID), zap.Error(err))
		return Reverted, err
	}
	c.notifier.Success(msgListsSaved)
	return ListsReordered, nil
}

// endCard is called with c.mu held.
func (c *Controller) endCard(ctx context.Context, activeID, overID string, from, to int) (Outcome, error) {
	if from == to {
		cards := c.lists[from].Cards
		oldIdx := cardIndex(cards, activeID)
		if newIdx := cardIndex(cards, overID); newIdx >= 0 && newIdx != oldIdx {
			card := cards[oldIdx]
			next := slices.Delete(slices.Clone(cards), oldIdx, oldIdx+1)
			c.lists[from].Cards = slices.Insert(next, newIdx, card)
		}
	} else {
		// Over was never reported for the target list.
		source := c.lists[from].Cards
		target := c.lists[to].Cards
		idx := cardIndex(source, activeID)
		card := source[idx]
		insertAt := len(target)
		if overIdx := cardIndex(target, overID); overIdx >= 0 {
			insertAt = overIdx
		}
		c.lists[from].Cards = slices.Delete(slices.Clone(source), idx, idx+1)
		c.lists[to].Cards = slices.Insert(slices.Clone(target), insertAt, card)
	}

	target := c.lists[to]
	ids := make([]string, len(target.Cards))
	for i, card := range target.Cards {
		ids[i] = card.ID
	}
	snapshot := c.snapshot
	unchanged := slices.Equal(ids, cardIDsOf(snapshot, target.ID))
	c.reset()
	c.mu.Unlock()

	if unchanged {
		return Unchanged, nil
	}

	if err := c.persist.ReorderCards(ctx, target.ID, ids); err != nil {
		c.revertTo(snapshot)
		c.notifier.Error(msgCardsReverted)
		c.logger.Warn("card reorder failed", zap.String("list_id", target.ID), zap.Error(err))
		return Reverted, err
	}
	c.notifier.Success(msgCardsSaved)
	return CardsReordered, nil
}

func (c *Controller) revertTo(snapshot []api.List) {
	if snapshot == nil {
		return
	}
	c.mu.Lock()
	c.lists = snapshot
	c.mu.Unlock()
}

func cardIDsOf(lists []api.List, listID string) []string {
	for _, l := range lists {
		if l.ID == listID {
			ids := make([]string, len(l.Cards))
			for i, card := range l.Cards {
				ids[i] = card.ID
			}
			return ids
		}
	}
	return nil
}
