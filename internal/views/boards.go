package views

import (
	"context"
	"slices"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/forms"
	"taskboard/internal/notify"

	"go.uber.org/zap"
)

type BoardsPage struct {
	api      API
	notifier notify.Notifier
	logger   *zap.Logger
	boards   []api.Board
}

func NewBoardsPage(a API, n notify.Notifier, logger *zap.Logger) *BoardsPage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardsPage{api: a, notifier: n, logger: logger}
}

func (p *BoardsPage) Boards() []api.Board {
	return slices.Clone(p.boards)
}

func (p *BoardsPage) Load(ctx context.Context) error {
	boards, err := p.api.Boards(ctx)
	if err != nil {
		p.boards = []api.Board{}
		p.logger.Debug("failed to fetch boards", zap.Error(err))
		p.notifier.Error("Failed to load boards")
		return err
	}
	p.boards = boards
	return nil
}

// Create validates the title and puts the new board first.
func (p *BoardsPage) Create(ctx context.Context, title, description, backgroundColor string) (*api.Board, error) {
	title, err := forms.BoardTitle(title)
	if err != nil {
		p.notifier.Error(err.Error())
		return nil, err
	}
	board, err := p.api.CreateBoard(ctx, title, strings.TrimSpace(description), strings.TrimSpace(backgroundColor))
	if err != nil {
		p.notifier.Error(failure(err, "Failed to create board"))
		return nil, err
	}
	p.boards = append([]api.Board{*board}, p.boards...)
	p.notifier.Success("Board created successfully!")
	return board, nil
}

func (p *BoardsPage) Delete(ctx context.Context, boardID string) error {
	if err := p.api.DeleteBoard(ctx, boardID); err != nil {
		p.notifier.Error(failure(err, "Failed to delete board"))
		return err
	}
	p.boards = slices.DeleteFunc(p.boards, func(b api.Board) bool { return b.ID == boardID })
	p.notifier.Success("Board deleted successfully")
	return nil
}
