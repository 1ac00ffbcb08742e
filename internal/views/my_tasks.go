package views

import (
	"context"

	"taskboard/internal/api"
	"taskboard/internal/notify"

	"go.uber.org/zap"
)

type MyTasks struct {
	api      API
	notifier notify.Notifier
	logger   *zap.Logger
}

func NewMyTasks(a API, n notify.Notifier, logger *zap.Logger) *MyTasks {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MyTasks{api: a, notifier: n, logger: logger}
}

// Load returns every card on the caller's boards, earliest due date first.
func (p *MyTasks) Load(ctx context.Context) ([]api.Card, error) {
	cards, err := p.api.MyTasks(ctx)
	if err != nil {
		p.logger.Debug("failed to fetch tasks", zap.Error(err))
		p.notifier.Error("Failed to load tasks")
		return []api.Card{}, err
	}
	return cards, nil
}
