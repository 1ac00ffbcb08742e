// Package notify keeps the short-lived toast notifications shown to the user.
package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultDuration = 4 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindLoading Kind = "loading"
)

type Toast struct {
	ID        int
	Kind      Kind
	Message   string
	CreatedAt time.Time
	// Duration is zero for loading toasts, which stay until dismissed.
	Duration time.Duration
}

func (t Toast) Expired(now time.Time) bool {
	return t.Duration > 0 && !now.Before(t.CreatedAt.Add(t.Duration))
}

// Notifier is the part of Center the page controllers depend on.
type Notifier interface {
	Success(message string) int
	Error(message string) int
}

type Center struct {
	mu       sync.Mutex
	toasts   []Toast
	nextID   int
	duration time.Duration
	now      func() time.Time
	logger   *zap.Logger
	sink     func(Toast)
}

type Option func(*Center)

func WithDuration(d time.Duration) Option {
	return func(c *Center) { c.duration = d }
}

func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// WithSink registers a callback invoked for every new toast.
func WithSink(sink func(Toast)) Option {
	return func(c *Center) { c.sink = sink }
}

func NewCenter(logger *zap.Logger, opts ...Option) *Center {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Center{
		duration: DefaultDuration,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Center) Success(message string) int {
	return c.push(KindSuccess, message, c.duration)
}

func (c *Center) Error(message string) int {
	return c.push(KindError, message, c.duration)
}

func (c *Center) Loading(message string) int {
	if message == "" {
		message = "Loading..."
	}
	return c.push(KindLoading, message, 0)
}

func (c *Center) push(kind Kind, message string, d time.Duration) int {
	c.mu.Lock()
	c.nextID++
	t := Toast{
		ID:        c.nextID,
		Kind:      kind,
		Message:   message,
		CreatedAt: c.now(),
		Duration:  d,
	}
	c.toasts = append(c.toasts, t)
	sink := c.sink
	c.mu.Unlock()

	fields := []zap.Field{zap.Int("toast_id", t.ID), zap.String("kind", string(kind))}
	if kind == KindError {
		c.logger.Warn(message, fields...)
	} else {
		c.logger.Info(message, fields...)
	}
	if sink != nil {
		sink(t)
	}
	return t.ID
}

func (c *Center) Dismiss(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}

func (c *Center) DismissAll() {
	c.mu.Lock()
	c.toasts = nil
	c.mu.Unlock()
}

// Active returns the toasts still visible at now, oldest first, and drops
// the expired ones.
func (c *Center) Active(now time.Time) []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
	out := make([]Toast, len(kept))
	copy(out, kept)
	return out
}

type PromiseMessages struct {
	Loading string
	Success string
	Error   string
}

func (m PromiseMessages) withDefaults() PromiseMessages {
	if m.Loading == "" {
		m.Loading = "Processing..."
	}
	if m.Success == "" {
		m.Success = "Success!"
	}
	if m.Error == "" {
		m.Error = "Something went wrong"
	}
	return m
}

// Promise shows a loading toast while fn runs and replaces it with a
// success or error toast. fn's error is returned unchanged.
func (c *Center) Promise(ctx context.Context, msgs PromiseMessages, fn func(context.Context) error) error {
	msgs = msgs.withDefaults()
	id := c.Loading(msgs.Loading)
	err := fn(ctx)
	c.Dismiss(id)
	if err != nil {
		c.Error(msgs.Error)
		return err
	}
	c.Success(msgs.Success)
	return nil
}
