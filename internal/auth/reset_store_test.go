package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"taskboard/internal/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
	err  error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryKV) GetDel(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	v := m.data[key]
	delete(m.data, key)
	return v, nil
}

func (m *memoryKV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func TestResetTokenStore_IssueAndConsume(t *testing.T) {
	kv := newMemoryKV()
	store := auth.NewResetTokenStore(kv, time.Hour)
	userID := uuid.New()

	token, err := store.Issue(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.Equal(t, time.Hour, kv.ttls["password_reset:"+token])

	got, err := store.Consume(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	// single use
	_, err = store.Consume(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrResetTokenInvalid)
}

func TestResetTokenStore_ConcurrentConsume(t *testing.T) {
	store := auth.NewResetTokenStore(newMemoryKV(), time.Hour)
	token, err := store.Issue(context.Background(), uuid.New())
	require.NoError(t, err)

	const consumers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	start := make(chan struct{})
	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := store.Consume(context.Background(), token); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestResetTokenStore_UnknownToken(t *testing.T) {
	store := auth.NewResetTokenStore(newMemoryKV(), time.Hour)

	_, err := store.Consume(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, auth.ErrResetTokenInvalid)

	_, err = store.Consume(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrResetTokenInvalid)
}

func TestResetTokenStore_BackendError(t *testing.T) {
	kv := newMemoryKV()
	kv.err = errors.New("connection refused")
	store := auth.NewResetTokenStore(kv, time.Hour)

	_, err := store.Issue(context.Background(), uuid.New())
	assert.ErrorContains(t, err, "connection refused")

	_, err = store.Consume(context.Background(), "deadbeef")
	assert.ErrorContains(t, err, "connection refused")
	assert.NotErrorIs(t, err, auth.ErrResetTokenInvalid)
}
