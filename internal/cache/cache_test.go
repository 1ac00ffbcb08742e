package cache_test

import (
	"context"
	"net"
	"testing"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ auth.KV = (*cache.Client)(nil)

// closedAddr returns an address nothing listens on.
func closedAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestClient_UnreachableServer(t *testing.T) {
	c := cache.New(closedAddr(t), "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))
	_, err := c.Get(ctx, "password_reset:abc")
	assert.Error(t, err)
	_, err = c.GetDel(ctx, "password_reset:abc")
	assert.Error(t, err)
	assert.Error(t, c.Set(ctx, "k", []byte("v"), time.Minute))
}
