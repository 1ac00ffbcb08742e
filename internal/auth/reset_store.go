package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const resetKeyPrefix = "password_reset:"

var ErrResetTokenInvalid = errors.New("invalid or expired reset token")

// KV is the subset of the redis cache the reset store needs.
type KV interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// GetDel atomically reads and removes key. A missing key reads as nil, nil.
	GetDel(ctx context.Context, key string) ([]byte, error)
}

// ResetTokenStore keeps single-use password reset tokens.
type ResetTokenStore struct {
	kv  KV
	ttl time.Duration
}

func NewResetTokenStore(kv KV, ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{kv: kv, ttl: ttl}
}

// Issue creates a token for userID.
func (s *ResetTokenStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.kv.Set(ctx, resetKeyPrefix+token, []byte(userID.String()), s.ttl); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return token, nil
}

// Consume returns the user the token was issued for and invalidates it.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrResetTokenInvalid
	}
	raw, err := s.kv.GetDel(ctx, resetKeyPrefix+token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("consume reset token: %w", err)
	}
	if raw == nil {
		return uuid.Nil, ErrResetTokenInvalid
	}

	userID, err := uuid.Parse(string(raw))
	if err != nil {
		return uuid.Nil, ErrResetTokenInvalid
	}
	return userID, nil
}
