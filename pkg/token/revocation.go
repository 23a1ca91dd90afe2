package token

import (
	"context"
	"time"
)

const revokedKeyPrefix = "revoked_token:"

type kv interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RevocationStore remembers logged-out token ids until they would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type cacheRevocations struct {
	cache kv
	now   func() time.Time
}

// NewRevocationStore keeps revocations in the given cache, normally *cache.Client.
func NewRevocationStore(cache kv) RevocationStore {
	return &cacheRevocations{cache: cache, now: time.Now}
}

func (s *cacheRevocations) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		// already expired, Verify rejects it on its own
		return nil
	}
	return s.cache.Set(ctx, revokedKeyPrefix+tokenID, []byte("1"), ttl)
}

func (s *cacheRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	data, err := s.cache.Get(ctx, revokedKeyPrefix+tokenID)
	if err != nil {
		return false, err
	}
	return data != nil, nil
}
