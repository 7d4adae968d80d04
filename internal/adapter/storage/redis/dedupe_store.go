package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DedupeStore implements ports.DedupeCache. It is the fast path ahead of the
// database ledger; neither a hit nor a miss here is authoritative on its own,
// markers are written only for events the ledger has accepted.
type DedupeStore struct {
	client *goredis.Client
	prefix string
}

// NewDedupeStore creates a new Redis-backed dedupe store.
func NewDedupeStore(client *goredis.Client) *DedupeStore {
	return &DedupeStore{
		client: client,
		prefix: "event:",
	}
}

// Seen reports whether a marker exists for the event id.
func (s *DedupeStore) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+eventID).Result()
	if err != nil {
		return false, fmt.Errorf("redis dedupe check: %w", err)
	}
	return n > 0, nil
}

// MarkSeen writes the marker with the given TTL.
func (s *DedupeStore) MarkSeen(ctx context.Context, eventID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+eventID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis dedupe mark: %w", err)
	}
	return nil
}
