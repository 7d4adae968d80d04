package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeStore_Seen_UnmarkedEvent(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupeStore(client)
	ctx := context.Background()

	seen, err := store.Seen(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, seen, "an event never marked is not seen")
}

func TestDedupeStore_MarkSeen_ThenSeen(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupeStore(client)
	ctx := context.Background()

	require.NoError(t, store.MarkSeen(ctx, "evt_2", 24*time.Hour))

	seen, err := store.Seen(ctx, "evt_2")
	require.NoError(t, err)
	assert.True(t, seen, "a marked event is reported on redelivery")
}

func TestDedupeStore_DistinctEvents(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupeStore(client)
	ctx := context.Background()

	require.NoError(t, store.MarkSeen(ctx, "evt_3", 24*time.Hour))

	seen, err := store.Seen(ctx, "evt_4")
	require.NoError(t, err)
	assert.False(t, seen, "a different event id is not a duplicate")
}

func TestDedupeStore_MarkerExpires(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDedupeStore(client)
	ctx := context.Background()

	require.NoError(t, store.MarkSeen(ctx, "evt_5", 1*time.Second))

	// Past the retention window the cache forgets; the database ledger still
	// rejects the replay.
	s.FastForward(2 * time.Second)

	seen, err := store.Seen(ctx, "evt_5")
	require.NoError(t, err)
	assert.False(t, seen)
}
