package leaderboard

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/starquest/internal/profile"
)

type failingBoard struct{ MemoryBoard }

func (*failingBoard) Upsert(context.Context, Entry) error { return errors.New("down") }

func TestMemoryBoard_Ordering(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBoard()
	require.NoError(t, b.Upsert(ctx, Entry{ProfileID: "1", Handle: "@zed", Rating: 10}))
	require.NoError(t, b.Upsert(ctx, Entry{ProfileID: "2", Handle: "@amy", Rating: 10}))
	require.NoError(t, b.Upsert(ctx, Entry{ProfileID: "3", Handle: "@top", Rating: 50}))

	top, err := b.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"3", "2", "1"}, []string{top[0].ProfileID, top[1].ProfileID, top[2].ProfileID})
	assert.Equal(t, []int{1, 2, 3}, []int{top[0].Rank, top[1].Rank, top[2].Rank})

	top, err = b.Top(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	rank, err := b.Rank(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 3, rank)
}

func TestMemoryBoard_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBoard()
	require.NoError(t, b.Upsert(ctx, Entry{ProfileID: "a", Rating: 1}))
	require.NoError(t, b.Upsert(ctx, Entry{ProfileID: "b", Rating: 5}))
	require.NoError(t, b.Upsert(ctx, Entry{ProfileID: "a", Rating: 9}))

	top, err := b.Top(ctx, -1)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].ProfileID)
	assert.Equal(t, 9, top[0].Rating)
}

func TestMemoryBoard_NotRanked(t *testing.T) {
	_, err := NewMemoryBoard().Rank(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotRanked)
}

func TestRebuildAndSubscriber(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBoard()

	p := profile.New("Anna", "Petrova", "anna")
	p.RatingPoints = 7
	require.NoError(t, Rebuild(ctx, b, []profile.UserProfile{*p}))

	top, err := b.Top(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Anna Petrova", top[0].DisplayName)
	assert.Equal(t, "@anna", top[0].Handle)

	p.RatingPoints = 12
	Subscriber(b, nil)(profile.Event{ProfileID: p.ID, Snapshot: p.Clone()})
	top, err = b.Top(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, top[0].Rating)
}

func TestRebuild_PropagatesError(t *testing.T) {
	p := profile.New("A", "", "a")
	err := Rebuild(context.Background(), &failingBoard{}, []profile.UserProfile{*p})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "down")
}

func TestRedisBoard(t *testing.T) {
	addr := os.Getenv("STARQUEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STARQUEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	prefix := "starquest:test:" + t.Name() + ":"
	t.Cleanup(func() {
		client.Del(ctx, prefix+ratingSuffix, prefix+metaSuffix)
		client.Close()
	})

	b := NewRedisBoard(client, prefix)
	require.NoError(t, b.Upsert(ctx, Entry{ProfileID: "p1", Handle: "@one", DisplayName: "One", Rating: 5}))
	require.NoError(t, b.Upsert(ctx, Entry{ProfileID: "p2", Handle: "@two", DisplayName: "Two", Rating: 20}))

	top, err := b.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p2", top[0].ProfileID)
	assert.Equal(t, "@two", top[0].Handle)
	assert.Equal(t, 20, top[0].Rating)

	rank, err := b.Rank(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	_, err = b.Rank(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotRanked)
}
