package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "starquest:leaderboard:"
	ratingSuffix     = "rating"
	metaSuffix       = "meta"
)

// RedisBoard keeps standings in a Redis sorted set so several installations
// can share one leaderboard. Equal ratings are ordered by Redis member order.
type RedisBoard struct {
	client    redis.UniversalClient
	ratingKey string
	metaKey   string
}

// NewRedisBoard uses client with keys under prefix (default
// "starquest:leaderboard:").
func NewRedisBoard(client redis.UniversalClient, prefix string) *RedisBoard {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisBoard{
		client:    client,
		ratingKey: prefix + ratingSuffix,
		metaKey:   prefix + metaSuffix,
	}
}

// Dial connects to addr and verifies the connection.
func Dial(ctx context.Context, addr string) (*RedisBoard, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisBoard(client, ""), nil
}

// Close releases the underlying client.
func (b *RedisBoard) Close() error {
	return b.client.Close()
}

type entryMeta struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
}

func (b *RedisBoard) Upsert(ctx context.Context, e Entry) error {
	meta, err := json.Marshal(entryMeta{Handle: e.Handle, DisplayName: e.DisplayName})
	if err != nil {
		return fmt.Errorf("marshal entry meta: %w", err)
	}

	pipe := b.client.TxPipeline()
	pipe.ZAdd(ctx, b.ratingKey, redis.Z{Score: float64(e.Rating), Member: e.ProfileID})
	pipe.HSet(ctx, b.metaKey, e.ProfileID, string(meta))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("upsert leaderboard entry: %w", err)
	}
	return nil
}

func (b *RedisBoard) Top(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return []Entry{}, nil
	}
	zs, err := b.client.ZRevRangeWithScores(ctx, b.ratingKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	if len(zs) == 0 {
		return []Entry{}, nil
	}

	ids := make([]string, len(zs))
	for i, z := range zs {
		ids[i] = fmt.Sprint(z.Member)
	}
	metas, err := b.client.HMGet(ctx, b.metaKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard meta: %w", err)
	}

	entries := make([]Entry, len(zs))
	for i, z := range zs {
		e := Entry{ProfileID: ids[i], Rating: int(z.Score), Rank: i + 1}
		if raw, ok := metas[i].(string); ok {
			var m entryMeta
			if json.Unmarshal([]byte(raw), &m) == nil {
				e.Handle = m.Handle
				e.DisplayName = m.DisplayName
			}
		}
		entries[i] = e
	}
	return entries, nil
}

func (b *RedisBoard) Rank(ctx context.Context, profileID string) (int, error) {
	rank, err := b.client.ZRevRank(ctx, b.ratingKey, profileID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotRanked
		}
		return 0, fmt.Errorf("read rank: %w", err)
	}
	return int(rank) + 1, nil
}
