// Package leaderboard ranks learners by rating points.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/abhisek/starquest/internal/profile"
)

// ErrNotRanked is returned when a profile has no leaderboard entry.
var ErrNotRanked = errors.New("leaderboard: profile not ranked")

// Entry is one row of the leaderboard.
type Entry struct {
	ProfileID   string `json:"profile_id"`
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name"`
	Rating      int    `json:"rating"`
	Rank        int    `json:"rank"` // 1-based, filled on reads
}

// Board stores rating standings.
type Board interface {
	// Upsert records or replaces the entry for e.ProfileID.
	Upsert(ctx context.Context, e Entry) error

	// Top returns the n highest-rated entries, best first.
	Top(ctx context.Context, n int) ([]Entry, error)

	// Rank returns the 1-based position of profileID, or ErrNotRanked.
	Rank(ctx context.Context, profileID string) (int, error)
}

// EntryFor builds the leaderboard row for p.
func EntryFor(p profile.UserProfile) Entry {
	return Entry{
		ProfileID:   p.ID,
		Handle:      p.Handle,
		DisplayName: p.DisplayName(),
		Rating:      p.RatingPoints,
	}
}

// Rebuild upserts every profile into b.
func Rebuild(ctx context.Context, b Board, profiles []profile.UserProfile) error {
	for _, p := range profiles {
		if err := b.Upsert(ctx, EntryFor(p)); err != nil {
			return fmt.Errorf("upsert %s: %w", p.ID, err)
		}
	}
	return nil
}

// Subscriber keeps b in sync with profile change events. Failures are
// logged; the leaderboard is a derived view and can be rebuilt.
func Subscriber(b Board, logger *slog.Logger) profile.Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ev profile.Event) {
		if err := b.Upsert(context.Background(), EntryFor(ev.Snapshot)); err != nil {
			logger.Warn("leaderboard update failed", "profile_id", ev.ProfileID, "error", err)
		}
	}
}

// MemoryBoard is an in-process Board. Ties are broken by handle.
type MemoryBoard struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryBoard creates an empty board.
func NewMemoryBoard() *MemoryBoard {
	return &MemoryBoard{entries: make(map[string]Entry)}
}

func (b *MemoryBoard) Upsert(_ context.Context, e Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	e.Rank = 0
	b.entries[e.ProfileID] = e
	return nil
}

func (b *MemoryBoard) Top(_ context.Context, n int) ([]Entry, error) {
	ranked := b.ranked()
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

func (b *MemoryBoard) Rank(_ context.Context, profileID string) (int, error) {
	for _, e := range b.ranked() {
		if e.ProfileID == profileID {
			return e.Rank, nil
		}
	}
	return 0, ErrNotRanked
}

func (b *MemoryBoard) ranked() []Entry {
	b.mu.RLock()
	out := make([]Entry, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e)
	}
	b.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		if out[i].Handle != out[j].Handle {
			return out[i].Handle < out[j].Handle
		}
		return out[i].ProfileID < out[j].ProfileID
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
