package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/starquest/internal/achievements"
	"github.com/abhisek/starquest/internal/directory"
	"github.com/abhisek/starquest/internal/leaderboard"
	"github.com/abhisek/starquest/internal/profile"
	"github.com/abhisek/starquest/internal/store"
)

// Achievements returns the full table with the active profile's unlock
// state, in table order.
func (a *App) Achievements() ([]achievements.Status, error) {
	p, err := a.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return a.eval.Progress(p), nil
}

// Search finds other profiles by name or handle.
func (a *App) Search(ctx context.Context, query string) ([]profile.UserProfile, error) {
	return directory.Search(ctx, a.repo, query, a.store.ID())
}

// Friends resolves the active profile's friend list.
func (a *App) Friends(ctx context.Context) ([]profile.UserProfile, error) {
	return a.related(ctx, directory.Friends)
}

// IncomingRequests resolves the profiles asking to be friends.
func (a *App) IncomingRequests(ctx context.Context) ([]profile.UserProfile, error) {
	return a.related(ctx, directory.IncomingRequests)
}

// OutgoingRequests resolves the profiles the active profile asked.
func (a *App) OutgoingRequests(ctx context.Context) ([]profile.UserProfile, error) {
	return a.related(ctx, directory.OutgoingRequests)
}

func (a *App) related(ctx context.Context, pick func(all []profile.UserProfile, p profile.UserProfile) []profile.UserProfile) ([]profile.UserProfile, error) {
	p, err := a.store.Snapshot()
	if err != nil {
		return nil, err
	}
	all, err := a.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return pick(all, p), nil
}

// Leaderboard returns the n best-rated profiles.
func (a *App) Leaderboard(ctx context.Context, n int) ([]leaderboard.Entry, error) {
	return a.board.Top(ctx, n)
}

// Rank returns the active profile's 1-based leaderboard position, or 0 when
// it is not ranked.
func (a *App) Rank(ctx context.Context) (int, error) {
	rank, err := a.board.Rank(ctx, a.store.ID())
	if errors.Is(err, leaderboard.ErrNotRanked) {
		return 0, nil
	}
	return rank, err
}

// History returns the newest activity log entries for the active profile.
// Without an activity log it returns nothing.
func (a *App) History(ctx context.Context, limit int) ([]store.Activity, error) {
	if a.events == nil {
		return nil, nil
	}
	return a.events.Recent(ctx, a.store.ID(), limit)
}
