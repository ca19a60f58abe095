// Package app assembles the engine: it owns the active profile store and
// wires the catalog, reward rules, achievements, shop, leaderboard,
// activity log and metrics around it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/abhisek/starquest/internal/accessories"
	"github.com/abhisek/starquest/internal/achievements"
	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/leaderboard"
	"github.com/abhisek/starquest/internal/metrics"
	"github.com/abhisek/starquest/internal/profile"
	"github.com/abhisek/starquest/internal/store"
)

var (
	// ErrNotFound wraps lookups of unknown lessons, accessories and profiles.
	ErrNotFound = errors.New("not found")

	// ErrHandleTaken is returned when another profile already uses a handle.
	ErrHandleTaken = errors.New("handle already taken")
)

// Default identity for a profile created on first run.
const (
	DefaultFirstName = "Learner"
	DefaultHandle    = "learner"
)

// Options configures New. Every collaborator is optional.
type Options struct {
	// Repository persists profiles. Defaults to an in-memory repository.
	Repository profile.Repository

	// ProfileID selects the active profile. When empty the oldest stored
	// profile is used, or a new one is created.
	ProfileID string

	// Identity used when a new profile has to be created.
	FirstName string
	LastName  string
	Handle    string

	Catalog   *catalog.Catalog        // defaults to the built-in lessons
	Evaluator *achievements.Evaluator // defaults to the built-in table
	Shop      *accessories.Catalog    // defaults to the built-in accessories
	Board     leaderboard.Board       // defaults to an in-memory board
	Events    store.EventRepo         // nil disables the activity log
	Metrics   *metrics.Metrics        // nil disables metrics
	Logger    *slog.Logger
	Now       func() time.Time
}

// App is the engine for one active profile.
type App struct {
	store   *profile.Store
	repo    profile.Repository
	catalog *catalog.Catalog
	eval    *achievements.Evaluator
	shop    *accessories.Catalog
	board   leaderboard.Board
	events  store.EventRepo
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time

	unsubscribe []func()
}

// New builds the engine and loads (or creates) the active profile.
func New(ctx context.Context, opts Options) (*App, error) {
	a := &App{
		repo:    opts.Repository,
		catalog: opts.Catalog,
		eval:    opts.Evaluator,
		shop:    opts.Shop,
		board:   opts.Board,
		events:  opts.Events,
		metrics: opts.Metrics,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if a.repo == nil {
		a.repo = profile.NewMemoryRepository()
	}
	if a.catalog == nil {
		a.catalog = catalog.Default()
	}
	if a.eval == nil {
		a.eval = achievements.Default()
	}
	if a.shop == nil {
		a.shop = accessories.DefaultCatalog()
	}
	if a.board == nil {
		a.board = leaderboard.NewMemoryBoard()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.now == nil {
		a.now = time.Now
	}

	p, created, err := a.resolveProfile(ctx, opts)
	if err != nil {
		return nil, err
	}

	a.store = profile.NewStore(p, observedRepo{Repository: a.repo, metrics: a.metrics}, a.logger)
	a.store.AddHook(a.eval.Hook())
	a.unsubscribe = append(a.unsubscribe,
		a.store.Subscribe(leaderboard.Subscriber(a.board, a.logger)),
		a.store.Subscribe(a.recordUnlocks),
	)

	if created {
		a.store.Replace(ctx, profile.EventCreated, p)
		a.logger.Info("profile created", "profile_id", p.ID, "handle", p.Handle)
	}

	if all, err := a.repo.List(ctx); err != nil {
		a.logger.Warn("list profiles failed", "error", err)
	} else if err := leaderboard.Rebuild(ctx, a.board, all); err != nil {
		a.logger.Warn("leaderboard rebuild failed", "error", err)
	}
	return a, nil
}

// Close detaches the app's subscribers from the profile store.
func (a *App) Close() {
	for _, fn := range a.unsubscribe {
		fn()
	}
	a.unsubscribe = nil
}

func (a *App) resolveProfile(ctx context.Context, opts Options) (*profile.UserProfile, bool, error) {
	if opts.ProfileID != "" {
		p, ok := profile.Load(ctx, a.repo, opts.ProfileID, a.logger)
		if !ok {
			return nil, false, fmt.Errorf("profile %q: %w", opts.ProfileID, ErrNotFound)
		}
		return p, false, nil
	}

	all, err := a.repo.List(ctx)
	if err != nil {
		a.logger.Warn("list profiles failed, starting fresh", "error", err)
	}
	if len(all) > 0 {
		sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
		p := all[0]
		return &p, false, nil
	}

	first, handle := opts.FirstName, opts.Handle
	if first == "" {
		first = DefaultFirstName
	}
	if handle == "" {
		handle = DefaultHandle
	}
	p := profile.New(first, opts.LastName, handle)
	p.CreatedAt = a.now()
	return p, true, nil
}

// CreateProfile stores a new profile in repo. The handle must be unused.
func CreateProfile(ctx context.Context, repo profile.Repository, first, last, handle string) (*profile.UserProfile, error) {
	all, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	for _, other := range all {
		if profile.SameHandle(other.Handle, handle) {
			return nil, fmt.Errorf("%s: %w", profile.NormalizeHandle(handle), ErrHandleTaken)
		}
	}
	p := profile.New(first, last, handle)
	if err := repo.Save(ctx, *p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

// Profile returns a snapshot of the active profile.
func (a *App) Profile() (profile.UserProfile, error) {
	return a.store.Snapshot()
}

// Subscribe registers fn for profile change events.
func (a *App) Subscribe(fn profile.Subscriber) func() {
	return a.store.Subscribe(fn)
}

// Catalog returns the lesson catalog.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Shop returns the accessory catalog.
func (a *App) Shop() *accessories.Catalog {
	return a.shop
}

// Rename changes the display name parts and, when handle is not empty, the
// handle. Handles must stay unique across stored profiles.
func (a *App) Rename(ctx context.Context, first, last, handle string) error {
	if handle != "" {
		all, err := a.repo.List(ctx)
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		self := a.store.ID()
		for _, other := range all {
			if other.ID != self && profile.SameHandle(other.Handle, handle) {
				return fmt.Errorf("%s: %w", profile.NormalizeHandle(handle), ErrHandleTaken)
			}
		}
	}
	_, err := a.store.Update(ctx, profile.EventIdentityChanged, func(p *profile.UserProfile) error {
		p.FirstName = first
		p.LastName = last
		if handle != "" {
			p.SetHandle(handle)
		}
		return nil
	})
	return err
}

// SetPrivacy replaces the privacy flags.
func (a *App) SetPrivacy(ctx context.Context, privacy profile.Privacy) error {
	_, err := a.store.Update(ctx, profile.EventPrivacyChanged, func(p *profile.UserProfile) error {
		p.Privacy = privacy
		return nil
	})
	return err
}

// recordUnlocks logs and counts achievements unlocked by any mutation.
func (a *App) recordUnlocks(ev profile.Event) {
	if len(ev.Unlocked) == 0 {
		return
	}
	a.metrics.Unlocked(ev.Unlocked...)
	for _, ach := range a.eval.Resolve(ev.Unlocked) {
		a.logger.Info("achievement unlocked", "profile_id", ev.ProfileID, "achievement", ach.ID, "name", ach.Name)
		a.appendActivity(context.Background(), store.Activity{
			ProfileID: ev.ProfileID,
			Kind:      store.ActivityAchievement,
			Subject:   string(ach.ID),
			Timestamp: ev.Timestamp,
		})
	}
}

// appendActivity writes to the activity log when one is configured.
// Failures are logged; the log is informational.
func (a *App) appendActivity(ctx context.Context, act store.Activity) {
	if a.events == nil {
		return
	}
	if _, err := a.events.Append(ctx, act); err != nil {
		a.logger.Warn("activity log append failed", "kind", act.Kind, "error", err)
	}
}

// observedRepo counts failed saves before the profile store logs them.
type observedRepo struct {
	profile.Repository
	metrics *metrics.Metrics
}

func (r observedRepo) Save(ctx context.Context, p profile.UserProfile) error {
	err := r.Repository.Save(ctx, p)
	if err != nil {
		r.metrics.SaveFailed()
	}
	return err
}
