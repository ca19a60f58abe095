package profile

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrNoProfile is returned when the store holds no profile.
var ErrNoProfile = errors.New("profile: no active profile")

// Hook runs under the mutation lock after every successful mutation.
// Hooks may mutate the profile further (e.g. unlock achievements).
type Hook func(p *UserProfile)

// Store owns the canonical profile for the active user and serializes
// every mutation against it.
type Store struct {
	mu      sync.Mutex
	profile *UserProfile
	repo    Repository
	hooks   []Hook
	logger  *slog.Logger

	subMu   sync.RWMutex
	subs    map[int]Subscriber
	nextSub int

	now func() time.Time
}

// NewStore wraps p. repo may be nil, in which case nothing is persisted.
func NewStore(p *UserProfile, repo Repository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		profile: p,
		repo:    repo,
		logger:  logger,
		subs:    make(map[int]Subscriber),
		now:     time.Now,
	}
}

// ID returns the active profile id, or "" when empty.
func (s *Store) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return ""
	}
	return s.profile.ID
}

// Snapshot returns a deep copy of the current profile.
func (s *Store) Snapshot() (UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return UserProfile{}, ErrNoProfile
	}
	return s.profile.Clone(), nil
}

// AddHook registers h to run after every mutation.
func (s *Store) AddHook(h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

// Subscribe registers fn for change events and returns a function that
// removes it.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// Update applies fn to the profile atomically. If fn returns an error the
// profile must be left untouched by fn; nothing is saved or published.
// On success hooks run, the snapshot is saved and an event is published.
func (s *Store) Update(ctx context.Context, kind EventKind, fn func(p *UserProfile) error) (Event, error) {
	s.mu.Lock()
	if s.profile == nil {
		s.mu.Unlock()
		return Event{}, ErrNoProfile
	}

	unlockedBefore := len(s.profile.UnlockedAchievementIDs)
	if err := fn(s.profile); err != nil {
		s.mu.Unlock()
		return Event{}, err
	}
	for _, h := range s.hooks {
		h(s.profile)
	}

	ev := Event{
		Kind:      kind,
		ProfileID: s.profile.ID,
		Unlocked:  append([]string(nil), s.profile.UnlockedAchievementIDs[unlockedBefore:]...),
		Snapshot:  s.profile.Clone(),
		Timestamp: s.now(),
	}
	s.save(ctx, ev.Snapshot)
	s.mu.Unlock()

	s.publish(ev)
	return ev, nil
}

// Replace swaps in a new profile and publishes kind.
func (s *Store) Replace(ctx context.Context, kind EventKind, p *UserProfile) Event {
	s.mu.Lock()
	s.profile = p
	ev := Event{
		Kind:      kind,
		ProfileID: p.ID,
		Snapshot:  p.Clone(),
		Timestamp: s.now(),
	}
	s.save(ctx, ev.Snapshot)
	s.mu.Unlock()

	s.publish(ev)
	return ev
}

// save must be called with s.mu held so snapshots reach the repository in
// mutation order. Failures leave the in-memory state authoritative.
func (s *Store) save(ctx context.Context, snap UserProfile) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		s.logger.Warn("save profile failed", "profile_id", snap.ID, "error", err)
	}
}

func (s *Store) publish(ev Event) {
	s.subMu.RLock()
	subs := make([]Subscriber, 0, len(s.subs))
	for i := 0; i < s.nextSub; i++ {
		if fn, ok := s.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	s.subMu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}
