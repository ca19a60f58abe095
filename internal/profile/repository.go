package profile

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// Repository persists profile snapshots keyed by profile id.
type Repository interface {
	// Save durably stores the snapshot, replacing any previous one.
	Save(ctx context.Context, p UserProfile) error

	// Get returns the most recent snapshot for id, or nil if never stored.
	Get(ctx context.Context, id string) (*UserProfile, error)

	// List returns every stored profile.
	List(ctx context.Context) ([]UserProfile, error)
}

// Load returns the stored profile for id. A missing profile or a failed read
// yields (nil, false); read failures are logged, not returned.
func Load(ctx context.Context, repo Repository, id string, logger *slog.Logger) (*UserProfile, bool) {
	if repo == nil || id == "" {
		return nil, false
	}
	if logger == nil {
		logger = slog.Default()
	}
	p, err := repo.Get(ctx, id)
	if err != nil {
		logger.Warn("load profile failed", "profile_id", id, "error", err)
		return nil, false
	}
	if p == nil {
		return nil, false
	}
	return p, true
}

// MemoryRepository keeps snapshots in memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]UserProfile
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[string]UserProfile)}
}

func (r *MemoryRepository) Save(_ context.Context, p UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p.Clone()
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	c := p.Clone()
	return &c, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]UserProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
