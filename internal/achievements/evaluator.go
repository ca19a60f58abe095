package achievements

import (
	"slices"

	"github.com/abhisek/starquest/internal/profile"
)

// Evaluator applies an achievement table to profiles. It holds no state
// besides the table, so one instance can serve every profile.
type Evaluator struct {
	table []Achievement
	byID  map[ID]int
}

// NewEvaluator creates an evaluator over table. Later duplicates of an ID
// are ignored.
func NewEvaluator(table []Achievement) *Evaluator {
	e := &Evaluator{byID: make(map[ID]int, len(table))}
	for _, a := range table {
		if _, dup := e.byID[a.ID]; dup || a.Predicate == nil {
			continue
		}
		e.byID[a.ID] = len(e.table)
		e.table = append(e.table, a)
	}
	return e
}

// Default returns an evaluator over DefaultTable.
func Default() *Evaluator {
	return NewEvaluator(DefaultTable())
}

// Evaluate unlocks every achievement whose predicate now holds and that the
// profile does not already have. Newly unlocked achievements are appended to
// p.UnlockedAchievementIDs in table order and returned. Already-unlocked
// achievements are neither re-evaluated nor returned.
func (e *Evaluator) Evaluate(p *profile.UserProfile) []Achievement {
	var unlocked []Achievement
	for _, a := range e.table {
		if p.UnlockedAchievementIDs.Has(string(a.ID)) {
			continue
		}
		if a.Predicate(p) {
			p.UnlockedAchievementIDs.Add(string(a.ID))
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

// Hook adapts Evaluate for registration on a profile.Store.
func (e *Evaluator) Hook() profile.Hook {
	return func(p *profile.UserProfile) {
		e.Evaluate(p)
	}
}

// Lookup returns the achievement with id.
func (e *Evaluator) Lookup(id ID) (Achievement, bool) {
	i, ok := e.byID[id]
	if !ok {
		return Achievement{}, false
	}
	return e.table[i], true
}

// All returns the table in unlock order.
func (e *Evaluator) All() []Achievement {
	return slices.Clone(e.table)
}

// Progress lists every achievement with the profile's unlock state.
func (e *Evaluator) Progress(p profile.UserProfile) []Status {
	out := make([]Status, len(e.table))
	for i, a := range e.table {
		out[i] = Status{Achievement: a, Unlocked: p.UnlockedAchievementIDs.Has(string(a.ID))}
	}
	return out
}

// Resolve maps unlocked ids back to achievements, skipping unknown ids.
func (e *Evaluator) Resolve(ids []string) []Achievement {
	var out []Achievement
	for _, id := range ids {
		if a, ok := e.Lookup(ID(id)); ok {
			out = append(out, a)
		}
	}
	return out
}
