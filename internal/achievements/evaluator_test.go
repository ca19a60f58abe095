package achievements

import (
	"fmt"
	"testing"

	"github.com/abhisek/starquest/internal/profile"
)

func withTasks(n int) *profile.UserProfile {
	p := profile.New("Test", "User", "test")
	for i := 0; i < n; i++ {
		p.CompletedTaskIDs.Add(fmt.Sprintf("t%d", i))
	}
	return p
}

func containsID(list []Achievement, id ID) int {
	n := 0
	for _, a := range list {
		if a.ID == id {
			n++
		}
	}
	return n
}

func TestFirstSteps_RequiresFiveTasks(t *testing.T) {
	e := Default()
	p := withTasks(4)

	got := e.Evaluate(p)
	if containsID(got, FirstSteps) != 0 {
		t.Fatal("first-steps unlocked with only 4 tasks")
	}

	p.CompletedTaskIDs.Add("t4")
	got = e.Evaluate(p)
	if n := containsID(got, FirstSteps); n != 1 {
		t.Fatalf("first-steps returned %d times, want 1", n)
	}
	if !p.UnlockedAchievementIDs.Has(string(FirstSteps)) {
		t.Error("first-steps not recorded on profile")
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := Default()
	p := withTasks(5)

	first := e.Evaluate(p)
	if len(first) == 0 {
		t.Fatal("expected at least one unlock")
	}
	before := p.UnlockedAchievementIDs.Clone()

	for i := 0; i < 3; i++ {
		if again := e.Evaluate(p); len(again) != 0 {
			t.Fatalf("call %d re-emitted %d achievements", i, len(again))
		}
	}
	if len(p.UnlockedAchievementIDs) != len(before) {
		t.Errorf("unlocked ids changed: %v -> %v", before, p.UnlockedAchievementIDs)
	}
}

func TestEvaluate_AlreadyUnlockedNotReEvaluated(t *testing.T) {
	calls := 0
	e := NewEvaluator([]Achievement{{
		ID: "counted",
		Predicate: func(*profile.UserProfile) bool {
			calls++
			return true
		},
	}})
	p := withTasks(0)

	e.Evaluate(p)
	e.Evaluate(p)
	if calls != 1 {
		t.Errorf("predicate called %d times, want 1", calls)
	}
}

func TestEvaluate_UnlockedStaysWhenPredicateTurnsFalse(t *testing.T) {
	e := Default()
	p := withTasks(0)
	p.Stars = 150

	if containsID(e.Evaluate(p), StarCollector) != 1 {
		t.Fatal("expected star-collector unlock")
	}

	p.Stars = 0
	if got := e.Evaluate(p); containsID(got, StarCollector) != 0 {
		t.Error("star-collector re-emitted")
	}
	if !p.UnlockedAchievementIDs.Has(string(StarCollector)) {
		t.Error("star-collector lost after spending stars")
	}
}

func TestEvaluate_TableOrder(t *testing.T) {
	e := Default()
	p := withTasks(5)
	p.CompletedLessonIDs.Add("1")
	p.RatingPoints = 200

	got := e.Evaluate(p)
	want := []ID{FirstSteps, FirstLesson, RisingStar}
	if len(got) != len(want) {
		t.Fatalf("got %d unlocks, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("unlock[%d] = %q, want %q", i, got[i].ID, id)
		}
		if p.UnlockedAchievementIDs[i] != string(id) {
			t.Errorf("profile unlock[%d] = %q, want %q", i, p.UnlockedAchievementIDs[i], id)
		}
	}
}

func TestNewEvaluator_SkipsDuplicatesAndNilPredicates(t *testing.T) {
	yes := func(*profile.UserProfile) bool { return true }
	e := NewEvaluator([]Achievement{
		{ID: "a", Name: "first", Predicate: yes},
		{ID: "a", Name: "second", Predicate: yes},
		{ID: "b"},
	})
	if n := len(e.All()); n != 1 {
		t.Fatalf("table size = %d, want 1", n)
	}
	a, ok := e.Lookup("a")
	if !ok || a.Name != "first" {
		t.Errorf("Lookup(a) = %+v, %v", a, ok)
	}
	if _, ok := e.Lookup("b"); ok {
		t.Error("nil predicate entry should be dropped")
	}
}

func TestProgressAndResolve(t *testing.T) {
	e := Default()
	p := withTasks(5)
	e.Evaluate(p)

	unlocked := 0
	for _, s := range e.Progress(*p) {
		if s.Unlocked {
			unlocked++
		}
	}
	if unlocked != len(p.UnlockedAchievementIDs) {
		t.Errorf("progress shows %d unlocked, profile has %d", unlocked, len(p.UnlockedAchievementIDs))
	}

	resolved := e.Resolve([]string{string(FirstSteps), "unknown"})
	if len(resolved) != 1 || resolved[0].ID != FirstSteps {
		t.Errorf("Resolve = %+v", resolved)
	}
}

func TestHook(t *testing.T) {
	e := Default()
	p := withTasks(5)
	e.Hook()(p)
	if !p.UnlockedAchievementIDs.Has(string(FirstSteps)) {
		t.Error("hook did not evaluate")
	}
}
