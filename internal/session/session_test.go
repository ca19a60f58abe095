package session

import (
	"testing"

	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/profile"
)

func testLesson() catalog.Lesson {
	return catalog.Lesson{
		ID:   "1",
		Name: "Test",
		Tasks: []catalog.Task{
			{ID: "a", Stars: 30, Answer: "x"},
			{ID: "b", Stars: 10, Answer: "x"},
			{ID: "c", Stars: 20, Answer: "x"},
			{ID: "d", Stars: 10, Answer: "x"},
		},
	}
}

// ids walks s to the end and returns the task ids in play order.
func ids(s *Session) []string {
	var out []string
	for !s.Done() {
		t, _ := s.CurrentTask()
		out = append(out, t.ID)
		s.Advance()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStart_SortsByStarsStable(t *testing.T) {
	s := Start(testLesson(), nil)
	if s.LessonID() != "1" {
		t.Errorf("LessonID = %q, want %q", s.LessonID(), "1")
	}

	got := ids(s)
	want := []string{"b", "d", "c", "a"}
	if !equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestStart_FiltersCompleted(t *testing.T) {
	s := Start(testLesson(), profile.IDSet{"b", "a"})

	got := ids(s)
	want := []string{"d", "c"}
	if !equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestCurrentTaskAndAdvance(t *testing.T) {
	s := Start(testLesson(), nil)

	for i, want := range []string{"b", "d", "c", "a"} {
		task, ok := s.CurrentTask()
		if !ok {
			t.Fatalf("step %d: expected a task", i)
		}
		if task.ID != want {
			t.Errorf("step %d: task = %q, want %q", i, task.ID, want)
		}
		s.Advance()
	}

	if _, ok := s.CurrentTask(); ok {
		t.Error("expected exhausted session")
	}

	// Advancing past the end saturates.
	s.Advance()
	s.Advance()
	if s.Cursor() != 4 {
		t.Errorf("Cursor = %d, want 4", s.Cursor())
	}
	if _, ok := s.CurrentTask(); ok {
		t.Error("expected no task after saturation")
	}
	if s.ProgressFraction() != 1 {
		t.Errorf("ProgressFraction = %f, want 1", s.ProgressFraction())
	}
}

func TestProgressFraction(t *testing.T) {
	s := Start(testLesson(), nil)
	if s.ProgressFraction() != 0 {
		t.Errorf("initial progress = %f, want 0", s.ProgressFraction())
	}
	s.Advance()
	if s.ProgressFraction() != 0.25 {
		t.Errorf("progress = %f, want 0.25", s.ProgressFraction())
	}
	if s.Remaining() != 3 {
		t.Errorf("Remaining = %d, want 3", s.Remaining())
	}
}

func TestEmptySession(t *testing.T) {
	all := profile.IDSet{"a", "b", "c", "d"}
	s := Start(testLesson(), all)

	if s.Total() != 0 {
		t.Errorf("Total = %d, want 0", s.Total())
	}
	if s.ProgressFraction() != 0 {
		t.Errorf("ProgressFraction = %f, want 0", s.ProgressFraction())
	}
	if _, ok := s.CurrentTask(); ok {
		t.Error("expected no current task")
	}
	if !s.Done() {
		t.Error("expected Done")
	}

	empty := Start(catalog.Lesson{ID: "none"}, nil)
	if empty.ProgressFraction() != 0 {
		t.Error("lesson without tasks must report 0 progress")
	}
}

func TestAttemptState(t *testing.T) {
	s := Start(testLesson(), nil)

	s.Select("y")
	if s.Selected() != "y" {
		t.Errorf("Selected = %q, want %q", s.Selected(), "y")
	}
	if s.Checked() {
		t.Error("should not be checked before RecordOutcome")
	}

	s.RecordOutcome(false)
	if !s.Checked() || s.Correct() {
		t.Error("expected checked, incorrect")
	}

	// Selection is frozen once checked.
	s.Select("z")
	if s.Selected() != "y" {
		t.Errorf("Selected changed after check: %q", s.Selected())
	}

	s.Reveal()
	if !s.Revealed() {
		t.Error("expected revealed")
	}

	s.Advance()
	if s.Checked() || s.Revealed() || s.Selected() != "" {
		t.Error("attempt state not reset on Advance")
	}
	if s.Phase() != PhaseAnswering {
		t.Errorf("Phase = %d, want PhaseAnswering", s.Phase())
	}
}

func TestSummarize(t *testing.T) {
	s := Start(testLesson(), nil)

	s.RecordOutcome(false)
	s.RecordOutcome(true) // retry on same task does not count twice
	s.Advance()
	s.RecordOutcome(true)
	s.Advance()

	sum := Summarize(s)
	if sum.Answered != 2 {
		t.Errorf("Answered = %d, want 2", sum.Answered)
	}
	if sum.Correct != 1 {
		t.Errorf("Correct = %d, want 1", sum.Correct)
	}
	if sum.Accuracy != 0.5 {
		t.Errorf("Accuracy = %f, want 0.5", sum.Accuracy)
	}
	if sum.Completed {
		t.Error("run is not finished")
	}
}
