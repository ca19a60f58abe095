package session

import (
	"sort"

	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/profile"
)

// Phase is the per-attempt state of the current task.
type Phase int

const (
	PhaseAnswering Phase = iota // Waiting for an answer
	PhaseChecked                // Answer checked, outcome recorded
	PhaseRevealed               // Correct answer shown
)

// Session is an ephemeral run through one lesson's remaining tasks.
// It never touches the profile; the caller reports outcomes to the reward
// rules and drives the cursor with Advance.
type Session struct {
	lessonID string
	tasks    []catalog.Task
	cursor   int

	// Per-attempt state, reset on Advance.
	selected string
	correct  bool
	phase    Phase

	// Totals across the run.
	answered     int
	correctCount int
}

// Start builds a session over lesson's tasks that are not yet completed,
// sorted ascending by stars reward. Ties keep catalog order.
func Start(lesson catalog.Lesson, completed profile.IDSet) *Session {
	var tasks []catalog.Task
	for _, t := range lesson.Tasks {
		if completed.Has(t.ID) {
			continue
		}
		tasks = append(tasks, t)
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Stars < tasks[j].Stars
	})
	return &Session{lessonID: lesson.ID, tasks: tasks}
}

// LessonID returns the lesson this session runs.
func (s *Session) LessonID() string { return s.lessonID }

// Total returns the number of tasks in the run.
func (s *Session) Total() int { return len(s.tasks) }

// Cursor returns the index of the current task.
func (s *Session) Cursor() int { return s.cursor }

// Remaining returns the number of tasks from the cursor to the end.
func (s *Session) Remaining() int { return len(s.tasks) - s.cursor }

// Done reports whether the run is exhausted.
func (s *Session) Done() bool { return s.cursor >= len(s.tasks) }

// CurrentTask returns the task under the cursor, or false when exhausted.
func (s *Session) CurrentTask() (catalog.Task, bool) {
	if s.Done() {
		return catalog.Task{}, false
	}
	return s.tasks[s.cursor], true
}

// Advance moves to the next task. It saturates at the end.
func (s *Session) Advance() {
	if s.Done() {
		return
	}
	s.cursor++
	s.selected = ""
	s.correct = false
	s.phase = PhaseAnswering
}

// ProgressFraction returns cursor/total, or 0 for an empty run.
func (s *Session) ProgressFraction() float64 {
	if len(s.tasks) == 0 {
		return 0
	}
	return float64(s.cursor) / float64(len(s.tasks))
}

// Select records the learner's current choice without checking it.
func (s *Session) Select(answer string) {
	if s.phase != PhaseAnswering {
		return
	}
	s.selected = answer
}

// Selected returns the current choice.
func (s *Session) Selected() string { return s.selected }

// RecordOutcome stores the checked result of the current attempt. Only the
// first check of a task counts toward the run totals.
func (s *Session) RecordOutcome(correct bool) {
	if s.Done() {
		return
	}
	if s.phase == PhaseAnswering {
		s.answered++
		if correct {
			s.correctCount++
		}
	}
	s.correct = correct
	if s.phase < PhaseChecked {
		s.phase = PhaseChecked
	}
}

// Checked reports whether the current attempt has an outcome.
func (s *Session) Checked() bool { return s.phase >= PhaseChecked }

// Correct reports the outcome of the current attempt.
func (s *Session) Correct() bool { return s.correct }

// Reveal marks the correct answer as shown for the current task.
func (s *Session) Reveal() {
	if s.Done() {
		return
	}
	s.phase = PhaseRevealed
}

// Revealed reports whether the correct answer is shown.
func (s *Session) Revealed() bool { return s.phase == PhaseRevealed }

// Phase returns the per-attempt phase.
func (s *Session) Phase() Phase { return s.phase }
