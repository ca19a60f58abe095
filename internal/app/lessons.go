package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/profile"
	"github.com/abhisek/starquest/internal/rewards"
	"github.com/abhisek/starquest/internal/session"
	"github.com/abhisek/starquest/internal/store"
)

var (
	// ErrSessionDone is returned when answering past the last task.
	ErrSessionDone = errors.New("session has no current task")

	// ErrAlreadyChecked is returned when the current task was already answered.
	ErrAlreadyChecked = errors.New("current task already checked")
)

// LessonStatus pairs a lesson with the active profile's progress in it.
type LessonStatus struct {
	Lesson    catalog.Lesson
	Done      int // completed tasks
	Completed bool
}

// Lessons returns every lesson in catalog order with progress.
func (a *App) Lessons() ([]LessonStatus, error) {
	p, err := a.store.Snapshot()
	if err != nil {
		return nil, err
	}
	lessons := a.catalog.All()
	out := make([]LessonStatus, 0, len(lessons))
	for _, l := range lessons {
		st := LessonStatus{Lesson: l, Completed: p.CompletedLessonIDs.Has(l.ID)}
		for _, t := range l.Tasks {
			if p.CompletedTaskIDs.Has(t.ID) {
				st.Done++
			}
		}
		out = append(out, st)
	}
	return out, nil
}

// StartLesson opens a session over the lesson's tasks the profile has not
// completed yet.
func (a *App) StartLesson(id string) (*session.Session, error) {
	l, ok := a.catalog.Lesson(id)
	if !ok {
		return nil, fmt.Errorf("lesson %q: %w", id, ErrNotFound)
	}
	p, err := a.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return session.Start(l, p.CompletedTaskIDs), nil
}

// SubmitAnswer checks answer against the session's current task, records
// the outcome on the session and applies the reward rules to the profile.
// The session cursor is left in place; the caller advances it.
func (a *App) SubmitAnswer(ctx context.Context, sess *session.Session, answer string) (rewards.Outcome, error) {
	task, ok := sess.CurrentTask()
	if !ok {
		return rewards.Outcome{}, ErrSessionDone
	}
	if sess.Checked() {
		return rewards.Outcome{}, ErrAlreadyChecked
	}
	lesson, ok := a.catalog.LessonForTask(task.ID)
	if !ok {
		return rewards.Outcome{}, fmt.Errorf("task %q: %w", task.ID, ErrNotFound)
	}

	sess.Select(answer)
	if !rewards.CheckAnswer(task, answer) {
		sess.RecordOutcome(false)
		a.metrics.Answer(false, false, 0, 0)
		a.appendActivity(ctx, store.Activity{
			ProfileID: a.store.ID(),
			Kind:      store.ActivityAnswer,
			Subject:   task.ID,
			Timestamp: a.now(),
		})
		return rewards.Outcome{TaskID: task.ID}, nil
	}

	var out rewards.Outcome
	ev, err := a.store.Update(ctx, profile.EventAnswerSubmitted, func(p *profile.UserProfile) error {
		out = rewards.SubmitAnswer(p, lesson, task, answer, a.eval, a.now())
		return nil
	})
	if err != nil {
		return rewards.Outcome{}, err
	}
	sess.RecordOutcome(true)

	a.metrics.Answer(out.Correct, out.Awarded, out.StarsAwarded, out.RatingAwarded)
	if out.LessonCompleted {
		a.metrics.LessonCompleted()
		a.logger.Info("lesson completed", "profile_id", ev.ProfileID, "lesson_id", lesson.ID)
	}
	a.appendActivity(ctx, store.Activity{
		ProfileID: ev.ProfileID,
		Kind:      store.ActivityAnswer,
		Subject:   task.ID,
		Stars:     out.StarsAwarded,
		Rating:    out.RatingAwarded,
		Timestamp: ev.Timestamp,
	})
	return out, nil
}
