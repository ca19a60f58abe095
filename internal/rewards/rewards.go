// Package rewards applies the reward and completion rules for answered tasks.
package rewards

import (
	"time"

	"github.com/abhisek/starquest/internal/achievements"
	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/profile"
)

// Outcome describes what a submitted answer did to the profile.
type Outcome struct {
	TaskID  string
	Correct bool
	// Awarded is false for a correct answer to an already-completed task.
	Awarded         bool
	StarsAwarded    int
	RatingAwarded   int
	LessonCompleted bool
	Unlocked        []achievements.Achievement
}

// CheckAnswer compares exactly: case-sensitive, no normalization.
func CheckAnswer(task catalog.Task, chosen string) bool {
	return chosen == task.Answer
}

// SubmitAnswer checks chosen against task and, when correct and the task is
// not yet completed, awards stars and rating, records the completion,
// maintains the streak and evaluates achievements. Every correct answer also
// completes the owning lesson once all of its tasks are done, so a lesson
// whose tasks were finished earlier is still recorded. Incorrect answers
// leave the profile untouched. eval may be nil.
func SubmitAnswer(p *profile.UserProfile, lesson catalog.Lesson, task catalog.Task, chosen string, eval *achievements.Evaluator, now time.Time) Outcome {
	out := Outcome{TaskID: task.ID, Correct: CheckAnswer(task, chosen)}
	if !out.Correct {
		return out
	}

	if p.CompletedTaskIDs.Add(task.ID) {
		p.Stars += task.Stars
		p.RatingPoints += task.Rating
		p.TouchStreak(now)
		out.Awarded = true
		out.StarsAwarded = task.Stars
		out.RatingAwarded = task.Rating

		if eval != nil {
			out.Unlocked = eval.Evaluate(p)
		}
	}

	if len(lesson.Tasks) > 0 && p.CompletedTaskIDs.ContainsAll(lesson.TaskIDs()) {
		out.LessonCompleted = p.CompletedLessonIDs.Add(lesson.ID)
		if out.LessonCompleted && eval != nil {
			out.Unlocked = append(out.Unlocked, eval.Evaluate(p)...)
		}
	}
	return out
}
