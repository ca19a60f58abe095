package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/rewards"
	"github.com/abhisek/starquest/internal/ui/theme"
)

// Outcome renders the feedback for a checked answer. The correct answer is
// only shown once Revealed.
type Outcome struct {
	Task     catalog.Task
	Answer   string
	Result   rewards.Outcome
	Revealed bool
}

// View renders the verdict, rewards, lesson completion and unlocks.
func (o Outcome) View() string {
	var b strings.Builder
	switch {
	case !o.Result.Correct:
		b.WriteString(theme.Incorrect.Render("✗ Not quite."))
		if o.Revealed {
			b.WriteString(" Answer: " + theme.Correct.Render(o.Task.Answer))
		}
		b.WriteString("\n")
	case o.Result.Awarded:
		fmt.Fprintf(&b, "%s %s %s\n", theme.Correct.Render("✓ Correct!"),
			theme.Stars.Render(fmt.Sprintf("+%d ★", o.Result.StarsAwarded)),
			theme.Points.Render(fmt.Sprintf("+%d ▲", o.Result.RatingAwarded)))
	default:
		b.WriteString(theme.Correct.Render("✓ Correct!") + " " + theme.Hint.Render("(already completed)") + "\n")
	}
	if o.Task.Explanation != "" && (o.Result.Correct || o.Revealed) {
		b.WriteString(theme.Hint.Render(o.Task.Explanation) + "\n")
	}
	if o.Result.LessonCompleted {
		b.WriteString(theme.Title.Render("Lesson complete!") + "\n")
	}
	for _, ach := range o.Result.Unlocked {
		fmt.Fprintf(&b, "%s %s %s\n", ach.Icon, theme.Title.Render("Achievement unlocked:"), ach.Name)
	}
	return b.String()
}
