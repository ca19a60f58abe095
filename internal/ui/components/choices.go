package components

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/ui/theme"
)

// Choices renders a task's prompt and its lettered options. Once Checked,
// the correct option is highlighted and a wrong pick is marked.
type Choices struct {
	Task    catalog.Task
	Chosen  string
	Checked bool
}

// Label returns the letter shown for option i.
func Label(i int) string {
	return string(rune('A' + i))
}

// Resolve maps a typed answer to an option. Input equal to an option wins;
// otherwise a single option letter (any case) selects that option. Anything
// else is taken verbatim.
func Resolve(task catalog.Task, input string) string {
	in := strings.TrimSpace(input)
	if slices.Contains(task.Options, in) {
		return in
	}
	if len(in) == 1 {
		i := int(strings.ToUpper(in)[0] - 'A')
		if i >= 0 && i < len(task.Options) {
			return task.Options[i]
		}
	}
	return in
}

// View renders the prompt and options.
func (c Choices) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Task.Prompt))
	b.WriteString("\n\n")

	for i, opt := range c.Task.Options {
		line := fmt.Sprintf("  %s)  %s", Label(i), opt)
		switch {
		case c.Checked && opt == c.Task.Answer:
			b.WriteString(theme.Correct.Render(line))
		case c.Checked && opt == c.Chosen:
			b.WriteString(theme.Incorrect.Render(line))
		case c.Checked:
			b.WriteString(theme.Locked.Render(line))
		default:
			b.WriteString(theme.Body.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
