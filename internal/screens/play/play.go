// Package play is the interactive lesson screen.
package play

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/starquest/internal/app"
	"github.com/abhisek/starquest/internal/session"
	"github.com/abhisek/starquest/internal/ui/components"
	"github.com/abhisek/starquest/internal/ui/layout"
	"github.com/abhisek/starquest/internal/ui/theme"
)

// Model runs one learning session in a Bubble Tea program.
type Model struct {
	ctx      context.Context
	app      *app.App
	sess     *session.Session
	input    textinput.Model
	feedback *components.Outcome
	width    int
	err      error
}

// New creates the screen for sess.
func New(ctx context.Context, a *app.App, sess *session.Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type the answer or an option letter"
	ti.Focus()
	return Model{ctx: ctx, app: a, sess: sess, input: ti, width: layout.DefaultWidth}
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	if m.sess.Done() {
		return tea.Quit
	}
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(msg.Width, layout.DefaultWidth)
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.enter()
		}
		// Feedback is showing; only enter moves on.
		if m.sess.Phase() != session.PhaseAnswering {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) enter() (tea.Model, tea.Cmd) {
	if m.sess.Done() {
		return m, tea.Quit
	}
	if m.sess.Phase() != session.PhaseAnswering {
		return m.next()
	}

	typed := strings.TrimSpace(m.input.Value())
	if typed == "" {
		return m.next()
	}

	task, _ := m.sess.CurrentTask()
	answer := components.Resolve(task, typed)
	res, err := m.app.SubmitAnswer(m.ctx, m.sess, answer)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if !res.Correct {
		m.sess.Reveal()
	}
	m.feedback = &components.Outcome{Task: task, Answer: answer, Result: res, Revealed: m.sess.Revealed()}
	m.input.Reset()
	return m, nil
}

func (m Model) next() (tea.Model, tea.Cmd) {
	m.sess.Advance()
	m.feedback = nil
	m.input.Reset()
	if m.sess.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m Model) render() string {
	var b strings.Builder
	if p, err := m.app.Profile(); err == nil {
		b.WriteString(layout.RenderHeader(p, m.width) + "\n\n")
	}

	task, ok := m.sess.CurrentTask()
	if !ok {
		b.WriteString(theme.Hint.Render("Session over.") + "\n")
		return b.String()
	}

	label := fmt.Sprintf("Task %d/%d · %d left", m.sess.Cursor()+1, m.sess.Total(), m.sess.Remaining())
	b.WriteString(components.NewProgressBar(label, m.sess.ProgressFraction(), true, m.width).View() + "\n\n")

	choices := components.Choices{Task: task}
	if m.feedback != nil {
		choices.Chosen = m.feedback.Answer
		choices.Checked = true
	}
	b.WriteString(choices.View() + "\n")

	if m.feedback != nil {
		b.WriteString(m.feedback.View() + "\n")
		b.WriteString(theme.Hint.Render("enter: next · esc: quit"))
		return b.String()
	}
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(theme.Hint.Render("enter: answer · empty enter: skip · esc: quit"))
	return b.String()
}
