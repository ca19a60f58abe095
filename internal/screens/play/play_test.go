package play

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/starquest/internal/app"
	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/profile"
	"github.com/abhisek/starquest/internal/session"
)

func newScreen(t *testing.T) (Model, *app.App, *session.Session) {
	t.Helper()
	a, err := app.New(context.Background(), app.Options{
		Repository: profile.NewMemoryRepository(),
		Catalog: catalog.New("v1.0.0", []catalog.Lesson{
			{ID: "1", Name: "One", Tasks: []catalog.Task{
				{ID: "a", Prompt: "cat?", Options: []string{"кот", "пёс"}, Answer: "кот", Stars: 5, Rating: 1},
				{ID: "b", Prompt: "dog?", Options: []string{"кот", "пёс"}, Answer: "пёс", Stars: 10, Rating: 1},
			}},
		}),
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)

	sess, err := a.StartLesson("1")
	require.NoError(t, err)
	return New(context.Background(), a, sess), a, sess
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

func press(m tea.Model, code rune) (tea.Model, tea.Cmd) {
	return m.Update(tea.KeyPressMsg{Code: code})
}

func TestModel_CorrectThenWrongWithReveal(t *testing.T) {
	screen, a, sess := newScreen(t)
	var m tea.Model = screen

	m = typeText(m, "a")
	m, _ = press(m, tea.KeyEnter)
	assert.True(t, sess.Checked())
	assert.Contains(t, m.(Model).render(), "+5 ★")

	// Typing while feedback shows is ignored.
	m = typeText(m, "zzz")
	assert.Empty(t, m.(Model).input.Value())

	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, 1, sess.Cursor())

	m = typeText(m, "A")
	m, _ = press(m, tea.KeyEnter)
	assert.True(t, sess.Revealed(), "wrong answers reveal the solution")
	assert.Contains(t, m.(Model).render(), "Answer:")

	_, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, sess.Done())

	p, err := a.Profile()
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stars)
	assert.Equal(t, session.Summary{LessonID: "1", Total: 2, Answered: 2, Correct: 1, Accuracy: 0.5, Completed: true}, session.Summarize(sess))
}

func TestModel_EmptyEnterSkips(t *testing.T) {
	screen, _, sess := newScreen(t)
	var m tea.Model = screen

	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, 1, sess.Cursor())
	assert.False(t, sess.Checked())
	assert.Contains(t, m.(Model).render(), "Task 2/2 · 1 left")
}

func TestModel_EscQuits(t *testing.T) {
	screen, _, _ := newScreen(t)
	_, cmd := screen.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.NoError(t, screen.Err())
}
