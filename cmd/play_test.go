package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/starquest/internal/app"
	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/profile"
)

func testApp(t *testing.T) (*app.App, *profile.MemoryRepository) {
	t.Helper()
	repo := profile.NewMemoryRepository()
	a, err := app.New(context.Background(), app.Options{
		Repository: repo,
		Catalog: catalog.New("v1.0.0", []catalog.Lesson{
			{ID: "1", Name: "One", Tasks: []catalog.Task{
				{ID: "a", Prompt: "cat?", Options: []string{"кот", "пёс"}, Answer: "кот", Stars: 5, Rating: 1},
				{ID: "b", Prompt: "dog?", Options: []string{"кот", "пёс"}, Answer: "пёс", Stars: 10, Rating: 1},
				{ID: "c", Prompt: "type: hi", Answer: "привет", Stars: 15, Rating: 2},
			}},
		}),
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, repo
}

func TestPlaySession(t *testing.T) {
	a, _ := testApp(t)
	sess, err := a.StartLesson("1")
	require.NoError(t, err)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	var out bytes.Buffer
	in := strings.NewReader("a\nA\nпривет\n")
	require.NoError(t, playSession(cmd, a, sess, in, &out))

	p, err := a.Profile()
	require.NoError(t, err)
	assert.Equal(t, 20, p.Stars, "a and c correct, b wrong")
	assert.False(t, p.CompletedLessonIDs.Has("1"))
	assert.Contains(t, out.String(), "Session over")
	assert.Contains(t, out.String(), "2/3 correct")
	assert.Contains(t, out.String(), "Answer: ", "wrong answers reveal the solution")
}

func TestPlaySession_QuitAndSkip(t *testing.T) {
	a, _ := testApp(t)
	sess, err := a.StartLesson("1")
	require.NoError(t, err)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	var out bytes.Buffer
	require.NoError(t, playSession(cmd, a, sess, strings.NewReader("\nq\n"), &out))

	p, err := a.Profile()
	require.NoError(t, err)
	assert.Zero(t, p.Stars)
	assert.Contains(t, out.String(), "0/0 correct")
}
