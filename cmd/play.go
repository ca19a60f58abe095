package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/abhisek/starquest/internal/app"
	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/metrics"
	"github.com/abhisek/starquest/internal/rewards"
	"github.com/abhisek/starquest/internal/screens/play"
	"github.com/abhisek/starquest/internal/session"
	"github.com/abhisek/starquest/internal/ui/components"
	"github.com/abhisek/starquest/internal/ui/layout"
	"github.com/abhisek/starquest/internal/ui/theme"
)

var playCmd = &cobra.Command{
	Use:   "play <lesson>",
	Short: "Play through a lesson's remaining tasks",
	Long: "Play through a lesson's remaining tasks. Answer with an option letter " +
		"or type the answer; an empty answer skips the task. On a terminal esc quits; " +
		"with piped input \"q\" quits.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		sess, err := e.app.StartLesson(args[0])
		if err != nil {
			return err
		}

		in, out := cmd.InOrStdin(), cmd.OutOrStdout()
		if f, ok := in.(*os.File); ok && term.IsTerminal(f.Fd()) {
			err = playInteractive(cmd, e.app, sess, in, out)
		} else {
			err = playSession(cmd, e.app, sess, in, out)
		}
		if err != nil {
			return err
		}

		if show, _ := cmd.Flags().GetBool("metrics"); show {
			fmt.Fprintln(out)
			return metrics.Dump(out, e.registry)
		}
		return nil
	},
}

func init() {
	playCmd.Flags().Bool("metrics", false, "Print engine counters for this run when done")
}

// playInteractive runs the lesson screen on a terminal.
func playInteractive(cmd *cobra.Command, a *app.App, sess *session.Session, in io.Reader, out io.Writer) error {
	if sess.Total() == 0 {
		fmt.Fprintln(out, theme.Hint.Render("Nothing left to do in this lesson."))
		return nil
	}
	p := tea.NewProgram(play.New(cmd.Context(), a, sess),
		tea.WithContext(cmd.Context()), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run lesson screen: %w", err)
	}
	if m, ok := final.(play.Model); ok && m.Err() != nil {
		return m.Err()
	}
	printSummary(out, a, sess)
	return nil
}

// playSession reads one answer per line, for piped input.
func playSession(cmd *cobra.Command, a *app.App, sess *session.Session, in io.Reader, out io.Writer) error {
	if sess.Total() == 0 {
		fmt.Fprintln(out, theme.Hint.Render("Nothing left to do in this lesson."))
		return nil
	}

	lines := bufio.NewScanner(in)
	for !sess.Done() {
		task, _ := sess.CurrentTask()
		fmt.Fprintln(out, components.NewProgressBar(
			fmt.Sprintf("Task %d/%d", sess.Cursor()+1, sess.Total()),
			sess.ProgressFraction(), true, layout.DefaultWidth,
		).View())
		fmt.Fprintln(out)
		fmt.Fprint(out, components.Choices{Task: task}.View())
		fmt.Fprint(out, "\n> ")

		if !lines.Scan() {
			break
		}
		input := strings.TrimSpace(lines.Text())
		if input == "q" {
			break
		}
		if input == "" {
			sess.Advance()
			continue
		}

		answer := components.Resolve(task, input)
		result, err := a.SubmitAnswer(cmd.Context(), sess, answer)
		if err != nil {
			return err
		}
		if !result.Correct {
			sess.Reveal()
		}
		printOutcome(out, sess, task, answer, result)
		sess.Advance()
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	printSummary(out, a, sess)
	return nil
}

func printSummary(out io.Writer, a *app.App, sess *session.Session) {
	sum := session.Summarize(sess)
	fmt.Fprintf(out, "\n%s  %d/%d correct (%.0f%%)\n",
		theme.Title.Render("Session over"), sum.Correct, sum.Answered, sum.Accuracy*100)
	if p, err := a.Profile(); err == nil {
		fmt.Fprintln(out, layout.RenderHeader(p, layout.DefaultWidth))
	}
}

func printOutcome(out io.Writer, sess *session.Session, task catalog.Task, answer string, res rewards.Outcome) {
	fmt.Fprintln(out)
	if len(task.Options) > 0 {
		fmt.Fprint(out, components.Choices{Task: task, Chosen: answer, Checked: true}.View())
	}
	fmt.Fprint(out, components.Outcome{Task: task, Answer: answer, Result: res, Revealed: sess.Revealed()}.View())
	fmt.Fprintln(out)
}
