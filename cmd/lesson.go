package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/starquest/internal/app"
	"github.com/abhisek/starquest/internal/ui/theme"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Browse lessons",
}

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all lessons with your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()
		return printLessons(cmd.OutOrStdout(), e.app)
	},
}

func init() {
	lessonCmd.AddCommand(lessonListCmd)
}

func printLessons(w io.Writer, a *app.App) error {
	lessons, err := a.Lessons()
	if err != nil {
		return err
	}
	if len(lessons) == 0 {
		fmt.Fprintln(w, theme.Hint.Render("No lessons available."))
		return nil
	}

	fmt.Fprintf(w, "%-6s  %-24s  %7s  %6s\n", "ID", "Lesson", "Tasks", "Stars")
	fmt.Fprintln(w, strings.Repeat("─", 50))
	for _, st := range lessons {
		mark := " "
		if st.Completed {
			mark = theme.Correct.Render("✓")
		}
		fmt.Fprintf(w, "%-6s  %-24s  %3d/%-3d  %6d %s\n",
			st.Lesson.ID, st.Lesson.Name, st.Done, len(st.Lesson.Tasks), st.Lesson.TotalStars(), mark)
	}
	fmt.Fprintf(w, "\n%d lessons · catalog %s\n", len(lessons), a.Catalog().Version())
	return nil
}
