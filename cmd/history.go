package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/store"
	"github.com/abhisek/starquest/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent activity of the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := e.app.History(cmd.Context(), limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("No activity yet."))
			return nil
		}
		for _, a := range entries {
			fmt.Fprintf(out, "%s  %-11s %-24s %s\n",
				theme.Hint.Render(a.Timestamp.Local().Format("2006-01-02 15:04")),
				a.Kind, subjectName(e.app.Catalog(), a), describeActivity(a))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show (0 for all)")
}

// subjectName shows an answered task by its prompt when the catalog still
// has it.
func subjectName(cat *catalog.Catalog, a store.Activity) string {
	if a.Kind != store.ActivityAnswer {
		return a.Subject
	}
	task, ok := cat.Task(a.Subject)
	if !ok || task.Prompt == "" {
		return a.Subject
	}
	prompt := []rune(task.Prompt)
	if len(prompt) > 24 {
		prompt = append(prompt[:23], '…')
	}
	return string(prompt)
}

func describeActivity(a store.Activity) string {
	switch {
	case a.Kind == store.ActivityAnswer && a.Stars == 0 && a.Rating == 0:
		return theme.Locked.Render("no reward")
	case a.Stars != 0 || a.Rating != 0:
		return theme.Stars.Render(fmt.Sprintf("%+d ★", a.Stars)) + " " +
			theme.Points.Render(fmt.Sprintf("%+d ▲", a.Rating))
	default:
		return ""
	}
}
