package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/starquest/internal/ui/theme"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find other learners by name or handle",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		found, err := e.app.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(found) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("Nobody found."))
			return nil
		}
		for _, p := range found {
			stats := theme.Hint.Render("stats hidden")
			if !p.Privacy.HideStats {
				stats = theme.Points.Render(fmt.Sprintf("%d ▲", p.RatingPoints))
			}
			fmt.Fprintf(out, "%-24s %-16s %s\n", p.DisplayName(), p.Handle, stats)
		}
		return nil
	},
}
