package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/starquest/internal/ui/theme"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the best-rated learners",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		n, _ := cmd.Flags().GetInt("top")
		entries, err := e.app.Leaderboard(cmd.Context(), n)
		if err != nil {
			return err
		}
		p, err := e.app.Profile()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, en := range entries {
			line := fmt.Sprintf("%3d. %-24s %-16s %s", en.Rank, en.DisplayName, en.Handle,
				theme.Points.Render(fmt.Sprintf("%5d ▲", en.Rating)))
			if en.ProfileID == p.ID {
				line = theme.Equipped.Render(line)
			}
			fmt.Fprintln(out, line)
		}
		if rank, err := e.app.Rank(cmd.Context()); err == nil && rank > n {
			fmt.Fprintf(out, "  …\n%3d. %s (you)\n", rank, p.DisplayName())
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().IntP("top", "n", 10, "Number of entries to show")
}
