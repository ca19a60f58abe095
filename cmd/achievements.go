package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/starquest/internal/ui/layout"
	"github.com/abhisek/starquest/internal/ui/theme"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements and which ones you have unlocked",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		statuses, err := e.app.Achievements()
		if err != nil {
			return err
		}
		var body strings.Builder
		unlocked := 0
		for _, st := range statuses {
			if st.Unlocked {
				unlocked++
				fmt.Fprintf(&body, "%s %s  %s\n", st.Icon, theme.Correct.Render(st.Name), theme.Hint.Render(st.Description))
				continue
			}
			fmt.Fprintf(&body, "· %s  %s\n", theme.Locked.Render(st.Name), theme.Hint.Render(st.Description))
		}
		title := fmt.Sprintf("Achievements %d/%d", unlocked, len(statuses))
		fmt.Fprintln(cmd.OutOrStdout(), layout.RenderCard(title, body.String(), layout.DefaultWidth))
		return nil
	},
}
