package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/starquest/internal/app"
	"github.com/abhisek/starquest/internal/profile"
	"github.com/abhisek/starquest/internal/ui/layout"
	"github.com/abhisek/starquest/internal/ui/theme"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or manage learner profiles",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		p, err := e.app.Profile()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, layout.RenderHeader(p, layout.DefaultWidth))
		fmt.Fprintf(out, "id            %s\n", p.ID)
		fmt.Fprintf(out, "tasks done    %d\n", p.CompletedTaskIDs.Len())
		fmt.Fprintf(out, "lessons done  %d\n", p.CompletedLessonIDs.Len())
		fmt.Fprintf(out, "achievements  %d\n", p.UnlockedAchievementIDs.Len())
		fmt.Fprintf(out, "inventory     %v\n", []string(p.Inventory))
		fmt.Fprintf(out, "equipped      %v\n", []string(p.EquippedAccessories))
		if rank, err := e.app.Rank(cmd.Context()); err == nil && rank > 0 {
			fmt.Fprintf(out, "rank          #%d\n", rank)
		}

		for _, group := range []struct {
			label string
			list  func(context.Context) ([]profile.UserProfile, error)
		}{
			{"friends", e.app.Friends},
			{"asked you", e.app.IncomingRequests},
			{"you asked", e.app.OutgoingRequests},
		} {
			people, err := group.list(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-13s %s\n", group.label, handles(people))
		}
		return nil
	},
}

func handles(people []profile.UserProfile) string {
	if len(people) == 0 {
		return theme.Hint.Render("none")
	}
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.Handle
	}
	return strings.Join(out, ", ")
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <first> [last]",
	Short: "Create a new profile and print its id",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := &env{logger: newLogger(cmd)}
		defer e.close()
		_, repo, err := openRepo(cmd, e)
		if err != nil {
			return err
		}

		last := ""
		if len(args) > 1 {
			last = args[1]
		}
		handle, _ := cmd.Flags().GetString("handle")
		if handle == "" {
			handle = args[0]
		}

		p, err := app.CreateProfile(cmd.Context(), repo, args[0], last, handle)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s\n", p.DisplayName(), theme.Hint.Render(p.Handle))
		fmt.Fprintf(cmd.OutOrStdout(), "Use it with --profile %s or STARQUEST_PROFILE=%s\n", p.ID, p.ID)
		return nil
	},
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <first> [last]",
	Short: "Change the active profile's name and handle",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		last := ""
		if len(args) > 1 {
			last = args[1]
		}
		handle, _ := cmd.Flags().GetString("handle")
		if err := e.app.Rename(cmd.Context(), args[0], last, handle); err != nil {
			return err
		}
		p, err := e.app.Profile()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Now %s %s\n", p.DisplayName(), theme.Hint.Render(p.Handle))
		return nil
	},
}

var profilePrivacyCmd = &cobra.Command{
	Use:   "privacy",
	Short: "Set what other learners can see",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		var pv profile.Privacy
		pv.HideAchievements, _ = cmd.Flags().GetBool("hide-achievements")
		pv.HideFriends, _ = cmd.Flags().GetBool("hide-friends")
		pv.HideStats, _ = cmd.Flags().GetBool("hide-stats")
		if err := e.app.SetPrivacy(cmd.Context(), pv); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "achievements hidden: %t, friends hidden: %t, stats hidden: %t\n",
			pv.HideAchievements, pv.HideFriends, pv.HideStats)
		return nil
	},
}

func init() {
	profileCreateCmd.Flags().String("handle", "", "Handle (defaults to the first name)")
	profileRenameCmd.Flags().String("handle", "", "New handle (unchanged when empty)")
	profilePrivacyCmd.Flags().Bool("hide-achievements", false, "Hide unlocked achievements")
	profilePrivacyCmd.Flags().Bool("hide-friends", false, "Hide the friend list")
	profilePrivacyCmd.Flags().Bool("hide-stats", false, "Hide stars, rating and streak")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileRenameCmd)
	profileCmd.AddCommand(profilePrivacyCmd)
}
