package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/starquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "starquest",
	Short: "Gamified language lessons in your terminal",
	Long:  "StarQuest: answer lesson tasks, earn stars and rating, unlock achievements and dress up your avatar.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHome(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides STARQUEST_DB env var)")
	flags.String("profile", "", "Active profile id (overrides STARQUEST_PROFILE env var)")
	flags.String("catalog", "", "Lesson catalog JSON file (overrides STARQUEST_CATALOG env var)")
	flags.String("redis", "", "Redis address for a shared leaderboard (overrides STARQUEST_REDIS_ADDR env var)")
	flags.String("postgres", "", "PostgreSQL DSN for shared profiles (overrides STARQUEST_POSTGRES_DSN env var)")
	flags.BoolP("verbose", "v", false, "Log engine activity to stderr")

	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STARQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// flagOrEnv returns the named flag's value, falling back to env.
func flagOrEnv(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}
