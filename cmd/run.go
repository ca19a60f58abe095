package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/abhisek/starquest/internal/app"
	"github.com/abhisek/starquest/internal/catalog"
	"github.com/abhisek/starquest/internal/leaderboard"
	"github.com/abhisek/starquest/internal/metrics"
	"github.com/abhisek/starquest/internal/profile"
	"github.com/abhisek/starquest/internal/store"
	"github.com/abhisek/starquest/internal/ui/layout"
)

// env holds everything a command needs; close releases it.
type env struct {
	app      *app.App
	repo     profile.Repository
	registry *prometheus.Registry
	logger   *slog.Logger
	closers  []func()
}

func (e *env) close() {
	if e.app != nil {
		e.app.Close()
	}
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openRepo opens the SQLite store and picks the profile repository:
// PostgreSQL when configured, the SQLite store otherwise.
func openRepo(cmd *cobra.Command, e *env) (*store.Store, profile.Repository, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	e.closers = append(e.closers, func() { st.Close() })

	dsn := flagOrEnv(cmd, "postgres", "STARQUEST_POSTGRES_DSN")
	if dsn == "" {
		return st, st.ProfileRepo(), nil
	}
	pg, err := store.OpenPostgres(cmd.Context(), dsn)
	if err != nil {
		return nil, nil, err
	}
	e.closers = append(e.closers, pg.Close)
	return st, pg, nil
}

// openBoard connects the shared Redis leaderboard when configured. A Redis
// failure falls back to the in-process board.
func openBoard(cmd *cobra.Command, e *env) leaderboard.Board {
	addr := flagOrEnv(cmd, "redis", "STARQUEST_REDIS_ADDR")
	if addr == "" {
		return leaderboard.NewMemoryBoard()
	}
	board, err := leaderboard.Dial(cmd.Context(), addr)
	if err != nil {
		e.logger.Warn("redis leaderboard unavailable, using local ranking", "addr", addr, "error", err)
		return leaderboard.NewMemoryBoard()
	}
	e.closers = append(e.closers, func() { board.Close() })
	return board
}

// openEnv opens storage and builds the engine for the active profile.
func openEnv(cmd *cobra.Command) (*env, error) {
	e := &env{logger: newLogger(cmd), registry: prometheus.NewRegistry()}

	st, repo, err := openRepo(cmd, e)
	if err != nil {
		e.close()
		return nil, err
	}
	e.repo = repo

	a, err := app.New(cmd.Context(), app.Options{
		Repository: repo,
		ProfileID:  flagOrEnv(cmd, "profile", "STARQUEST_PROFILE"),
		Catalog:    catalog.LoadOrEmpty(flagOrEnv(cmd, "catalog", "STARQUEST_CATALOG"), e.logger),
		Board:      openBoard(cmd, e),
		Events:     st.EventRepo(),
		Metrics:    metrics.New(e.registry),
		Logger:     e.logger,
	})
	if err != nil {
		e.close()
		return nil, err
	}
	e.app = a
	return e, nil
}

// runHome prints the status header and the lesson list.
func runHome(cmd *cobra.Command) error {
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
	fmt.Fprintln(out)
	return printLessons(out, e.app)
}
