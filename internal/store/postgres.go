package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhisek/starquest/internal/profile"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	handle TEXT NOT NULL,
	data TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresRepo implements profile.Repository on a shared PostgreSQL
// database, using the same document layout as the SQLite store.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

var _ profile.Repository = (*PostgresRepo)(nil)

// OpenPostgres connects to dsn, verifies the connection and creates the
// profiles table when missing.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepo, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	cfg.MaxConns = 4
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &PostgresRepo{pool: pool}, nil
}

// Close releases the connection pool.
func (r *PostgresRepo) Close() {
	r.pool.Close()
}

func (r *PostgresRepo) Save(ctx context.Context, p profile.UserProfile) error {
	query, args, err := upsertProfile(dialect.Postgres, p, time.Now().UTC())
	if err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (*profile.UserProfile, error) {
	list, err := r.query(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]profile.UserProfile, error) {
	return r.query(ctx, "")
}

func (r *PostgresRepo) query(ctx context.Context, id string) ([]profile.UserProfile, error) {
	query, args := selectProfiles(dialect.Postgres, id)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	defer rows.Close()

	var out []profile.UserProfile
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		p, err := decodeProfile([]byte(data))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return out, nil
}
