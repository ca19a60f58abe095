package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/starquest/internal/profile"
)

// ProfileRepo implements profile.Repository on SQLite. Each profile is
// stored as one JSON document keyed by id.
type ProfileRepo struct {
	drv *entsql.Driver
}

var _ profile.Repository = (*ProfileRepo)(nil)

func (r *ProfileRepo) Save(ctx context.Context, p profile.UserProfile) error {
	query, args, err := upsertProfile(dialect.SQLite, p, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return err
	}
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *ProfileRepo) Get(ctx context.Context, id string) (*profile.UserProfile, error) {
	query, args := selectProfiles(dialect.SQLite, id)
	list, err := r.query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]profile.UserProfile, error) {
	query, args := selectProfiles(dialect.SQLite, "")
	return r.query(ctx, query, args)
}

func (r *ProfileRepo) query(ctx context.Context, query string, args []any) ([]profile.UserProfile, error) {
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
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

// upsertProfile builds the insert-or-replace statement for p in the given
// SQL dialect.
func upsertProfile(d string, p profile.UserProfile, updatedAt any) (string, []any, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", nil, fmt.Errorf("marshal profile: %w", err)
	}
	query, args := entsql.Dialect(d).
		Insert(profilesTable).
		Columns("id", "handle", "data", "updated_at").
		Values(p.ID, p.Handle, string(data), updatedAt).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	return query, args, nil
}

// selectProfiles builds the query for one profile, or all profiles ordered
// by id when id is empty.
func selectProfiles(d, id string) (string, []any) {
	b := entsql.Dialect(d)
	sel := b.Select("data").From(b.Table(profilesTable))
	if id != "" {
		sel = sel.Where(entsql.EQ("id", id))
	}
	return sel.OrderBy("id").Query()
}

func decodeProfile(data []byte) (profile.UserProfile, error) {
	var p profile.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return profile.UserProfile{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return p, nil
}
