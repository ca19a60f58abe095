package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// ActivityKind classifies an entry in the activity log.
type ActivityKind string

const (
	ActivityAnswer      ActivityKind = "answer"
	ActivityPurchase    ActivityKind = "purchase"
	ActivityEquip       ActivityKind = "equip"
	ActivityUnequip     ActivityKind = "unequip"
	ActivityAchievement ActivityKind = "achievement"
)

// Activity is one append-only log entry.
type Activity struct {
	Sequence  int64
	ProfileID string
	Kind      ActivityKind
	// Subject is the task id, accessory name or achievement id involved.
	Subject   string
	Stars     int
	Rating    int
	Timestamp time.Time
}

// EventRepo provides append and query access to the activity log.
type EventRepo interface {
	// Append stores a and returns its sequence number. Sequence numbers
	// increase with every append and are never reused.
	Append(ctx context.Context, a Activity) (int64, error)

	// Recent returns up to limit entries for profileID, newest first.
	// A limit <= 0 returns every entry.
	Recent(ctx context.Context, profileID string, limit int) ([]Activity, error)
}

type eventRepo struct {
	drv *entsql.Driver
}

func (r *eventRepo) Append(ctx context.Context, a Activity) (int64, error) {
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(eventsTable).
		Columns("profile_id", "kind", "subject", "stars", "rating", "created_at").
		Values(a.ProfileID, string(a.Kind), a.Subject, a.Stars, a.Rating,
			a.Timestamp.UTC().Format(time.RFC3339Nano)).
		Query()
	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("save activity: %w", err)
	}
	// sequence is the rowid alias, so the insert id is the sequence.
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("activity sequence: %w", err)
	}
	return seq, nil
}

func (r *eventRepo) Recent(ctx context.Context, profileID string, limit int) ([]Activity, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select("sequence", "profile_id", "kind", "subject", "stars", "rating", "created_at").
		From(b.Table(eventsTable)).
		Where(entsql.EQ("profile_id", profileID)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var (
			a       Activity
			kind    string
			created string
		)
		if err := rows.Scan(&a.Sequence, &a.ProfileID, &kind, &a.Subject, &a.Stars, &a.Rating, &created); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse activity time: %w", err)
		}
		a.Kind = ActivityKind(kind)
		a.Timestamp = ts
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return out, nil
}
