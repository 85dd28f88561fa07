package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/geurime/geurime-tui/internal/database"
)

// DefaultKeep is how many visits the log holds before the oldest are pruned.
const DefaultKeep = 1000

// VisitRepo handles the visits table.
type VisitRepo struct {
	db   *sql.DB
	keep int
}

func NewVisitRepo(db *sql.DB) *VisitRepo { return &VisitRepo{db: db, keep: DefaultKeep} }

// WithRetention returns a repo that keeps only the newest n visits. Zero or
// less keeps everything.
func (r *VisitRepo) WithRetention(n int) *VisitRepo {
	return &VisitRepo{db: r.db, keep: n}
}

// Record inserts v and prunes the log past its retention in the same
// transaction. A missing ID or timestamp is filled in.
func (r *VisitRepo) Record(ctx context.Context, v Visit) (Visit, error) {
	if v.Route == "" {
		return Visit{}, errors.New("record visit: empty route")
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.VisitedAt.IsZero() {
		v.VisitedAt = time.Now()
	}
	v.VisitedAt = v.VisitedAt.UTC()
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO visits(id, session_id, route, source, visited_at)
		VALUES (?, ?, ?, ?, ?);
		`, v.ID, v.SessionID, v.Route, v.Source, v.VisitedAt); err != nil {
			return err
		}
		if r.keep <= 0 {
			return nil
		}
		_, err := tx.ExecContext(ctx, `
		DELETE FROM visits
		WHERE rowid NOT IN (
			SELECT rowid FROM visits
			ORDER BY visited_at DESC, rowid DESC
			LIMIT ?
		)`, r.keep)
		return err
	})
	if err != nil {
		return Visit{}, fmt.Errorf("record visit: %w", err)
	}
	return v, nil
}

// Recent returns up to limit visits, newest first.
func (r *VisitRepo) Recent(ctx context.Context, limit int) ([]Visit, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, route, source, visited_at
	FROM visits
	ORDER BY visited_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()
	var out []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.SessionID, &v.Route, &v.Source, &v.VisitedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// CountByRoute returns visit totals per route, most visited first.
func (r *VisitRepo) CountByRoute(ctx context.Context) ([]RouteCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT route, COUNT(*) AS n
	FROM visits
	GROUP BY route
	ORDER BY n DESC, route ASC`)
	if err != nil {
		return nil, fmt.Errorf("count visits: %w", err)
	}
	defer rows.Close()
	var out []RouteCount
	for rows.Next() {
		var c RouteCount
		if err := rows.Scan(&c.Route, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
