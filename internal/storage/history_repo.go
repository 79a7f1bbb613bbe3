package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Event kinds recorded in the history log.
const (
	EventScan   = "scan"
	EventFeed   = "feed"
	EventPlay   = "play"
	EventCommit = "commit"
	EventFocus  = "focus"
)

// sqliteTime is the text timestamp layout stored in occurred_at.
// Timestamps are normalized to UTC before formatting, so lexicographic
// comparison matches chronological order and SQLite's date() can
// extract the day for the heatmap grouping.
const sqliteTime = "2006-01-02 15:04:05"

// Event is one row in the append-only activity log. The log backs the
// heatmap and the stats screen; the pet record itself stays small.
type Event struct {
	ID         int64
	Kind       string
	OccurredAt time.Time
	XPAwarded  int
	Detail     string
}

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Insert(ctx context.Context, kind string, occurredAt time.Time, xpAwarded int, detail string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO events (kind, occurred_at, xp_awarded, detail)
		VALUES (?, ?, ?, ?)
	`, kind, occurredAt.UTC().Format(sqliteTime), xpAwarded, detail)
	if err != nil {
		return 0, fmt.Errorf("event insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("event last insert id: %w", err)
	}
	return id, nil
}

// CountByDay returns event counts keyed by ISO day (UTC) since the
// given time. This is the heatmap's data source; render UTC days
// against it.
func (r *HistoryRepo) CountByDay(ctx context.Context, since time.Time) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date(occurred_at), COUNT(*)
		FROM events
		WHERE occurred_at >= ?
		GROUP BY date(occurred_at)
	`, since.UTC().Format(sqliteTime))
	if err != nil {
		return nil, fmt.Errorf("event count by day: %w", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var day string
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, fmt.Errorf("event count scan: %w", err)
		}
		out[day] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event count rows: %w", err)
	}
	return out, nil
}

// CountSince returns how many events of a kind occurred at or after
// the given time.
func (r *HistoryRepo) CountSince(ctx context.Context, kind string, since time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM events
		WHERE kind = ? AND occurred_at >= ?
	`, kind, since.UTC().Format(sqliteTime))
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("event count: %w", err)
	}
	return n, nil
}

// TotalXPSince sums XP awarded at or after the given time.
func (r *HistoryRepo) TotalXPSince(ctx context.Context, since time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(xp_awarded), 0)
		FROM events
		WHERE occurred_at >= ?
	`, since.UTC().Format(sqliteTime))
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("event xp sum: %w", err)
	}
	return n, nil
}

// ListRecent returns the newest n events, newest first.
func (r *HistoryRepo) ListRecent(ctx context.Context, n int) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, occurred_at, xp_awarded, COALESCE(detail, '')
		FROM events
		ORDER BY occurred_at DESC, id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("event list: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		var occurred string
		if err := rows.Scan(&e.ID, &e.Kind, &occurred, &e.XPAwarded, &e.Detail); err != nil {
			return nil, fmt.Errorf("event scan: %w", err)
		}
		e.OccurredAt, err = time.Parse(sqliteTime, occurred)
		if err != nil {
			return nil, fmt.Errorf("event time %q: %w", occurred, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event rows: %w", err)
	}
	return out, nil
}
