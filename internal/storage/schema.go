package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			occurred_at DATETIME NOT NULL,
			xp_awarded INTEGER NOT NULL DEFAULT 0,
			detail TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);`,
		`CREATE INDEX IF NOT EXISTS idx_events_occurred_at ON events(occurred_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
