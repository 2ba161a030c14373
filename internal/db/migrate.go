package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are re-run on every start;
// each must be idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		company       TEXT NOT NULL DEFAULT '',
		contact_email TEXT NOT NULL DEFAULT '',
		archived_at   TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		active     INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		short_id    TEXT NOT NULL DEFAULT '',
		client_id   TEXT NOT NULL REFERENCES clients(id) ON DELETE RESTRICT,
		name        TEXT NOT NULL,
		assignee_id TEXT REFERENCES users(id) ON DELETE SET NULL,
		status      TEXT NOT NULL
		            CHECK(status IN ('queued','in_progress','paused','done','canceled')),
		start_date  TEXT,
		end_date    TEXT,
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS subtasks (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		assignee_id TEXT REFERENCES users(id) ON DELETE SET NULL,
		status      TEXT NOT NULL
		            CHECK(status IN ('queued','in_progress','paused','done','canceled')),
		start_date  TEXT,
		end_date    TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_short_id ON projects(short_id) WHERE short_id != ''`,
	`CREATE INDEX IF NOT EXISTS idx_projects_client ON projects(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_assignee ON projects(assignee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status)`,
	`CREATE INDEX IF NOT EXISTS idx_subtasks_project ON subtasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_subtasks_assignee ON subtasks(assignee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_users_active ON users(active)`,
}
