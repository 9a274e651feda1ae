package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// the full list re-runs safely on startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                   TEXT PRIMARY KEY,
		title                TEXT NOT NULL,
		subject              TEXT NOT NULL DEFAULT '',
		age_group            TEXT NOT NULL DEFAULT '',
		studio_theme         TEXT NOT NULL DEFAULT '',
		educator_perspective TEXT NOT NULL DEFAULT '',
		stage                TEXT NOT NULL DEFAULT 'ideation'
		                     CHECK(stage IN ('ideation','curriculum','assignments','completed')),
		core_idea            TEXT NOT NULL DEFAULT '',
		challenge            TEXT NOT NULL DEFAULT '',
		curriculum_draft     TEXT NOT NULL DEFAULT '',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL CHECK(position > 0),
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		rubric      TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_project ON assignments(project_id)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id                TEXT PRIMARY KEY,
		project_id        TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		stage             TEXT NOT NULL
		                  CHECK(stage IN ('ideation','curriculum','assignments')),
		role              TEXT NOT NULL CHECK(role IN ('user','assistant')),
		content           TEXT NOT NULL,
		suggestions       TEXT NOT NULL DEFAULT '',
		stage_complete    INTEGER NOT NULL DEFAULT 0,
		curriculum_append TEXT NOT NULL DEFAULT '',
		new_assignment    TEXT NOT NULL DEFAULT '',
		failed            INTEGER NOT NULL DEFAULT 0,
		synthesized       INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_chat_messages_project_stage ON chat_messages(project_id, stage)`,
}
