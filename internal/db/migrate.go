package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	`CREATE TABLE IF NOT EXISTS catalog_snapshots (
		id           TEXT PRIMARY KEY,
		source       TEXT NOT NULL DEFAULT '',
		imported_at  TEXT NOT NULL,
		course_count INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_imported ON catalog_snapshots(imported_at)`,
	`CREATE TABLE IF NOT EXISTS courses (
		snapshot_id   TEXT NOT NULL REFERENCES catalog_snapshots(id) ON DELETE CASCADE,
		course_key    TEXT NOT NULL,
		title         TEXT NOT NULL DEFAULT '',
		credits       REAL NOT NULL DEFAULT 0 CHECK(credits >= 0),
		prerequisites TEXT NOT NULL DEFAULT '',
		core_codes    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (snapshot_id, course_key)
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		snapshot_id    TEXT NOT NULL,
		course_key     TEXT NOT NULL,
		position       INTEGER NOT NULL,
		section_number TEXT NOT NULL DEFAULT '',
		reg_index      TEXT NOT NULL,
		is_open        INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (snapshot_id, course_key)
			REFERENCES courses(snapshot_id, course_key) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sections_course ON sections(snapshot_id, course_key)`,
	`CREATE TABLE IF NOT EXISTS meetings (
		section_id INTEGER NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		day        INTEGER NOT NULL CHECK(day BETWEEN 1 AND 5),
		start_min  INTEGER NOT NULL,
		end_min    INTEGER NOT NULL,
		campus     TEXT NOT NULL DEFAULT '',
		building   TEXT NOT NULL DEFAULT '',
		room       TEXT NOT NULL DEFAULT '',
		mode       TEXT NOT NULL DEFAULT '',
		CHECK(start_min < end_min)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_meetings_section ON meetings(section_id)`,
	`CREATE TABLE IF NOT EXISTS core_index (
		snapshot_id TEXT NOT NULL REFERENCES catalog_snapshots(id) ON DELETE CASCADE,
		tag         TEXT NOT NULL,
		course_key  TEXT NOT NULL,
		position    INTEGER NOT NULL,
		PRIMARY KEY (snapshot_id, tag, course_key)
	)`,

	// Columns added after the first catalog schema shipped.
	`ALTER TABLE courses ADD COLUMN description TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE sections ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}
