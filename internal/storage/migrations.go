package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Migration represents a database migration.
type Migration struct {
	Version int
	Name    string
	Up      string
}

// migrations holds all database migrations in order.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "initial_schema",
		Up: `
			-- Application targets
			CREATE TABLE IF NOT EXISTS projects (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				school TEXT NOT NULL,
				major TEXT NOT NULL,
				description TEXT,
				deadline TEXT,
				status TEXT NOT NULL DEFAULT 'preparing',
				created_at DATETIME NOT NULL,
				updated_at DATETIME NOT NULL
			);

			-- Uploaded documents, owned by a project
			CREATE TABLE IF NOT EXISTS files (
				id TEXT PRIMARY KEY,
				project_id TEXT NOT NULL,
				category TEXT NOT NULL,
				name TEXT NOT NULL,
				mime_type TEXT NOT NULL DEFAULT 'application/octet-stream',
				size INTEGER NOT NULL DEFAULT 0,
				content BLOB,
				uploaded_at DATETIME NOT NULL
			);

			-- Alerts about monitored programs
			CREATE TABLE IF NOT EXISTS notifications (
				id TEXT PRIMARY KEY,
				project_id TEXT NOT NULL,
				project_name TEXT NOT NULL,
				title TEXT NOT NULL,
				link TEXT NOT NULL,
				publish_time TEXT,
				is_read INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL
			);

			-- Timeline items, optionally tied to a project
			CREATE TABLE IF NOT EXISTS schedule_tasks (
				id TEXT PRIMARY KEY,
				project_id TEXT,
				title TEXT NOT NULL,
				description TEXT,
				start_date TEXT NOT NULL,
				end_date TEXT NOT NULL,
				progress INTEGER NOT NULL DEFAULT 0,
				type TEXT NOT NULL DEFAULT 'task',
				status TEXT NOT NULL DEFAULT 'todo'
			);

			-- Mock interview transcripts
			CREATE TABLE IF NOT EXISTS interview_sessions (
				id TEXT PRIMARY KEY,
				project_id TEXT,
				project_name TEXT,
				type TEXT NOT NULL,
				messages TEXT NOT NULL DEFAULT '[]',
				started_at DATETIME NOT NULL,
				ended_at DATETIME
			);

			-- Seeded school/program catalog
			CREATE TABLE IF NOT EXISTS preset_projects (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				school TEXT NOT NULL,
				major TEXT NOT NULL,
				description TEXT,
				official_url TEXT
			);

			-- Indexes
			CREATE INDEX IF NOT EXISTS idx_projects_name ON projects(name);
			CREATE INDEX IF NOT EXISTS idx_projects_school ON projects(school);
			CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
			CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at);
			CREATE INDEX IF NOT EXISTS idx_files_project ON files(project_id);
			CREATE INDEX IF NOT EXISTS idx_files_category ON files(category);
			CREATE INDEX IF NOT EXISTS idx_files_uploaded ON files(uploaded_at);
			CREATE INDEX IF NOT EXISTS idx_files_project_category ON files(project_id, category);
			CREATE INDEX IF NOT EXISTS idx_notifications_project ON notifications(project_id);
			CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(is_read);
			CREATE INDEX IF NOT EXISTS idx_notifications_created ON notifications(created_at);
			CREATE INDEX IF NOT EXISTS idx_tasks_project ON schedule_tasks(project_id);
			CREATE INDEX IF NOT EXISTS idx_tasks_start ON schedule_tasks(start_date);
			CREATE INDEX IF NOT EXISTS idx_tasks_end ON schedule_tasks(end_date);
			CREATE INDEX IF NOT EXISTS idx_tasks_status ON schedule_tasks(status);
			CREATE INDEX IF NOT EXISTS idx_interviews_project ON interview_sessions(project_id);
			CREATE INDEX IF NOT EXISTS idx_interviews_started ON interview_sessions(started_at);
			CREATE INDEX IF NOT EXISTS idx_presets_name ON preset_projects(name);
			CREATE INDEX IF NOT EXISTS idx_presets_school ON preset_projects(school);
		`,
	},
}

// runMigrations applies all pending migrations.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("get current version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= currentVersion {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin transaction for migration %d: %w", m.Version, err)
		}

		_, err = tx.Exec(m.Up)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("execute migration %d (%s): %w", m.Version, m.Name, err)
		}

		_, err = tx.Exec(
			"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)",
			m.Version, m.Name, time.Now(),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}
