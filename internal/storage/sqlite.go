package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// Pure-Go SQLite driver.
	_ "modernc.org/sqlite"
)

// SQLiteStorage implements Storage using SQLite.
type SQLiteStorage struct {
	path string
	db   *sql.DB

	projects      *sqliteProjectRepo
	files         *sqliteFileRepo
	notifications *sqliteNotificationRepo
	tasks         *sqliteTaskRepo
	interviews    *sqliteInterviewRepo
	presets       *sqlitePresetRepo
}

// NewSQLiteStorage creates a new SQLite storage at the given path.
func NewSQLiteStorage(path string) *SQLiteStorage {
	return &SQLiteStorage{path: path}
}

// Open initializes the database connection.
func (s *SQLiteStorage) Open() error {
	ctx := context.Background()

	db, err := sql.Open("sqlite", "file:"+s.path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	// synchronous=FULL: every write must be durable before the call
	// that issued it returns.
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = FULL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	s.db = db

	s.projects = &sqliteProjectRepo{db: db}
	s.files = &sqliteFileRepo{db: db}
	s.notifications = &sqliteNotificationRepo{db: db}
	s.tasks = &sqliteTaskRepo{db: db}
	s.interviews = &sqliteInterviewRepo{db: db}
	s.presets = &sqlitePresetRepo{db: db}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying database connection.
func (s *SQLiteStorage) DB() *sql.DB {
	return s.db
}

// Migrate runs database migrations.
func (s *SQLiteStorage) Migrate() error {
	return runMigrations(s.db)
}

// EnsurePresetProjects seeds the preset catalog if the collection is
// empty. Calling it again is a no-op, so it runs on every start.
func (s *SQLiteStorage) EnsurePresetProjects() error {
	ctx := context.Background()

	count, err := s.Presets().Count(ctx)
	if err != nil {
		return fmt.Errorf("count presets: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, preset := range PresetCatalog() {
		if err := s.Presets().Create(ctx, preset); err != nil {
			return fmt.Errorf("seed preset %s: %w", preset.ID, err)
		}
	}
	return nil
}

// Projects returns the project repository.
func (s *SQLiteStorage) Projects() ProjectRepository {
	return s.projects
}

// Files returns the file repository.
func (s *SQLiteStorage) Files() FileRepository {
	return s.files
}

// Notifications returns the notification repository.
func (s *SQLiteStorage) Notifications() NotificationRepository {
	return s.notifications
}

// Tasks returns the schedule task repository.
func (s *SQLiteStorage) Tasks() TaskRepository {
	return s.tasks
}

// Interviews returns the interview session repository.
func (s *SQLiteStorage) Interviews() InterviewRepository {
	return s.interviews
}

// Presets returns the preset catalog repository.
func (s *SQLiteStorage) Presets() PresetRepository {
	return s.presets
}

// isUniqueViolation reports whether err is a primary-key or unique
// constraint failure from the driver.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
