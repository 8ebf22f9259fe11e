package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephgoksu/smarttask/models"
	"github.com/josephgoksu/smarttask/types"
	_ "modernc.org/sqlite"
)

const (
	dbFileKey     = "dbFile"
	defaultDBFile = "tasks.db"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	description TEXT NOT NULL DEFAULT '',
	deadlineDetails TEXT NOT NULL DEFAULT '',
	priority INTEGER NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	remainingHours INTEGER NOT NULL DEFAULT 0
);`

// SQLiteTaskStore implements TaskStore on a SQLite database file. Every
// operation opens and closes its own connection; no handle is held across
// operations, so there is nothing to lock or share.
type SQLiteTaskStore struct {
	dbPath string
}

// NewSQLiteTaskStore creates a new instance of SQLiteTaskStore.
// It does not initialize the store; Initialize must be called separately.
func NewSQLiteTaskStore() *SQLiteTaskStore {
	return &SQLiteTaskStore{}
}

// Initialize configures the store. It expects a 'dbFile' key in the config
// map specifying the database path, defaulting to 'tasks.db' in the current
// working directory. The parent directory is created if needed and the
// schema is bootstrapped.
func (s *SQLiteTaskStore) Initialize(config map[string]string) error {
	path := defaultDBFile
	if v, ok := config[dbFileKey]; ok && v != "" {
		path = v
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	s.dbPath = path

	db, err := s.open()
	if err != nil {
		return &types.PersistenceError{Op: "open", Err: err}
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(schema); err != nil {
		return &types.PersistenceError{Op: "init schema", Err: err}
	}
	return nil
}

func (s *SQLiteTaskStore) open() (*sql.DB, error) {
	if s.dbPath == "" {
		return nil, fmt.Errorf("store not initialized")
	}
	return sql.Open("sqlite", s.dbPath)
}

// LoadAll reads every row from the tasks table. Row order is whatever the
// database returns; callers sort by the persisted priority.
func (s *SQLiteTaskStore) LoadAll() ([]models.Task, error) {
	db, err := s.open()
	if err != nil {
		return nil, &types.PersistenceError{Op: "load", Err: err}
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query(`SELECT id, description, deadlineDetails, priority, category, status, remainingHours FROM tasks`)
	if err != nil {
		return nil, &types.PersistenceError{Op: "load", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Description, &t.DeadlineDetails, &t.Priority, &t.Category, &t.Status, &t.RemainingHours); err != nil {
			return nil, &types.PersistenceError{Op: "load", Err: err}
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &types.PersistenceError{Op: "load", Err: err}
	}
	return tasks, nil
}

// ReplaceAll mirrors the given sequence into the table: delete everything,
// reinsert in order, inside one transaction.
func (s *SQLiteTaskStore) ReplaceAll(tasks []models.Task) error {
	db, err := s.open()
	if err != nil {
		return &types.PersistenceError{Op: "replace", Err: err}
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Begin()
	if err != nil {
		return &types.PersistenceError{Op: "replace", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return &types.PersistenceError{Op: "replace", Err: err}
	}

	stmt, err := tx.Prepare(`INSERT INTO tasks (id, description, deadlineDetails, priority, category, status, remainingHours) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return &types.PersistenceError{Op: "replace", Err: err}
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range tasks {
		if _, err := stmt.Exec(t.ID, t.Description, t.DeadlineDetails, t.Priority, t.Category, string(t.Status), t.RemainingHours); err != nil {
			return &types.PersistenceError{Op: "replace", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &types.PersistenceError{Op: "replace", Err: err}
	}
	return nil
}

// DeleteOne removes a single row by ID.
func (s *SQLiteTaskStore) DeleteOne(id string) error {
	db, err := s.open()
	if err != nil {
		return &types.PersistenceError{Op: "delete", Err: err}
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(`DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return &types.PersistenceError{Op: "delete", Err: err}
	}
	return nil
}

// Close is a no-op: connections are scoped to each operation.
func (s *SQLiteTaskStore) Close() error {
	return nil
}
