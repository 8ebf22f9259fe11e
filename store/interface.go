package store

import "github.com/josephgoksu/smarttask/models"

// TaskStore defines the contract with the durable store. The store is a
// mirror of the in-memory index: after any mutation that renumbers
// priorities the whole table is replaced, and a plain delete maps to a
// single-row delete. It makes no ordering promises of its own; LoadAll may
// return rows in any order and callers sort by the persisted priority.
type TaskStore interface {
	// Initialize configures the store with backend-specific settings (for
	// the SQLite store, the database file path) and prepares the schema.
	// It must be called before any other operation.
	Initialize(config map[string]string) error

	// LoadAll returns every persisted task, in arbitrary order.
	LoadAll() ([]models.Task, error)

	// ReplaceAll removes every row and reinserts the given tasks in order.
	// This is the full-rebuild mirror contract: no diffing, no partial
	// updates.
	ReplaceAll(tasks []models.Task) error

	// DeleteOne removes the single row with the given ID. Deleting an ID
	// that is not present is not an error; the mirror may already have
	// diverged and will be reconciled by the next ReplaceAll.
	DeleteOne(id string) error

	// Close releases any resources held by the store.
	Close() error
}
