/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core task operations.
var (
	// ErrDuplicateID is returned when an insert reuses an existing task ID.
	ErrDuplicateID = errors.New("a task with this ID already exists")
	// ErrDuplicatePriority is returned when the index is asked to hold two
	// tasks with the same priority. The assignment pass resolves collisions
	// before the index sees them, so this is a defensive check.
	ErrDuplicatePriority = errors.New("duplicate priority encountered")
	// ErrTaskNotFound is returned by lookups, deletes and status changes on
	// an unknown task ID.
	ErrTaskNotFound = errors.New("task not found")
)

// PersistenceError reports a durable-store failure. The in-memory index is
// not rolled back when one occurs; the next successful mutation re-mirrors
// the full task set.
type PersistenceError struct {
	Op  string // store operation that failed: "load", "replace", "delete", ...
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
