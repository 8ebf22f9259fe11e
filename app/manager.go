// Package app wires the priority index, the assignment pass and the durable
// store into the operations the CLI exposes. One Manager owns one index and
// one store, both injected; there is no global state.
package app

import (
	"fmt"
	"sort"

	"github.com/josephgoksu/smarttask/internal/index"
	"github.com/josephgoksu/smarttask/internal/priority"
	"github.com/josephgoksu/smarttask/models"
	"github.com/josephgoksu/smarttask/store"
	"github.com/josephgoksu/smarttask/types"
)

// Manager coordinates all task mutations. Operations are synchronous and
// single-caller: each one runs to completion before the next is accepted.
//
// Persistence policy: the in-memory index is mutated first and never rolled
// back. A store failure afterwards is returned as a *types.PersistenceError
// alongside the successful in-memory result; the next successful mutation
// re-mirrors the full set.
type Manager struct {
	tree  *index.Tree
	store store.TaskStore
}

// NewManager loads every persisted task and rebuilds the index from the
// stored priorities, which are trusted to be the valid contiguous assignment
// the previous session wrote.
func NewManager(ts store.TaskStore) (*Manager, error) {
	tasks, err := ts.LoadAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Priority < tasks[j].Priority })

	tree := index.New()
	if err := tree.Rebuild(tasks); err != nil {
		return nil, fmt.Errorf("rebuild index from store: %w", err)
	}
	return &Manager{tree: tree, store: ts}, nil
}

// Insert creates a task, places it by urgency and mirrors the new ordering.
// The remaining-hours count and the deadline display string are computed
// here, once; they are never re-derived from the wall clock later.
func (m *Manager) Insert(id, description, category string, status models.TaskStatus, d models.Deadline) (models.Task, error) {
	if _, err := m.tree.Search(id); err == nil {
		return models.Task{}, types.ErrDuplicateID
	}

	task := models.NewTask(id, description, category, status, d)
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("invalid task: %w", err)
	}

	tasks, prio := priority.Place(m.tree.InOrder(), task)
	if err := m.tree.Rebuild(tasks); err != nil {
		return models.Task{}, err
	}
	task.Priority = prio

	if err := m.store.ReplaceAll(tasks); err != nil {
		return task, err
	}
	return task, nil
}

// ChangeStatus updates a task's status and runs the full reordering pass:
// incomplete tasks first by remaining hours, complete tasks after them in
// their previous relative order, everything renumbered 1..N.
func (m *Manager) ChangeStatus(id string, status models.TaskStatus) (models.Task, error) {
	if _, err := m.tree.Search(id); err != nil {
		return models.Task{}, err
	}

	tasks := m.tree.InOrder()
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Status = status
			break
		}
	}

	tasks = priority.Reorder(tasks, id)
	if err := m.tree.Rebuild(tasks); err != nil {
		return models.Task{}, err
	}

	updated, err := m.tree.Search(id)
	if err != nil {
		return models.Task{}, err
	}
	if err := m.store.ReplaceAll(tasks); err != nil {
		return updated, err
	}
	return updated, nil
}

// Delete removes a task from the index and issues a single-row delete
// against the store. Surviving priorities keep their values; the gap is
// closed by the next insert or status change.
func (m *Manager) Delete(id string) error {
	if err := m.tree.Delete(id); err != nil {
		return err
	}
	return m.store.DeleteOne(id)
}

// Find returns a copy of the task with the given ID.
func (m *Manager) Find(id string) (models.Task, error) {
	return m.tree.Search(id)
}

// List returns every task in ascending priority order.
func (m *Manager) List() []models.Task {
	return m.tree.InOrder()
}

// Len reports the number of tasks.
func (m *Manager) Len() int {
	return m.tree.Len()
}

// Close releases the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}
