// Package priority computes and renumbers priority values. Its functions
// are pure: they take an ordered snapshot of the current tasks, never touch
// the index or the store, and return a fresh slice for the caller to rebuild
// the index from.
package priority

import (
	"sort"

	"github.com/josephgoksu/smarttask/models"
)

// Place positions a new task within a snapshot sorted by ascending priority
// and returns the resulting snapshot plus the priority the task received.
//
// A complete task is appended after everything else. An incomplete task is
// slotted before the first task whose remaining hours exceed its own; every
// task at or after that slot shifts down by one and the new task takes the
// freed value. Remaining hours are the snapshot taken at entry time, so
// placement reflects how much time was left when each task was entered.
//
// The snapshot's priorities are first compacted to 1..N, so a gap left by an
// earlier delete disappears here rather than propagating.
func Place(snapshot []models.Task, task models.Task) ([]models.Task, int) {
	tasks := renumber(snapshot)

	newPriority := 1
	switch {
	case len(tasks) == 0:
		// first task, priority 1
	case task.Status == models.StatusComplete:
		newPriority = tasks[len(tasks)-1].Priority + 1
	case task.RemainingHours < tasks[0].RemainingHours:
		for i := range tasks {
			tasks[i].Priority++
		}
	case task.RemainingHours >= tasks[len(tasks)-1].RemainingHours:
		newPriority = tasks[len(tasks)-1].Priority + 1
	default:
		for _, t := range tasks {
			if task.RemainingHours < t.RemainingHours {
				newPriority = t.Priority
				break
			}
		}
		for i := range tasks {
			if tasks[i].Priority >= newPriority {
				tasks[i].Priority++
			}
		}
	}

	task.Priority = newPriority
	tasks = append(tasks, task)
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Priority < tasks[j].Priority })
	return tasks, newPriority
}

// Reorder recomputes every priority after the task with changedID switched
// status. Incomplete tasks come first, sorted ascending by their
// remaining-hours snapshot; complete tasks follow in their previous relative
// order (old priority, not re-derived urgency), with a freshly completed
// task joining at the back. The concatenation is renumbered 1..N.
//
// A reopened task needs no special handling: it rejoins the incomplete set
// and its stored remaining-hours snapshot decides its slot.
func Reorder(snapshot []models.Task, changedID string) []models.Task {
	var incomplete, complete []models.Task
	var justCompleted *models.Task
	for _, t := range snapshot {
		switch {
		case t.Status == models.StatusIncomplete:
			incomplete = append(incomplete, t)
		case t.ID == changedID:
			justCompleted = &t
		default:
			complete = append(complete, t)
		}
	}

	sort.SliceStable(incomplete, func(i, j int) bool {
		return incomplete[i].RemainingHours < incomplete[j].RemainingHours
	})
	sort.SliceStable(complete, func(i, j int) bool {
		return complete[i].Priority < complete[j].Priority
	})

	tasks := make([]models.Task, 0, len(snapshot))
	tasks = append(tasks, incomplete...)
	tasks = append(tasks, complete...)
	if justCompleted != nil {
		tasks = append(tasks, *justCompleted)
	}
	for i := range tasks {
		tasks[i].Priority = i + 1
	}
	return tasks
}

// renumber copies the snapshot and compacts its priorities to 1..N,
// preserving order.
func renumber(snapshot []models.Task) []models.Task {
	tasks := make([]models.Task, len(snapshot))
	copy(tasks, snapshot)
	for i := range tasks {
		tasks[i].Priority = i + 1
	}
	return tasks
}
