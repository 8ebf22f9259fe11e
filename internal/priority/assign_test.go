package priority

import (
	"testing"

	"github.com/josephgoksu/smarttask/models"
)

func incomplete(id string, hours int64, priority int) models.Task {
	return models.Task{ID: id, Status: models.StatusIncomplete, RemainingHours: hours, Priority: priority}
}

func complete(id string, priority int) models.Task {
	return models.Task{ID: id, Status: models.StatusComplete, Priority: priority}
}

func assertPriorities(t *testing.T, tasks []models.Task, want map[string]int) {
	t.Helper()
	if len(tasks) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(tasks), len(want))
	}
	for _, task := range tasks {
		if wp, ok := want[task.ID]; !ok || task.Priority != wp {
			t.Errorf("task %s: priority %d, want %d", task.ID, task.Priority, wp)
		}
	}
}

// assertContiguous checks that priorities are exactly {1..N} in slice order.
func assertContiguous(t *testing.T, tasks []models.Task) {
	t.Helper()
	for i, task := range tasks {
		if task.Priority != i+1 {
			t.Fatalf("position %d holds priority %d, want %d", i, task.Priority, i+1)
		}
	}
}

func TestPlaceEmptySnapshot(t *testing.T) {
	tasks, prio := Place(nil, incomplete("A", 48, 0))
	if prio != 1 {
		t.Errorf("priority = %d, want 1", prio)
	}
	assertContiguous(t, tasks)
}

func TestPlaceInsertSequence(t *testing.T) {
	// Insert A (48h), then a more urgent B (24h), then a completed C.
	tasks, prio := Place(nil, incomplete("A", 48, 0))
	if prio != 1 {
		t.Fatalf("A placed at %d, want 1", prio)
	}

	tasks, prio = Place(tasks, incomplete("B", 24, 0))
	if prio != 1 {
		t.Fatalf("B placed at %d, want 1", prio)
	}
	assertPriorities(t, tasks, map[string]int{"B": 1, "A": 2})

	tasks, prio = Place(tasks, complete("C", 0))
	if prio != 3 {
		t.Fatalf("C placed at %d, want 3", prio)
	}
	assertPriorities(t, tasks, map[string]int{"B": 1, "A": 2, "C": 3})
	assertContiguous(t, tasks)
}

func TestPlaceBetween(t *testing.T) {
	snapshot := []models.Task{
		incomplete("A", 10, 1),
		incomplete("B", 50, 2),
	}
	tasks, prio := Place(snapshot, incomplete("C", 30, 0))
	if prio != 2 {
		t.Fatalf("C placed at %d, want 2", prio)
	}
	assertPriorities(t, tasks, map[string]int{"A": 1, "C": 2, "B": 3})
}

func TestPlaceAtEndWhenSlowest(t *testing.T) {
	snapshot := []models.Task{
		incomplete("A", 10, 1),
		incomplete("B", 50, 2),
	}
	tasks, prio := Place(snapshot, incomplete("C", 50, 0))
	if prio != 3 {
		t.Fatalf("C placed at %d, want 3 (remaining hours equal to the last task)", prio)
	}
	assertContiguous(t, tasks)
}

func TestPlaceCompactsDeleteGap(t *testing.T) {
	// A delete left {A:1, C:3}; the next placement renumbers the survivors.
	snapshot := []models.Task{
		incomplete("A", 10, 1),
		incomplete("C", 30, 3),
	}
	tasks, prio := Place(snapshot, complete("D", 0))
	if prio != 3 {
		t.Fatalf("D placed at %d, want 3", prio)
	}
	assertPriorities(t, tasks, map[string]int{"A": 1, "C": 2, "D": 3})
}

func TestPlaceDoesNotMutateSnapshot(t *testing.T) {
	snapshot := []models.Task{incomplete("A", 10, 1)}
	Place(snapshot, incomplete("B", 5, 0))
	if snapshot[0].Priority != 1 {
		t.Errorf("snapshot mutated: A now has priority %d", snapshot[0].Priority)
	}
}

func TestReorderAfterStatusChange(t *testing.T) {
	// A was just marked complete; B stays incomplete, C was already complete.
	snapshot := []models.Task{
		{ID: "A", Status: models.StatusComplete, RemainingHours: 10, Priority: 1},
		incomplete("B", 5, 2),
		complete("C", 3),
	}
	tasks := Reorder(snapshot, "A")
	assertPriorities(t, tasks, map[string]int{"B": 1, "C": 2, "A": 3})
	assertContiguous(t, tasks)
}

func TestReorderReopenedTaskRejoinsByUrgency(t *testing.T) {
	snapshot := []models.Task{
		incomplete("B", 50, 1),
		{ID: "A", Status: models.StatusIncomplete, RemainingHours: 5, Priority: 2},
		complete("C", 3),
	}
	tasks := Reorder(snapshot, "A")
	assertPriorities(t, tasks, map[string]int{"A": 1, "B": 2, "C": 3})
}

func TestReorderKeepsCompleteRelativeOrder(t *testing.T) {
	snapshot := []models.Task{
		complete("X", 2),
		complete("Y", 4),
		incomplete("B", 5, 1),
		complete("Z", 3),
	}
	tasks := Reorder(snapshot, "B")
	// Complete tasks keep their previous relative order X < Z < Y.
	assertPriorities(t, tasks, map[string]int{"B": 1, "X": 2, "Z": 3, "Y": 4})
}
