package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the possible statuses of a task.
type TaskStatus string

const (
	StatusIncomplete TaskStatus = "incomplete"
	StatusComplete   TaskStatus = "complete"
)

// Fixed conversion factors for deadline arithmetic. A month is always 30
// days and a year 365 days, regardless of the calendar.
const (
	hoursPerDay   = 24
	hoursPerMonth = 30 * hoursPerDay
	hoursPerYear  = 365 * hoursPerDay
)

// Deadline is the remaining time a user enters for a task. It is collapsed
// into an absolute hour count exactly once, when the task is created; the
// count is never re-derived from the wall clock afterwards.
type Deadline struct {
	Years  int `validate:"min=0"`
	Months int `validate:"min=0"`
	Days   int `validate:"min=0"`
	Hours  int `validate:"min=0"`
}

// TotalHours collapses the tuple into a single hour count.
func (d Deadline) TotalHours() int64 {
	return int64(d.Years)*hoursPerYear +
		int64(d.Months)*hoursPerMonth +
		int64(d.Days)*hoursPerDay +
		int64(d.Hours)
}

// String renders the human-readable form shown in listings. The hour part
// only appears when years, months and days are all zero.
func (d Deadline) String() string {
	s := fmt.Sprintf("%d year(s), %d month(s), %d day(s)", d.Years, d.Months, d.Days)
	if d.Years == 0 && d.Months == 0 && d.Days == 0 {
		s += fmt.Sprintf(", %d hour(s)", d.Hours)
	}
	return s
}

// Task represents a single task record. Priority is an integer rank, lower
// value first; the assignment pass keeps priorities unique and contiguous
// (1..N) across all tasks after every insert or status change.
type Task struct {
	ID              string     `json:"id" validate:"required"`
	Description     string     `json:"description,omitempty"`
	Category        string     `json:"category,omitempty"`
	Status          TaskStatus `json:"status" validate:"required,oneof=incomplete complete"`
	Priority        int        `json:"priority" validate:"min=0"`
	RemainingHours  int64      `json:"remainingHours" validate:"min=0"`
	DeadlineDetails string     `json:"deadlineDetails,omitempty"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}

// NewTask builds a task with its remaining-hours snapshot and display string
// computed from the deadline. Tasks entered as already complete carry no
// deadline. Priority is assigned later, by the placement pass.
func NewTask(id, description, category string, status TaskStatus, d Deadline) Task {
	task := Task{
		ID:          id,
		Description: description,
		Category:    category,
		Status:      status,
	}
	if status == StatusComplete {
		task.DeadlineDetails = "N/A"
	} else {
		task.RemainingHours = d.TotalHours()
		task.DeadlineDetails = d.String()
	}
	return task
}
