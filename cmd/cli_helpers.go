/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/smarttask/app"
	"github.com/josephgoksu/smarttask/models"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// selectTaskInteractive presents a prompt to the user to select a task from
// the current priority order, optionally filtered.
func selectTaskInteractive(mgr *app.Manager, filterFn func(models.Task) bool, label string) (models.Task, error) {
	var tasks []models.Task
	for _, t := range mgr.List() {
		if filterFn == nil || filterFn(t) {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == 0 {
		return models.Task{}, ErrNoTasksFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .ID | cyan }} (Priority: {{ .Priority }}, {{ .Description }})`,
		Inactive: `  {{ .ID | faint }} (Priority: {{ .Priority }}, {{ .Description }})`,
		Selected: `{{ "✔" | green }} {{ .ID | faint }}`,
		Details: `
--------- Task Details ----------
{{ "ID:\t" | faint }} {{ .ID }}
{{ "Description:\t" | faint }} {{ .Description }}
{{ "Deadline:\t" | faint }} {{ .DeadlineDetails }}
{{ "Category:\t" | faint }} {{ .Category }}
{{ "Status:\t" | faint }} {{ .Status }}`,
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     tasks,
		Templates: templates,
		Size:      10,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return models.Task{}, err
	}
	return tasks[i], nil
}

// runStatusChange drives the done and reopen commands: resolve the target
// task (argument or interactive pick), flip its status and report the
// re-assigned priority.
func runStatusChange(cmd *cobra.Command, args []string, target models.TaskStatus, label string) error {
	mgr, err := getManager()
	if err != nil {
		return err
	}
	defer func() { _ = mgr.Close() }()

	out := cmd.OutOrStdout()

	var id string
	if len(args) > 0 {
		id = args[0]
	} else {
		selected, err := selectTaskInteractive(mgr, func(t models.Task) bool { return t.Status != target }, label)
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			if errors.Is(err, ErrNoTasksFound) {
				fmt.Fprintln(out, "No matching tasks.")
				return nil
			}
			return fmt.Errorf("task selection failed: %w", err)
		}
		id = selected.ID
	}

	task, err := mgr.ChangeStatus(id, target)
	if err != nil && !warnIfPersistence(err) {
		return err
	}

	fmt.Fprintf(out, "Task %q is now %s (priority %d). Priorities re-assigned.\n", task.ID, task.Status, task.Priority)
	return nil
}
