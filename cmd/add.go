/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
)

var (
	addDescription string
	addCategory    string
	addComplete    bool
	addYears       int
	addMonths      int
	addDays        int
	addHours       int
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [task_id]",
	Short: "Add a task",
	Long: `Add a task with a remaining-time deadline. The years/months/days/hours you
enter are collapsed into a single hour count once, at entry (1 year = 365
days, 1 month = 30 days); the task's rank among incomplete tasks follows
that snapshot and is not re-derived from the clock later.

If no ID is given, one is generated.

Examples:
  smarttask add groceries --description "Buy groceries" --days 2
  smarttask add --description "Renew passport" --category admin --months 3
  smarttask add old-chore --description "Already done" --complete`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id string
		if len(args) > 0 {
			id = args[0]
		} else {
			id = uuid.NewString()
		}

		if addYears < 0 || addMonths < 0 || addDays < 0 || addHours < 0 {
			return fmt.Errorf("invalid input: deadline values must be non-negative")
		}

		status := models.StatusIncomplete
		if addComplete {
			status = models.StatusComplete
		}

		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer func() { _ = mgr.Close() }()

		deadline := models.Deadline{Years: addYears, Months: addMonths, Days: addDays, Hours: addHours}
		task, err := mgr.Insert(id, addDescription, addCategory, status, deadline)
		if err != nil && !warnIfPersistence(err) {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Task %q added with priority %d.\n", task.ID, task.Priority)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "task description")
	addCmd.Flags().StringVar(&addCategory, "category", "", "task category")
	addCmd.Flags().BoolVar(&addComplete, "complete", false, "enter the task as already completed (no deadline)")
	addCmd.Flags().IntVar(&addYears, "years", 0, "remaining years until the deadline")
	addCmd.Flags().IntVar(&addMonths, "months", 0, "remaining months until the deadline")
	addCmd.Flags().IntVar(&addDays, "days", 0, "remaining days until the deadline")
	addCmd.Flags().IntVar(&addHours, "hours", 0, "remaining hours until the deadline")
}
