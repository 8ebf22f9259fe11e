/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/josephgoksu/smarttask/types"
	"github.com/spf13/cobra"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <task_id>",
	Short: "Find a task by its ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer func() { _ = mgr.Close() }()

		out := cmd.OutOrStdout()

		task, err := mgr.Find(args[0])
		if err != nil {
			if errors.Is(err, types.ErrTaskNotFound) {
				fmt.Fprintln(out, "Task not found.")
				return nil
			}
			return err
		}

		fmt.Fprintln(out, ui.StyleTitle.Render("Found Task:"))
		fmt.Fprintf(out, "ID:          %s\n", task.ID)
		fmt.Fprintf(out, "Description: %s\n", task.Description)
		fmt.Fprintf(out, "Deadline:    %s\n", task.DeadlineDetails)
		fmt.Fprintf(out, "Priority:    %d\n", task.Priority)
		fmt.Fprintf(out, "Category:    %s\n", task.Category)
		fmt.Fprintf(out, "Status:      %s\n", ui.StatusStyle(string(task.Status)).Render(string(task.Status)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
