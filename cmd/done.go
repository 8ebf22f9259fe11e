/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done [task_id]",
	Short: "Mark a task as complete",
	Long: `Mark a task as complete. The task drops below all incomplete tasks and
every priority is re-assigned to the contiguous range 1..N. If no ID is
provided, an interactive list of incomplete tasks is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatusChange(cmd, args, models.StatusComplete, "Select task to mark as complete")
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
