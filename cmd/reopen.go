/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
)

// reopenCmd represents the reopen command
var reopenCmd = &cobra.Command{
	Use:   "reopen [task_id]",
	Short: "Mark a completed task as incomplete again",
	Long: `Mark a completed task as incomplete. The task rejoins the incomplete set
ranked by the remaining-hours snapshot taken when it was first entered, and
every priority is re-assigned. If no ID is provided, an interactive list of
completed tasks is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatusChange(cmd, args, models.StatusIncomplete, "Select task to reopen")
	},
}

func init() {
	rootCmd.AddCommand(reopenCmd)
}
