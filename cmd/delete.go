/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [task_id]",
	Short: "Delete a task",
	Long: `Delete a task by its ID. If no ID is provided, an interactive list is
shown. A confirmation prompt is displayed before deletion. Surviving tasks
keep their priorities; the gap is closed on the next add, done or reopen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer func() { _ = mgr.Close() }()

		out := cmd.OutOrStdout()

		var id string
		if len(args) > 0 {
			id = args[0]
			if _, err := mgr.Find(id); err != nil {
				return fmt.Errorf("failed to retrieve task %s for deletion: %w", id, err)
			}
		} else {
			selected, err := selectTaskInteractive(mgr, nil, "Select task to delete")
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) {
					fmt.Fprintln(out, "Deletion cancelled.")
					return nil
				}
				if errors.Is(err, ErrNoTasksFound) {
					fmt.Fprintln(out, "No tasks available to delete.")
					return nil
				}
				return fmt.Errorf("task selection failed: %w", err)
			}
			id = selected.ID
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Are you sure you want to delete task '%s'?", id),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			// Covers both 'no' (promptui.ErrAbort) and actual prompt errors.
			fmt.Fprintln(out, "Deletion cancelled.")
			return nil
		}

		if err := mgr.Delete(id); err != nil && !warnIfPersistence(err) {
			return err
		}

		fmt.Fprintf(out, "Task %q deleted.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
