/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks in priority order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := getManager()
		if err != nil {
			return err
		}
		defer func() { _ = mgr.Close() }()

		out := cmd.OutOrStdout()

		tasks := mgr.List()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks found. Add one with 'smarttask add'.")
			return nil
		}

		table := ui.Table{
			Headers:  []string{"Priority", "ID", "Description", "Deadline", "Category", "Status"},
			MaxWidth: 40,
		}
		for _, t := range tasks {
			table.Rows = append(table.Rows, []string{
				strconv.Itoa(t.Priority),
				t.ID,
				t.Description,
				t.DeadlineDetails,
				t.Category,
				string(t.Status),
			})
		}

		fmt.Fprint(out, table.Render())
		fmt.Fprintf(out, "\n%d task(s).\n", len(tasks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
