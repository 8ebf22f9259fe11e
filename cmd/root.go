/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephgoksu/smarttask/app"
	"github.com/josephgoksu/smarttask/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// ErrNoTasksFound is returned when an interactive selection is attempted but no tasks are available.
	ErrNoTasksFound = errors.New("no tasks found matching your criteria")
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "smarttask",
	Short: "smarttask keeps your tasks ranked by how soon they are due.",
	Long: `smarttask is a command line task manager built around a priority index.
Every task gets an integer priority: incomplete tasks are ranked by the
remaining time entered when they were added, completed tasks sink to the
bottom, and priorities always form the contiguous range 1..N.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.smarttask.yaml or $HOME/.smarttask.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetDBPath returns the full path to the SQLite database file.
func GetDBPath() string {
	config := GetConfig()
	return filepath.Join(config.Project.RootDir, config.Data.File)
}

// getManager opens the durable store and loads the priority index from it.
// The caller owns the returned manager and should Close it when done.
func getManager() (*app.Manager, error) {
	s := store.NewSQLiteTaskStore()
	dbPath := GetDBPath()
	if err := s.Initialize(map[string]string{"dbFile": dbPath}); err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", dbPath, err)
	}
	mgr, err := app.NewManager(s)
	if err != nil {
		return nil, fmt.Errorf("failed to load task index: %w", err)
	}
	return mgr, nil
}
