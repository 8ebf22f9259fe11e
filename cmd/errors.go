/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephgoksu/smarttask/types"
	"github.com/spf13/viper"
)

// PrintError prints an error message without exiting, allowing for recovery.
// It prints a user-friendly message by default; if the --verbose flag is
// set, it prints the full technical error instead.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// LogError logs an error to stderr only when verbose mode is on.
func LogError(msg string, err error) {
	if viper.GetBool("verbose") {
		if err != nil {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, err)
		} else {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)
		}
	}
}

// warnIfPersistence reports whether err is a durable-store failure. If so it
// prints a warning and the caller should treat the operation as successful:
// the in-memory change stands and the next successful mutation re-mirrors
// the full task set.
func warnIfPersistence(err error) bool {
	var perr *types.PersistenceError
	if errors.As(err, &perr) {
		PrintError("Warning: the change is in effect but could not be saved; it will be retried on the next change.", err)
		return true
	}
	return false
}
