package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// execute runs the root command with the given args and returns its combined
// output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	b := bytes.NewBufferString("")
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return b.String(), err
}

// useTempProject points the config at a throwaway data directory so tests
// never touch a real database.
func useTempProject(t *testing.T) {
	t.Helper()
	viper.Set("project.rootDir", t.TempDir())
}

func TestAddCmd(t *testing.T) {
	useTempProject(t)

	out, err := execute(t, "add", "T1", "--description", "write report", "--category", "work",
		"--years", "0", "--months", "0", "--days", "1", "--hours", "0")
	assert.NoError(t, err)
	assert.Contains(t, out, `Task "T1" added with priority 1.`)

	// A more urgent task takes over priority 1.
	out, err = execute(t, "add", "T2", "--description", "urgent errand", "--category", "home",
		"--years", "0", "--months", "0", "--days", "0", "--hours", "3")
	assert.NoError(t, err)
	assert.Contains(t, out, `Task "T2" added with priority 1.`)
}

func TestAddCmdDuplicateID(t *testing.T) {
	useTempProject(t)

	_, err := execute(t, "add", "T1", "--description", "first", "--category", "",
		"--years", "0", "--months", "0", "--days", "0", "--hours", "1")
	assert.NoError(t, err)

	_, err = execute(t, "add", "T1", "--description", "second", "--category", "",
		"--years", "0", "--months", "0", "--days", "0", "--hours", "2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAddCmdGeneratesID(t *testing.T) {
	useTempProject(t)

	out, err := execute(t, "add", "--description", "no id given", "--category", "",
		"--years", "0", "--months", "0", "--days", "0", "--hours", "1")
	assert.NoError(t, err)
	assert.Contains(t, out, "added with priority 1.")
}
