package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListCmdEmpty(t *testing.T) {
	useTempProject(t)

	out, err := execute(t, "list")
	assert.NoError(t, err)
	assert.Contains(t, out, "No tasks found")
}

func TestListCmdShowsPriorityOrder(t *testing.T) {
	useTempProject(t)

	_, err := execute(t, "add", "slow", "--description", "later task", "--category", "misc",
		"--years", "0", "--months", "0", "--days", "2", "--hours", "0")
	assert.NoError(t, err)
	_, err = execute(t, "add", "fast", "--description", "sooner task", "--category", "misc",
		"--years", "0", "--months", "0", "--days", "1", "--hours", "0")
	assert.NoError(t, err)

	out, err := execute(t, "list")
	assert.NoError(t, err)
	assert.Contains(t, out, "fast")
	assert.Contains(t, out, "slow")
	assert.Contains(t, out, "2 task(s).")
	// The more urgent task is listed first.
	assert.Less(t, strings.Index(out, "fast"), strings.Index(out, "slow"))
}

func TestDoneCmdReordersPriorities(t *testing.T) {
	useTempProject(t)

	_, err := execute(t, "add", "A", "--description", "a", "--category", "",
		"--years", "0", "--months", "0", "--days", "0", "--hours", "10")
	assert.NoError(t, err)
	_, err = execute(t, "add", "B", "--description", "b", "--category", "",
		"--years", "0", "--months", "0", "--days", "0", "--hours", "5")
	assert.NoError(t, err)

	out, err := execute(t, "done", "A")
	assert.NoError(t, err)
	assert.Contains(t, out, `Task "A" is now complete (priority 2).`)

	out, err = execute(t, "reopen", "A")
	assert.NoError(t, err)
	assert.Contains(t, out, `Task "A" is now incomplete (priority 2).`)
}

func TestFindCmd(t *testing.T) {
	useTempProject(t)

	_, err := execute(t, "add", "T9", "--description", "findable", "--category", "work",
		"--years", "0", "--months", "0", "--days", "0", "--hours", "4")
	assert.NoError(t, err)

	out, err := execute(t, "find", "T9")
	assert.NoError(t, err)
	assert.Contains(t, out, "T9")
	assert.Contains(t, out, "findable")

	out, err = execute(t, "find", "ghost")
	assert.NoError(t, err)
	assert.Contains(t, out, "Task not found.")
}
