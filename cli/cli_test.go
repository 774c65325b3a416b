package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/example/task-hub/config"
	"github.com/example/task-hub/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var createdID = regexp.MustCompile(`Task created successfully! ID: ([0-9a-f-]{36})`)

// fileOpener opens a SQLite file that outlives a single command run.
func fileOpener(t *testing.T) Opener {
	t.Helper()
	url := "sqlite:///" + filepath.Join(t.TempDir(), "tasks.db")
	return func() (*gorm.DB, error) {
		return storage.Open(config.Database{URL: url})
	}
}

func run(t *testing.T, open Opener, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Execute(context.Background(), open, args, &out))
	return out.String()
}

func TestCreateAndList(t *testing.T) {
	open := fileOpener(t)

	out := run(t, open, "create", "Buy milk", "--description", "2 liters")
	match := createdID.FindStringSubmatch(out)
	require.Len(t, match, 2, "unexpected output: %q", out)

	out = run(t, open, "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"ID", "Title", "Status"}, strings.Fields(lines[0]))
	assert.Contains(t, lines[1], match[1])
	assert.Contains(t, lines[1], "Buy milk")
	assert.Contains(t, lines[1], "pending")
}

func TestComplete(t *testing.T) {
	open := fileOpener(t)
	id := createdID.FindStringSubmatch(run(t, open, "create", "Ship release"))[1]

	out := run(t, open, "complete", id)
	assert.Equal(t, "EVENT: Task 'Ship release' was completed!\nTask "+id+" completed!\n", out)

	assert.Contains(t, run(t, open, "list"), "completed")
}

func TestCompleteUppercaseID(t *testing.T) {
	open := fileOpener(t)
	id := createdID.FindStringSubmatch(run(t, open, "create", "Shout"))[1]

	out := run(t, open, "complete", strings.ToUpper(id))
	assert.Contains(t, out, "Task "+id+" completed!")
}

func TestCompleteInvalidUUID(t *testing.T) {
	opened := false
	open := func() (*gorm.DB, error) {
		opened = true
		return nil, errors.New("should not open")
	}

	out := run(t, open, "complete", "not-a-uuid")
	assert.Equal(t, "Invalid UUID format.\n", out)
	assert.False(t, opened)
}

func TestCompleteMissingTask(t *testing.T) {
	open := fileOpener(t)
	missing := "00000000-0000-4000-8000-000000000000"

	out := run(t, open, "complete", missing)
	assert.Equal(t, "Task with ID "+missing+" not found.\n", out)
	assert.NotContains(t, out, "EVENT:")
}

func TestOpenFailure(t *testing.T) {
	open := func() (*gorm.DB, error) {
		return nil, errors.New("database unavailable")
	}

	var out bytes.Buffer
	err := Execute(context.Background(), open, []string{"list"}, &out)
	assert.EqualError(t, err, "database unavailable")
}

func TestCreateRequiresTitle(t *testing.T) {
	var out bytes.Buffer
	err := Execute(context.Background(), fileOpener(t), []string{"create"}, &out)
	assert.Error(t, err)
}
