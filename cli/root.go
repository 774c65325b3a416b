// Package cli implements the taskcli command tree over the task use cases.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	domain "github.com/example/task-hub/domain/task"
	"github.com/example/task-hub/modules/task"
	"github.com/example/task-hub/storage"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Opener opens the database the commands work against.
type Opener func() (*gorm.DB, error)

// env holds the database for one command invocation.
type env struct {
	open Opener
	db   *gorm.DB
}

func (e *env) repository() (domain.Repository, error) {
	if e.db == nil {
		db, err := e.open()
		if err != nil {
			return nil, err
		}
		if err := task.AutoMigrate(db); err != nil {
			_ = storage.Close(db)
			return nil, err
		}
		e.db = db
	}
	return task.NewGormRepository(e.db), nil
}

func (e *env) close() error {
	if e.db == nil {
		return nil
	}
	err := storage.Close(e.db)
	e.db = nil
	return err
}

// newRootCommand builds the taskcli command tree.
func newRootCommand(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskcli",
		Short:         "Manage tasks from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCreateCommand(e),
		newListCommand(e),
		newCompleteCommand(e),
	)
	return root
}

// Execute runs taskcli with args, writing command output to out.
func Execute(ctx context.Context, open Opener, args []string, out io.Writer) error {
	e := &env{open: open}
	root := newRootCommand(e)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	runErr := root.ExecuteContext(ctx)
	closeErr := e.close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close database: %w", closeErr)
	}
	return nil
}

// missingTaskID returns the id carried by a not-found error.
func missingTaskID(err error) (string, bool) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.ID, true
	}
	return "", false
}
