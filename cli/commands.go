package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	domain "github.com/example/task-hub/domain/task"
	"github.com/example/task-hub/modules/task"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newCreateCommand(e *env) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := e.repository()
			if err != nil {
				return err
			}

			created, err := task.NewCreateTaskUseCase(repo).Execute(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Task created successfully! ID: %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	return cmd
}

func newListCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"list-tasks"},
		Short:   "List all tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := e.repository()
			if err != nil {
				return err
			}

			tasks, err := task.NewGetTasksUseCase(repo).Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTitle\tStatus")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Title, t.Status)
			}
			return w.Flush()
		},
	}
}

func newCompleteCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			id, err := uuid.Parse(args[0])
			if err != nil {
				fmt.Fprintln(out, "Invalid UUID format.")
				return nil
			}
			taskID := id.String()

			repo, err := e.repository()
			if err != nil {
				return err
			}

			useCase := task.NewCompleteTaskUseCase(repo, task.WithEventPublisher(consolePublisher{out: out}))
			if _, err := useCase.Execute(cmd.Context(), taskID); err != nil {
				if id, ok := missingTaskID(err); ok {
					fmt.Fprintf(out, "Task with ID %s not found.\n", id)
					return nil
				}
				return err
			}

			fmt.Fprintf(out, "Task %s completed!\n", taskID)
			return nil
		},
	}
}

// consolePublisher prints completion events to the terminal.
type consolePublisher struct {
	out io.Writer
}

var _ domain.EventPublisher = consolePublisher{}

func (p consolePublisher) PublishCompleted(_ context.Context, t *domain.Task) {
	fmt.Fprintf(p.out, "EVENT: Task '%s' was completed!\n", t.Title)
}
