package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tasktrack/internal/model"
)

func newListCmd(app *App) *cobra.Command {
	var (
		page      int
		limit     int
		completed string
		sortOrder string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := model.ListOptions{Page: page, Limit: limit, Sort: sortOrder}
			switch completed {
			case "true":
				v := true
				opts.Completed = &v
			case "false":
				v := false
				opts.Completed = &v
			case "":
			default:
				return fmt.Errorf("--completed must be true or false")
			}

			result, err := app.client().ListTasks(cmd.Context(), opts)
			if err != nil {
				return err
			}
			for _, t := range result.Tasks {
				box := "[ ]"
				if t.Completed {
					box = "[x]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", box, t.ID, t.Title)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "page %d/%d (%d total)\n", result.Page, result.TotalPages, result.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", model.DefaultPage, "Page number")
	cmd.Flags().IntVar(&limit, "limit", model.DefaultLimit, "Tasks per page")
	cmd.Flags().StringVar(&completed, "completed", "", "Filter by completion (true|false)")
	cmd.Flags().StringVar(&sortOrder, "sort", model.SortLatest, "Sort order (latest|oldest)")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			task, err := app.client().CreateTask(cmd.Context(), title)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", task.ID)
			return nil
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Flip a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.client().ToggleTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			state := "open"
			if task.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", task.ID, state)
			return nil
		},
	}
}

func newRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title...>",
		Short: "Replace a task's title",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.client().RenameTask(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "renamed %s to %q\n", task.ID, task.Title)
			return nil
		},
	}
}

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client().DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
