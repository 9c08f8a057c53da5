package cli

import (
	"time"

	"taskspark/internal/store"
	"taskspark/internal/tasks"
	"taskspark/internal/taskutil"

	"github.com/spf13/cobra"
)

// taskFields collects the shared add/edit flags and normalizes them into
// tasks.Fields. Title validation itself stays in the tasks package.
type taskFlags struct {
	title       string
	description string
	due         string
	priority    string
	category    string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Task title (required, non-empty)")
	cmd.Flags().StringVar(&f.description, "description", "", "Task description")
	cmd.Flags().StringVar(&f.due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.priority, "priority", "", "Priority (low|medium|high; default medium)")
	cmd.Flags().StringVar(&f.category, "category", "", "Category label (default \"Other\")")
}

func (f *taskFlags) fields() (tasks.Fields, error) {
	prio, err := taskutil.NormalizePriority(f.priority)
	if err != nil {
		return tasks.Fields{}, err
	}
	due, err := taskutil.NormalizeDueDate(f.due)
	if err != nil {
		return tasks.Fields{}, err
	}
	return tasks.Fields{
		Title:       f.title,
		Description: f.description,
		DueDate:     due,
		Priority:    prio,
		Category:    f.category,
	}, nil
}

func newAddCmd(app *App) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task (prepended to the collection)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			user, err := currentUser(cmd, app, s)
			if err != nil {
				return writeErr(cmd, err)
			}
			f, err := flags.fields()
			if err != nil {
				return writeErr(cmd, err)
			}

			list, err := s.LoadTasks(cmd.Context(), user)
			if err != nil {
				return writeErr(cmd, err)
			}
			list, res, err := tasks.Add(list, f, store.NewTaskID(), time.Now())
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.SaveTasks(cmd.Context(), user, list); err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendEvent(cmd.Context(), user, "task.create", res.Task.ID, res.EventPayload); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, res.Task)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var filterStr string
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in display order (filter + search + sort)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			user, err := currentUser(cmd, app, s)
			if err != nil {
				return writeErr(cmd, err)
			}
			filter, err := taskutil.NormalizeFilter(filterStr)
			if err != nil {
				return writeErr(cmd, err)
			}

			list, err := s.LoadTasks(cmd.Context(), user)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, tasks.DeriveView(list, filter, search))
		},
	}

	cmd.Flags().StringVar(&filterStr, "filter", "all", "Status filter (all|pending|completed)")
	cmd.Flags().StringVar(&search, "search", "", "Substring match over title/description/category")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			user, err := currentUser(cmd, app, s)
			if err != nil {
				return writeErr(cmd, err)
			}
			list, err := s.LoadTasks(cmd.Context(), user)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, ok := tasks.Find(list, args[0])
			if !ok {
				return writeErr(cmd, errNotFound("task", args[0]))
			}
			return writeOut(cmd, app, t)
		},
	}
	return cmd
}

func newToggleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "toggle <task-id>",
		Aliases: []string{"done"},
		Short:   "Flip a task's completed flag",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			user, err := currentUser(cmd, app, s)
			if err != nil {
				return writeErr(cmd, err)
			}
			list, err := s.LoadTasks(cmd.Context(), user)
			if err != nil {
				return writeErr(cmd, err)
			}
			list, res := tasks.ToggleComplete(list, args[0])
			if !res.Changed {
				return writeErr(cmd, errNotFound("task", args[0]))
			}
			if err := s.SaveTasks(cmd.Context(), user, list); err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendEvent(cmd.Context(), user, "task.toggle", res.Task.ID, res.EventPayload); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, res.Task)
		},
	}
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Replace a task's mutable fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			user, err := currentUser(cmd, app, s)
			if err != nil {
				return writeErr(cmd, err)
			}
			f, err := flags.fields()
			if err != nil {
				return writeErr(cmd, err)
			}

			list, err := s.LoadTasks(cmd.Context(), user)
			if err != nil {
				return writeErr(cmd, err)
			}
			list, res, err := tasks.Edit(list, args[0], f)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !res.Changed {
				return writeErr(cmd, errNotFound("task", args[0]))
			}
			if err := s.SaveTasks(cmd.Context(), user, list); err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendEvent(cmd.Context(), user, "task.edit", res.Task.ID, res.EventPayload); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, res.Task)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <task-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			user, err := currentUser(cmd, app, s)
			if err != nil {
				return writeErr(cmd, err)
			}
			list, err := s.LoadTasks(cmd.Context(), user)
			if err != nil {
				return writeErr(cmd, err)
			}
			list, res := tasks.Delete(list, args[0])
			if !res.Changed {
				return writeErr(cmd, errNotFound("task", args[0]))
			}
			if err := s.SaveTasks(cmd.Context(), user, list); err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendEvent(cmd.Context(), user, "task.delete", res.Task.ID, res.EventPayload); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": res.Task.ID})
		},
	}
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show counts, completion percentage and overdue tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			user, err := currentUser(cmd, app, s)
			if err != nil {
				return writeErr(cmd, err)
			}
			list, err := s.LoadTasks(cmd.Context(), user)
			if err != nil {
				return writeErr(cmd, err)
			}
			counts := tasks.CountsOf(list)
			return writeOut(cmd, app, map[string]any{
				"counts":               counts,
				"overdue":              tasks.OverdueCount(list, time.Now()),
				"completionPercentage": tasks.CompletionPercentage(counts),
			})
		},
	}
	return cmd
}
