package cli

import (
	"fmt"
	"os"
	"strings"

	"taskspark/internal/format"
	"taskspark/internal/store"
	"taskspark/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	User       string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskspark",
		Short:        "TaskSpark: a local task tracker (CLI + dashboard TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  taskspark

  # Scriptable commands
  taskspark login alice
  taskspark add --title "Write report" --due 2024-07-01 --priority high
  taskspark list --filter pending --search report
  taskspark stats
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive dashboard.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKSPARK_DIR", ""), "Path to the data dir (default: ~/.taskspark)")
	cmd.PersistentFlags().StringVar(&app.User, "user", envOr("TASKSPARK_USER", ""), "Username (overrides the persisted session)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newToggleCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newEventsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s, err := loadStore(app)
	if err != nil {
		return err
	}
	return tui.Run(s)
}

func loadStore(app *App) (store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	s := store.Store{Dir: dir}
	if err := s.Ensure(); err != nil {
		return store.Store{}, err
	}
	return s, nil
}

// currentUser resolves the identity that scopes task operations:
// --user/TASKSPARK_USER first, then the persisted session.
func currentUser(cmd *cobra.Command, app *App, s store.Store) (string, error) {
	if u := strings.TrimSpace(app.User); u != "" {
		return u, nil
	}
	u, ok, err := s.CurrentUser(cmd.Context())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errNotLoggedIn()
	}
	return u, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), map[string]any{"data": v}, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
