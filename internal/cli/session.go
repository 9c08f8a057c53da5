package cli

import (
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Start a session as the given username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			u, err := s.Login(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendEvent(cmd.Context(), u, "session.login", u, nil); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"username": u})
		},
	}
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session (task collections are kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			u, ok, err := s.CurrentUser(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Logout(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			if ok {
				if err := s.AppendEvent(cmd.Context(), u, "session.logout", u, nil); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, map[string]any{"loggedOut": ok})
		},
	}
	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			u, err := currentUser(cmd, app, s)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"username": u})
		},
	}
	return cmd
}
