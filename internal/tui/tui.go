package tui

import (
	"taskspark/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(s store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()
	m := newAppModel(s)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
