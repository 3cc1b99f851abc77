package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/board"
)

// Run starts the interactive board on the alt screen and blocks until the user quits.
func Run(st *board.Store, opts Options) error {
	applyThemePreference()
	applyColorProfilePreference()

	_, err := tea.NewProgram(New(st, opts), tea.WithAltScreen()).Run()
	return err
}
