// Package tui runs the live watch-mode dashboard.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"engagedeck/modules/core/state"
)

// Run starts watch mode: the dashboard redraws on a fixed refresh
// interval until the user quits.
func Run(store *state.Store, refresh time.Duration) error {
	p := tea.NewProgram(NewModel(store, refresh), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch mode failed: %w", err)
	}
	return nil
}
