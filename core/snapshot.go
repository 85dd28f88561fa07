package core

import tea "github.com/charmbracelet/bubbletea"

// Snapshot renders one frame of m at the given size without starting a
// program. Commands are not run, so pages show their pre-load state.
func Snapshot(m Model, width, height int) string {
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.(Model).View()
}
