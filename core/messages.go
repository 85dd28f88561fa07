package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/geurime/geurime-tui/internal/database/repository"
)

// StatusMsg replaces the footer status line.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// VisitRecordedMsg reports the outcome of storing one navigation.
type VisitRecordedMsg struct {
	Visit repository.Visit
	Err   error
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// ErrorCmd reports err on the status line. A nil err clears it.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
