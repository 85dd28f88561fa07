package core

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/geurime/geurime-tui/internal/database/repository"
	"github.com/geurime/geurime-tui/internal/route"
)

const recordTimeout = 2 * time.Second

// VisitRecorder stores navigations. repository.VisitRepo satisfies it.
type VisitRecorder interface {
	Record(ctx context.Context, v repository.Visit) (repository.Visit, error)
}

func (m Model) recordVisit(r route.Route, src route.Source) tea.Cmd {
	if m.visits == nil {
		return nil
	}
	rec, session := m.visits, m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		v, err := rec.Record(ctx, repository.Visit{
			SessionID: session,
			Route:     string(r),
			Source:    string(src),
		})
		if err != nil {
			err = fmt.Errorf("record visit to %s: %w", r, err)
		}
		return VisitRecordedMsg{Visit: v, Err: err}
	}
}
