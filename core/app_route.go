package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/geurime/geurime-tui/internal/route"
	"github.com/geurime/geurime-tui/pages"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.nav.SetSize(msg.Width, msg.Height)
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case route.NavigateMsg:
		return m, m.navigate(msg.Route, msg.Source)
	case route.BackMsg:
		return m, m.back()
	case VisitRecordedMsg:
		if msg.Err != nil {
			m.log.Error("record visit", "err", msg.Err)
			m.SetError(msg.Err)
		}
		return m, nil
	case pages.VisitsLoadedMsg:
		cmd := m.updatePage(msg)
		if msg.Err != nil {
			m.log.Error("load visits", "err", msg.Err)
			return m, tea.Batch(cmd, ErrorCmd(msg.Err))
		}
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if handled, cmd := m.nav.HandleKey(msg); handled {
			return m, cmd
		}
		if m.keys.IsAction(msg, "back", scope) {
			return m, route.Back()
		}
		return m, m.updatePage(msg)
	case tea.MouseMsg:
		if handled, cmd := m.nav.HandleMouse(msg); handled {
			return m, cmd
		}
		if m.nav.MenuOpen() {
			return m, nil
		}
		return m, m.updatePage(msg)
	}

	return m, tea.Batch(m.nav.Update(msg), m.updatePage(msg))
}

// navigate shows the page for r. Navigating to the current route reloads it
// without growing the history.
func (m *Model) navigate(r route.Route, src route.Source) tea.Cmd {
	parsed, err := route.Parse(string(r))
	if err != nil {
		m.log.Warn("navigate", "route", r, "err", err)
		m.SetError(err)
		return nil
	}
	r = parsed
	p, ok := m.pages[r]
	if !ok {
		err := fmt.Errorf("no page registered for %s", r)
		m.log.Warn("navigate", "route", r, "err", err)
		m.SetError(err)
		return nil
	}
	m.history.Push(r)
	m.log.Info("navigate", "route", r, "source", src, "depth", m.history.Len())
	m.SetStatus(m.navigatedStatus(p.Title()))
	return tea.Sequence(m.recordVisit(r, src), p.Init())
}

func (m *Model) back() tea.Cmd {
	r, ok := m.history.Pop()
	if !ok {
		return StatusCmd(m.t("StatusBackEmpty"))
	}
	p, ok := m.pages[r]
	if !ok {
		return nil
	}
	m.log.Info("navigate", "route", r, "source", route.SourceBack, "depth", m.history.Len())
	m.SetStatus(m.navigatedStatus(p.Title()))
	return tea.Sequence(m.recordVisit(r, route.SourceBack), p.Init())
}

func (m Model) updatePage(msg tea.Msg) tea.Cmd {
	p := m.activePage()
	if p == nil {
		return nil
	}
	return p.Update(msg)
}

func (m Model) navigatedStatus(title string) string {
	if m.labels == nil {
		return "StatusNavigated"
	}
	return m.labels.Tf("StatusNavigated", map[string]any{"Route": title})
}
