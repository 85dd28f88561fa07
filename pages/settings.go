package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/geurime/geurime-tui/internal/database/repository"
	"github.com/geurime/geurime-tui/internal/route"
	"github.com/geurime/geurime-tui/widgets"
)

const (
	loadTimeout = 2 * time.Second

	// stackBelowWidth is the width under which the two sections stack
	// vertically instead of side by side.
	stackBelowWidth = 72

	// historyShare is the percentage of the page the history section gets.
	historyShare = 62
)

// VisitLister reads the navigation history.
type VisitLister interface {
	Recent(ctx context.Context, limit int) ([]repository.Visit, error)
	CountByRoute(ctx context.Context) ([]repository.RouteCount, error)
}

// VisitsLoadedMsg carries the result of a history load.
type VisitsLoadedMsg struct {
	Visits []repository.Visit
	Counts []repository.RouteCount
	Err    error
}

// SettingsPage shows the recent navigation history and the most visited routes.
type SettingsPage struct {
	labels  Translator
	store   VisitLister
	limit   int
	loading bool
	visits  []repository.Visit
	counts  []repository.RouteCount
	err     error
}

func NewSettingsPage(labels Translator, store VisitLister, limit int) *SettingsPage {
	if limit <= 0 {
		limit = 10
	}
	return &SettingsPage{labels: labels, store: store, limit: limit}
}

func (p *SettingsPage) Route() route.Route { return route.Settings }
func (p *SettingsPage) Title() string      { return translate(p.labels, "PageSettingsTitle") }

// Init reloads the history so every visit to the page is current, including
// the visit that opened it.
func (p *SettingsPage) Init() tea.Cmd {
	if p.store == nil {
		return nil
	}
	p.loading = true
	store, limit := p.store, p.limit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		visits, err := store.Recent(ctx, limit)
		if err != nil {
			return VisitsLoadedMsg{Err: fmt.Errorf("load visits: %w", err)}
		}
		counts, err := store.CountByRoute(ctx)
		if err != nil {
			return VisitsLoadedMsg{Err: fmt.Errorf("count visits: %w", err)}
		}
		return VisitsLoadedMsg{Visits: visits, Counts: counts}
	}
}

func (p *SettingsPage) Update(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(VisitsLoadedMsg)
	if !ok {
		return nil
	}
	p.loading = false
	p.err = loaded.Err
	if loaded.Err == nil {
		p.visits = loaded.Visits
		p.counts = loaded.Counts
	}
	return nil
}

func (p *SettingsPage) Loading() bool { return p.loading }

func (p *SettingsPage) View(width, height int) string {
	history := widgets.Box{Title: translate(p.labels, "SettingsHistoryHeading"), Content: p.historyBody()}
	if p.store == nil || len(p.counts) == 0 {
		return history.Render(width, height)
	}
	top := widgets.Box{Title: translate(p.labels, "SettingsTopRoutesHeading"), Content: p.countsBody()}
	if width < stackBelowWidth {
		h := height * historyShare / 100
		lower := top.Render(width, height-h)
		if lower == "" {
			return history.Render(width, height)
		}
		return lipgloss.JoinVertical(lipgloss.Left, history.Render(width, h), lower)
	}
	w := width * historyShare / 100
	return lipgloss.JoinHorizontal(lipgloss.Top, history.Render(w, height), " ", top.Render(width-w-1, height))
}

func (p *SettingsPage) historyBody() string {
	switch {
	case p.store == nil:
		return translate(p.labels, "SettingsHistoryDisabled")
	case p.err != nil:
		return p.err.Error()
	case p.loading && len(p.visits) == 0:
		return translate(p.labels, "SettingsHistoryLoading")
	case len(p.visits) == 0:
		return translate(p.labels, "SettingsHistoryEmpty")
	}
	rows := make([]string, 0, len(p.visits))
	for _, v := range p.visits {
		rows = append(rows, fmt.Sprintf("%s  %-22s %s", v.VisitedAt.Local().Format("01-02 15:04"), v.Route, v.Source))
	}
	return strings.Join(rows, "\n")
}

func (p *SettingsPage) countsBody() string {
	rows := make([]string, 0, len(p.counts))
	for _, c := range p.counts {
		n := fmt.Sprint(c.Count)
		if p.labels != nil {
			n = p.labels.Tf("SettingsVisitCount", map[string]any{"Count": c.Count})
		}
		rows = append(rows, fmt.Sprintf("%-22s %s", c.Route, n))
	}
	return strings.Join(rows, "\n")
}
