package core

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/geurime/geurime-tui/internal/reveal"
	"github.com/geurime/geurime-tui/internal/route"
	"github.com/geurime/geurime-tui/nav"
	"github.com/geurime/geurime-tui/pages"
)

type Options struct {
	Pages     []pages.Page
	Keys      *KeyRegistry
	Labels    pages.Translator
	Visits    VisitRecorder // nil disables visit recording
	SessionID string
	Zones     *zone.Manager
	Reveal    *reveal.Animator
	Start     route.Route
	Logger    *slog.Logger
}

type Model struct {
	width     int
	height    int
	nav       nav.Model
	pages     map[route.Route]pages.Page
	history   History
	keys      *KeyRegistry
	labels    pages.Translator
	visits    VisitRecorder
	session   string
	status    string
	statusErr bool
	quitting  bool
	zones     *zone.Manager
	log       *slog.Logger
}

func NewModel(opts Options) Model {
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Start == "" {
		opts.Start = route.Main
	}
	m := Model{
		pages:   make(map[route.Route]pages.Page, len(opts.Pages)),
		keys:    opts.Keys,
		labels:  opts.Labels,
		visits:  opts.Visits,
		session: opts.SessionID,
		zones:   opts.Zones,
		log:     opts.Logger,
		width:   100,
		height:  32,
	}
	for _, p := range opts.Pages {
		if p != nil {
			m.pages[p.Route()] = p
		}
	}
	m.nav = nav.New(nav.Config{
		Labels: opts.Labels,
		Keys:   opts.Keys,
		Zones:  opts.Zones,
		Reveal: opts.Reveal,
		Logger: opts.Logger,
	})
	m.nav.SetSize(m.width, m.height)
	m.history.Push(opts.Start)
	m.status = m.t("StatusReady")
	return m
}

// Init mounts the navigation bar and opens the start page.
func (m Model) Init() tea.Cmd {
	cur := m.history.Current()
	cmds := []tea.Cmd{m.nav.Init()}
	if p, ok := m.pages[cur]; ok {
		cmds = append(cmds, tea.Sequence(m.recordVisit(cur, route.SourceStart), p.Init()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// ActiveScope is the key scope of the navigation bar: ScopeBar or ScopeMenu.
func (m Model) ActiveScope() string {
	return m.nav.Scope()
}

func (m Model) Current() route.Route { return m.history.Current() }

func (m Model) History() []route.Route { return m.history.Entries() }

func (m Model) Nav() nav.Model { return m.nav }

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) activePage() pages.Page {
	return m.pages[m.history.Current()]
}

func (m Model) t(id string) string {
	if m.labels == nil {
		return id
	}
	return m.labels.T(id)
}
