package nav

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/geurime/geurime-tui/internal/reveal"
	"github.com/geurime/geurime-tui/internal/route"
)

const (
	// ScopeBar is the key scope while the overlay is closed.
	ScopeBar = "nav"
	// ScopeMenu is the key scope while the overlay is open.
	ScopeMenu = "nav:menu"

	// BarHeight is the number of rows the bar occupies: a rule plus icon and label rows.
	BarHeight = 3
)

// KeyMatcher resolves a key press to a named action within a scope.
type KeyMatcher interface {
	IsAction(msg tea.KeyMsg, action, scope string) bool
}

// Labeler resolves message IDs to display text.
type Labeler interface {
	T(id string) string
}

type Config struct {
	Labels Labeler
	Keys   KeyMatcher
	Zones  *zone.Manager
	Hits   HitTester        // overrides zone based hit testing of the bar
	Reveal *reveal.Animator // nil disables the entrance animation
	Logger *slog.Logger
}

type Model struct {
	actions  []Action
	options  []Option
	selected int
	menu     Menu
	width    int
	height   int
	labels   Labeler
	keys     KeyMatcher
	zones    *zone.Manager
	prefix   string
	hits     HitTester
	reveal   *reveal.Animator
	log      *slog.Logger
}

func New(cfg Config) Model {
	m := Model{
		actions: Actions(),
		options: MenuOptions(),
		labels:  cfg.Labels,
		keys:    cfg.Keys,
		zones:   cfg.Zones,
		prefix:  "nav-",
		hits:    cfg.Hits,
		reveal:  cfg.Reveal,
		log:     cfg.Logger,
	}
	if m.zones != nil {
		m.prefix = m.zones.NewPrefix()
	}
	if m.hits == nil {
		m.hits = zoneHits{zones: m.zones}
	}
	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m
}

// Init enables the overlay entrance animation. It runs once per mount and is
// safe to repeat.
func (m *Model) Init() tea.Cmd {
	if m.reveal != nil {
		m.reveal.Init()
	}
	return nil
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

// Selected is the index of the highlighted action.
func (m Model) Selected() int { return m.selected }

func (m Model) MenuOpen() bool { return m.menu.IsOpen() }

func (m Model) MenuState() MenuState { return m.menu.State() }

func (m Model) Scope() string {
	if m.menu.IsOpen() {
		return ScopeMenu
	}
	return ScopeBar
}

// Activate performs the action at index i. The highlight moves for every
// action, including register.
func (m *Model) Activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.actions) {
		return nil
	}
	m.selected = i
	a := m.actions[i]
	switch a.Kind {
	case KindMenu:
		return m.ShowMenu()
	default:
		m.log.Debug("nav link", "action", a.ID, "route", a.Target)
		return route.Navigate(a.Target, route.SourceNav)
	}
}

func (m *Model) ShowMenu() tea.Cmd {
	if !m.menu.Show() {
		return nil
	}
	m.log.Debug("register menu", "state", m.menu.State())
	if m.reveal == nil {
		return nil
	}
	items := make([]reveal.Item, 0, len(m.options))
	for _, o := range m.options {
		items = append(items, reveal.Item{ID: o.ID, Delay: o.Delay})
	}
	return m.reveal.Start(items...)
}

func (m *Model) DismissMenu() {
	if !m.menu.Dismiss() {
		return
	}
	if m.reveal != nil {
		m.reveal.Reset()
	}
	m.log.Debug("register menu", "state", m.menu.State())
}

// Choose takes overlay option i: it requests navigation to the option's route
// and closes the overlay. It does nothing while the overlay is closed.
func (m *Model) Choose(i int) tea.Cmd {
	if !m.menu.IsOpen() || i < 0 || i >= len(m.options) {
		return nil
	}
	o := m.options[i]
	m.DismissMenu()
	m.log.Debug("register option", "option", o.ID, "route", o.Target)
	return route.Navigate(o.Target, route.SourceMenu)
}

// HandleKey reports whether msg was one of the bar's bindings.
func (m *Model) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.keys == nil {
		return false, nil
	}
	scope := m.Scope()
	if m.menu.IsOpen() {
		for i, o := range m.options {
			if m.keys.IsAction(msg, o.KeyAction(), scope) {
				return true, m.Choose(i)
			}
		}
		if m.keys.IsAction(msg, DismissAction, scope) {
			m.DismissMenu()
			return true, nil
		}
	}
	for i, a := range m.actions {
		if m.keys.IsAction(msg, a.KeyAction(), scope) {
			return true, m.Activate(i)
		}
	}
	return false, nil
}

// HandleMouse resolves a tap. While the overlay is open the options take
// precedence, then the bar, then the backdrop above the bar. Options are
// tested last drawn first, so where buttons overlap the visible one wins.
func (m *Model) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if !isTap(msg) {
		return false, nil
	}
	if m.menu.IsOpen() {
		rects := m.optionRects()
		for i := len(rects) - 1; i >= 0; i-- {
			if rects[i].contains(msg.X, msg.Y) {
				return true, m.Choose(i)
			}
		}
	}
	for i, a := range m.actions {
		if m.hits.Hit(m.zoneID(a), msg) {
			return true, m.Activate(i)
		}
	}
	if m.menu.IsOpen() && msg.Y < m.overlayHeight() {
		m.DismissMenu()
		return true, nil
	}
	return false, nil
}

// Update forwards animation messages.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.reveal == nil {
		return nil
	}
	return m.reveal.Update(msg)
}

func (m Model) zoneID(a Action) string {
	return m.prefix + a.ID
}

// overlayHeight is the number of rows above the bar.
func (m Model) overlayHeight() int {
	return max(0, m.height-BarHeight)
}

func (m Model) label(id string) string {
	if id == "" {
		return ""
	}
	if m.labels == nil {
		return id
	}
	return m.labels.T(id)
}
