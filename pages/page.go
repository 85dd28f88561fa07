package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/geurime/geurime-tui/internal/route"
	"github.com/geurime/geurime-tui/widgets"
)

// Page is one routed screen. Init runs every time the page becomes active.
type Page interface {
	Route() route.Route
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// Translator resolves message IDs, falling back to the ID itself.
type Translator interface {
	T(id string) string
	Tf(id string, data map[string]any) string
}

type StaticPage struct {
	route   route.Route
	titleID string
	bodyID  string
	labels  Translator
}

func NewStaticPage(r route.Route, titleID, bodyID string, labels Translator) *StaticPage {
	return &StaticPage{route: r, titleID: titleID, bodyID: bodyID, labels: labels}
}

func (p *StaticPage) Route() route.Route         { return p.route }
func (p *StaticPage) Title() string              { return translate(p.labels, p.titleID) }
func (p *StaticPage) Init() tea.Cmd              { return nil }
func (p *StaticPage) Update(msg tea.Msg) tea.Cmd { return nil }
func (p *StaticPage) View(width, height int) string {
	return widgets.Box{Title: p.Title(), Content: translate(p.labels, p.bodyID)}.Render(width, height)
}

// Options configures Defaults.
type Options struct {
	Labels Translator
	Visits VisitLister // nil turns the history section off
	Limit  int
}

// Defaults returns one page per route.
func Defaults(opts Options) []Page {
	return []Page{
		NewStaticPage(route.Main, "PageMainTitle", "PageMainBody", opts.Labels),
		NewStaticPage(route.Gallery, "PageGalleryTitle", "PageGalleryBody", opts.Labels),
		NewStaticPage(route.Board, "PageBoardTitle", "PageBoardBody", opts.Labels),
		NewSettingsPage(opts.Labels, opts.Visits, opts.Limit),
		NewStaticPage(route.RegistDiary, "PageRegistDiaryTitle", "PageRegistDiaryBody", opts.Labels),
		NewStaticPage(route.RegistDrawing, "PageRegistDrawingTitle", "PageRegistDrawingBody", opts.Labels),
	}
}

func translate(labels Translator, id string) string {
	if labels == nil {
		return id
	}
	return labels.T(id)
}
