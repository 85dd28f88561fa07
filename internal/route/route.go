// Package route holds the route identifiers the navigation bar targets and the
// messages used to request a page change from the host router.
package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

type Route string

const (
	Main          Route = "/main"
	Gallery       Route = "/gallery"
	Board         Route = "/board"
	Settings      Route = "/settings"
	RegistDiary   Route = "/registdiary/question"
	RegistDrawing Route = "/registdrawing"
)

// maxSuggestDistance is the largest edit distance still offered as a suggestion.
const maxSuggestDistance = 4

var ErrUnknownRoute = errors.New("unknown route")

// UnknownRouteError reports a route that is not part of the table. Suggestion is
// empty when nothing was close enough.
type UnknownRouteError struct {
	Input      string
	Suggestion Route
}

func (e *UnknownRouteError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unknown route %q", e.Input)
	}
	return fmt.Sprintf("unknown route %q (did you mean %s?)", e.Input, e.Suggestion)
}

func (e *UnknownRouteError) Unwrap() error { return ErrUnknownRoute }

func All() []Route {
	return []Route{Main, Gallery, Board, Settings, RegistDiary, RegistDrawing}
}

func (r Route) String() string { return string(r) }

// Parse normalises s and resolves it against the route table.
func Parse(s string) (Route, error) {
	n := normalize(s)
	for _, r := range All() {
		if string(r) == n {
			return r, nil
		}
	}
	return "", &UnknownRouteError{Input: s, Suggestion: Suggest(n)}
}

// Suggest returns the closest known route to s, or "" when none is close.
func Suggest(s string) Route {
	n := normalize(s)
	best := Route("")
	bestDist := maxSuggestDistance + 1
	for _, r := range All() {
		d := levenshtein.ComputeDistance(n, string(r))
		if d < bestDist {
			best, bestDist = r, d
		}
	}
	return best
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimRight(s, "/")
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return s
}

type Source string

const (
	SourceStart Source = "start"
	SourceNav   Source = "nav"
	SourceMenu  Source = "menu"
	SourceBack  Source = "back"
)

// NavigateMsg asks the host router to show the page for Route.
type NavigateMsg struct {
	Route  Route
	Source Source
}

// BackMsg asks the host router to return to the previous page.
type BackMsg struct{}

func Navigate(r Route, src Source) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: r, Source: src} }
}

func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}
