package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/geurime/geurime-tui/nav"
	"github.com/geurime/geurime-tui/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	above := max(0, m.height-nav.BarHeight)
	bodyHeight := max(0, above-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	var body string
	if p := m.activePage(); p != nil && bodyHeight > 0 {
		body = p.View(max(1, m.width), bodyHeight)
	}
	body = widgets.FitCanvas(body, max(1, m.width), bodyHeight)
	parts := []string{header, status}
	if bodyHeight > 0 {
		parts = append(parts, body)
	}
	parts = append(parts, footer)
	top := fitHeight(strings.Join(parts, "\n"), above)
	top = m.nav.Overlay(top)

	view := fitHeight(top+"\n"+m.nav.View(), max(1, m.height))
	view = appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
	if m.zones != nil {
		view = m.zones.Scan(view)
	}
	return view
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.t("AppTitle"))
	cur := m.history.Current()
	title := string(cur)
	if p := m.activePage(); p != nil {
		title = p.Title()
	}
	right := headerRouteStyle.Render(title) + headerSepStyle.Render(" │ ") + headerRouteStyle.Render(string(cur))
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
