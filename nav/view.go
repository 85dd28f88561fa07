package nav

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/geurime/geurime-tui/widgets"
)

const (
	buttonHeight   = 3
	buttonGap      = 1
	buttonMinWidth = 12
)

// View renders the bar: a rule, then one column per action with its icon
// above its label.
func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}
	widths := columnWidths(m.width, len(m.actions))
	cols := make([]string, len(m.actions))
	for i, a := range m.actions {
		style := idleStyle
		switch {
		case i == m.selected:
			style = selectedStyle
		case a.Kind == KindMenu:
			style = registerStyle
		}
		label := m.label(a.LabelID)
		if label == "" {
			label = " "
		}
		col := style.Width(widths[i]).MaxWidth(widths[i]).Align(lipgloss.Center).
			Render(a.Icon + "\n" + label)
		cols[i] = m.mark(m.zoneID(a), col)
	}
	rule := ruleStyle.Render(strings.Repeat("─", m.width))
	return lipgloss.JoinVertical(lipgloss.Left, rule, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}

// Overlay composites the registration menu over base, the content above the
// bar. With the menu closed base is returned untouched.
func (m Model) Overlay(base string) string {
	if !m.menu.IsOpen() {
		return base
	}
	h := m.overlayHeight()
	if m.width <= 0 || h <= 0 {
		return base
	}
	out := widgets.Backdrop(base, m.width, h, backdropStyle)
	for i, r := range m.optionRects() {
		out = widgets.OverlayAt(out, m.button(i, r.w), r.x, r.y, m.width, h)
	}
	return out
}

// button renders option i at outer width w. The label is cut to a single
// line so the drawn button is always buttonHeight rows, the same as its hit
// box.
func (m Model) button(i, w int) string {
	o := m.options[i]
	style := buttonStyle
	if m.reveal != nil && !m.reveal.Started(o.ID) {
		style = buttonPendingStyle
	}
	inner := max(1, w-2)
	label := strings.ReplaceAll(m.label(o.LabelID), "\n", " ")
	label = ansi.Truncate(label, inner, "…")
	return style.Width(inner).MaxHeight(buttonHeight).Render(label)
}

// optionRects lays the overlay buttons out in the middle third of the screen,
// stacked upwards from just above the bar, each shifted down by its current
// entrance offset. Short terminals drop the gap and pin the stack to row 0.
func (m Model) optionRects() []rect {
	h := m.overlayHeight()
	gap := buttonGap
	if h < len(m.options)*(buttonHeight+buttonGap) {
		gap = 0
	}
	w := max(buttonMinWidth, m.width/3)
	x := m.width / 3
	if w > m.width {
		x, w = 0, m.width
	}
	if x+w > m.width {
		x = max(0, m.width-w)
	}
	out := make([]rect, len(m.options))
	for i, o := range m.options {
		slot := len(m.options) - i
		y := h - slot*(buttonHeight+gap)
		if m.reveal != nil {
			y += m.reveal.Offset(o.ID)
		}
		y = max(0, min(y, h-buttonHeight))
		out[i] = rect{x: x, y: y, w: w, h: buttonHeight}
	}
	return out
}

// columnWidths shares width between n bar columns. The leftmost columns take
// the remainder, one cell each.
func columnWidths(width, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = width / n
		if i < width%n {
			out[i]++
		}
	}
	return out
}

func (m Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}
