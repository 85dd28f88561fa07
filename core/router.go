package core

import (
	"slices"

	"github.com/geurime/geurime-tui/internal/route"
)

// History is the stack of visited routes. The bottom entry is never popped.
type History struct {
	items []route.Route
}

// Push adds r unless it is already the current route.
func (h *History) Push(r route.Route) bool {
	if r == "" || r == h.Current() {
		return false
	}
	h.items = append(h.items, r)
	return true
}

// Pop drops the current route and returns the one beneath it.
func (h *History) Pop() (route.Route, bool) {
	if len(h.items) <= 1 {
		return h.Current(), false
	}
	h.items = h.items[:len(h.items)-1]
	return h.Current(), true
}

func (h History) Current() route.Route {
	if len(h.items) == 0 {
		return ""
	}
	return h.items[len(h.items)-1]
}

func (h History) Len() int {
	return len(h.items)
}

func (h History) Entries() []route.Route {
	return slices.Clone(h.items)
}
