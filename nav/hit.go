package nav

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// HitTester reports whether a mouse event landed inside the zone id.
type HitTester interface {
	Hit(id string, msg tea.MouseMsg) bool
}

type zoneHits struct {
	zones *zone.Manager
}

func (z zoneHits) Hit(id string, msg tea.MouseMsg) bool {
	if z.zones == nil {
		return false
	}
	info := z.zones.Get(id)
	if info == nil {
		return false
	}
	return info.InBounds(msg)
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// isTap matches a left button release. Legacy X10 reporting cannot tell which
// button was released, so a release without a button counts too.
func isTap(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionRelease {
		return false
	}
	return msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone
}
