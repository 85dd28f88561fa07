package nav

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/geurime/geurime-tui/internal/reveal"
	"github.com/geurime/geurime-tui/internal/route"
)

type fakeLabels map[string]string

func (f fakeLabels) T(id string) string {
	if s, ok := f[id]; ok {
		return s
	}
	return id
}

var testLabels = fakeLabels{
	"NavHome":             "Home",
	"NavGallery":          "Gallery",
	"NavCommunity":        "Community",
	"NavSettings":         "Settings",
	"MenuRegisterDiary":   "Register diary",
	"MenuRegisterDrawing": "Register drawing",
}

// fakeKeys binds one key per action. Bar actions are active in both scopes,
// overlay actions only in ScopeMenu.
type fakeKeys map[string]string

func (f fakeKeys) IsAction(msg tea.KeyMsg, action, scope string) bool {
	k, ok := f[action]
	if !ok || msg.String() != k {
		return false
	}
	if strings.HasPrefix(action, "menu-") {
		return scope == ScopeMenu
	}
	return scope == ScopeBar || scope == ScopeMenu
}

var testKeys = fakeKeys{
	"nav-home":      "1",
	"nav-gallery":   "2",
	"nav-register":  "3",
	"nav-community": "4",
	"nav-settings":  "5",
	"menu-diary":    "d",
	"menu-drawing":  "w",
	DismissAction:   "esc",
}

// stubHits reports a hit for one zone id.
type stubHits struct{ id string }

func (s *stubHits) Hit(id string, _ tea.MouseMsg) bool { return s.id != "" && id == s.id }

func newTestBar(t *testing.T) (Model, *stubHits) {
	t.Helper()
	hits := &stubHits{}
	m := New(Config{Labels: testLabels, Keys: testKeys, Hits: hits})
	m.SetSize(60, 20)
	return m, hits
}

func press(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func tap(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func navigated(t *testing.T, cmd tea.Cmd) route.NavigateMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected navigation command")
	}
	msg, ok := cmd().(route.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	return msg
}

func overlayOf(m Model) string {
	base := strings.Repeat("\n", m.overlayHeight()-1)
	return ansi.Strip(m.Overlay(base))
}

func TestInitialStateHasNoOverlay(t *testing.T) {
	m, _ := newTestBar(t)
	if m.MenuOpen() || m.MenuState() != MenuClosed {
		t.Fatalf("menu should start closed")
	}
	if m.Selected() != 0 {
		t.Fatalf("selected = %d, want 0", m.Selected())
	}
	base := "page body"
	if got := m.Overlay(base); got != base {
		t.Fatalf("closed overlay should return base untouched, got %q", got)
	}
	bar := ansi.Strip(m.View())
	for _, want := range []string{"Home", "Gallery", "Community", "Settings", "⊕"} {
		if !strings.Contains(bar, want) {
			t.Fatalf("bar missing %q:\n%s", want, bar)
		}
	}
	if h := len(strings.Split(m.View(), "\n")); h != BarHeight {
		t.Fatalf("bar height = %d, want %d", h, BarHeight)
	}
}

func TestBarColumnsFillTheWidth(t *testing.T) {
	got := columnWidths(62, 5)
	want := []int{13, 13, 12, 12, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columnWidths = %v, want %v", got, want)
		}
	}
	m, _ := newTestBar(t)
	m.SetSize(62, 20)
	for i, line := range strings.Split(ansi.Strip(m.View()), "\n") {
		if w := ansi.StringWidth(line); w != 62 {
			t.Fatalf("bar row %d is %d cells wide, want 62", i, w)
		}
	}
}

func TestRegisterOpensOverlayWithBothOptions(t *testing.T) {
	m, _ := newTestBar(t)
	if cmd := m.Activate(2); cmd != nil {
		if _, ok := cmd().(route.NavigateMsg); ok {
			t.Fatalf("register must not navigate")
		}
	}
	if !m.MenuOpen() {
		t.Fatalf("register should open the menu")
	}
	if m.Selected() != 2 {
		t.Fatalf("selected = %d, want 2", m.Selected())
	}
	if m.Scope() != ScopeMenu {
		t.Fatalf("scope = %q, want %q", m.Scope(), ScopeMenu)
	}
	out := overlayOf(m)
	if !strings.Contains(out, "Register diary") || !strings.Contains(out, "Register drawing") {
		t.Fatalf("overlay missing options:\n%s", out)
	}
	if !strings.ContainsRune(out, '░') {
		t.Fatalf("overlay missing backdrop:\n%s", out)
	}
	if strings.Index(out, "Register diary") > strings.Index(out, "Register drawing") {
		t.Fatalf("diary option should sit above drawing:\n%s", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != m.overlayHeight() {
		t.Fatalf("overlay covers %d rows, want %d", len(lines), m.overlayHeight())
	}
}

func TestShowMenuTwiceIsNoop(t *testing.T) {
	m, _ := newTestBar(t)
	m.ShowMenu()
	m.ShowMenu()
	if !m.MenuOpen() {
		t.Fatalf("menu should stay open")
	}
	m.DismissMenu()
	m.DismissMenu()
	if m.MenuOpen() {
		t.Fatalf("menu should stay closed")
	}
}

func TestBackdropTapClosesOverlay(t *testing.T) {
	m, _ := newTestBar(t)
	m.Activate(2)
	handled, cmd := m.HandleMouse(tap(1, 0))
	if !handled {
		t.Fatalf("backdrop tap should be handled")
	}
	if cmd != nil {
		t.Fatalf("backdrop tap should not emit a command")
	}
	if m.MenuOpen() {
		t.Fatalf("backdrop tap should close the menu")
	}
	if got := m.Overlay("base"); got != "base" {
		t.Fatalf("overlay should be gone, got %q", got)
	}
}

func TestBackdropTapWhileClosedIsIgnored(t *testing.T) {
	m, _ := newTestBar(t)
	if handled, _ := m.HandleMouse(tap(1, 0)); handled {
		t.Fatalf("tap above the bar with the menu closed belongs to the page")
	}
}

func TestChooseDiaryNavigatesAndCloses(t *testing.T) {
	m, _ := newTestBar(t)
	m.Activate(2)
	msg := navigated(t, m.Choose(0))
	if msg.Route != route.RegistDiary || msg.Source != route.SourceMenu {
		t.Fatalf("unexpected navigation %+v", msg)
	}
	if m.MenuOpen() {
		t.Fatalf("choosing an option should close the menu")
	}
}

func TestChooseDrawingNavigatesAndCloses(t *testing.T) {
	m, _ := newTestBar(t)
	m.Activate(2)
	msg := navigated(t, m.Choose(1))
	if msg.Route != route.RegistDrawing {
		t.Fatalf("route = %s, want %s", msg.Route, route.RegistDrawing)
	}
	if m.MenuOpen() {
		t.Fatalf("choosing an option should close the menu")
	}
}

func TestChooseWhileClosedDoesNothing(t *testing.T) {
	m, _ := newTestBar(t)
	if cmd := m.Choose(0); cmd != nil {
		t.Fatalf("closed menu must not navigate")
	}
}

func TestOptionTapNavigates(t *testing.T) {
	m, _ := newTestBar(t)
	m.Activate(2)
	rects := m.optionRects()
	r := rects[1]
	handled, cmd := m.HandleMouse(tap(r.x+1, r.y+1))
	if !handled {
		t.Fatalf("option tap should be handled")
	}
	if msg := navigated(t, cmd); msg.Route != route.RegistDrawing {
		t.Fatalf("route = %s, want %s", msg.Route, route.RegistDrawing)
	}
	if m.MenuOpen() {
		t.Fatalf("option tap should close the menu")
	}
}

func TestNarrowOptionTapOnBottomRowNavigates(t *testing.T) {
	m, _ := newTestBar(t)
	m.SetSize(36, 20)
	m.Activate(2)
	r := m.optionRects()[1]
	lines := strings.Split(overlayOf(m), "\n")
	bottom := -1
	for i, line := range lines {
		if strings.Contains(line, "╰") {
			bottom = i
		}
	}
	if bottom != r.y+r.h-1 {
		t.Fatalf("drawing button ends on row %d, hit box ends on row %d:\n%s",
			bottom, r.y+r.h-1, strings.Join(lines, "\n"))
	}
	handled, cmd := m.HandleMouse(tap(r.x+1, bottom))
	if !handled {
		t.Fatalf("tap on the button border should be handled")
	}
	if msg := navigated(t, cmd); msg.Route != route.RegistDrawing {
		t.Fatalf("route = %s, want %s", msg.Route, route.RegistDrawing)
	}
}

func TestShortTerminalKeepsBothOptionsOnScreen(t *testing.T) {
	for _, height := range []int{9, 8} {
		m, _ := newTestBar(t)
		m.SetSize(60, height)
		m.Activate(2)
		for i, r := range m.optionRects() {
			if r.y < 0 {
				t.Fatalf("height %d: option %d starts at row %d", height, i, r.y)
			}
		}
		out := overlayOf(m)
		for _, want := range []string{"Register diary", "Register drawing"} {
			if !strings.Contains(out, want) {
				t.Fatalf("height %d: overlay missing %q:\n%s", height, want, out)
			}
		}
		diary := m.optionRects()[0]
		if _, cmd := m.HandleMouse(tap(diary.x+1, diary.y+1)); navigated(t, cmd).Route != route.RegistDiary {
			t.Fatalf("height %d: diary label row should open the diary route", height)
		}
	}
}

func TestLinkActionsNeverTouchMenu(t *testing.T) {
	want := map[int]route.Route{0: route.Main, 1: route.Gallery, 3: route.Board, 4: route.Settings}
	for _, open := range []bool{false, true} {
		for i, target := range want {
			m, _ := newTestBar(t)
			if open {
				m.ShowMenu()
			}
			msg := navigated(t, m.Activate(i))
			if msg.Route != target || msg.Source != route.SourceNav {
				t.Fatalf("action %d navigated to %+v, want %s", i, msg, target)
			}
			if m.MenuOpen() != open {
				t.Fatalf("action %d changed menuOpen from %v", i, open)
			}
			if m.Selected() != i {
				t.Fatalf("action %d: selected = %d", i, m.Selected())
			}
		}
	}
}

func TestActivateOutOfRangeIgnored(t *testing.T) {
	m, _ := newTestBar(t)
	for _, i := range []int{-1, 5, 99} {
		if cmd := m.Activate(i); cmd != nil {
			t.Fatalf("Activate(%d) should be ignored", i)
		}
	}
	if m.Selected() != 0 {
		t.Fatalf("selected moved to %d", m.Selected())
	}
}

func TestKeysAreScoped(t *testing.T) {
	m, _ := newTestBar(t)
	if handled, _ := m.HandleKey(press("d")); handled {
		t.Fatalf("overlay keys must not fire while closed")
	}
	if handled, _ := m.HandleKey(press("3")); !handled || !m.MenuOpen() {
		t.Fatalf("3 should open the menu")
	}
	handled, cmd := m.HandleKey(press("d"))
	if !handled {
		t.Fatalf("d should choose the diary option")
	}
	if msg := navigated(t, cmd); msg.Route != route.RegistDiary {
		t.Fatalf("route = %s", msg.Route)
	}
	m.HandleKey(press("3"))
	if handled, _ := m.HandleKey(press("esc")); !handled || m.MenuOpen() {
		t.Fatalf("esc should dismiss the menu")
	}
	if handled, _ := m.HandleKey(press("x")); handled {
		t.Fatalf("unbound key should not be handled")
	}
}

func TestLinkKeyWhileOpenKeepsMenu(t *testing.T) {
	m, _ := newTestBar(t)
	m.HandleKey(press("3"))
	handled, cmd := m.HandleKey(press("4"))
	if !handled {
		t.Fatalf("bar keys stay active while the menu is open")
	}
	if msg := navigated(t, cmd); msg.Route != route.Board {
		t.Fatalf("route = %s", msg.Route)
	}
	if !m.MenuOpen() {
		t.Fatalf("link action must not close the menu")
	}
}

func TestBarTapUsesZones(t *testing.T) {
	m, hits := newTestBar(t)
	hits.id = m.zoneID(m.actions[1])
	handled, cmd := m.HandleMouse(tap(0, 19))
	if !handled {
		t.Fatalf("bar tap should be handled")
	}
	if msg := navigated(t, cmd); msg.Route != route.Gallery {
		t.Fatalf("route = %s", msg.Route)
	}

	m.ShowMenu()
	hits.id = m.zoneID(m.actions[4])
	_, cmd = m.HandleMouse(tap(0, 19))
	if msg := navigated(t, cmd); msg.Route != route.Settings {
		t.Fatalf("route = %s", msg.Route)
	}
	if !m.MenuOpen() {
		t.Fatalf("bar tap must not close the menu")
	}
}

func TestMouseIgnoresNonTaps(t *testing.T) {
	m, _ := newTestBar(t)
	m.ShowMenu()
	down := tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if handled, _ := m.HandleMouse(down); handled {
		t.Fatalf("press should not count as a tap")
	}
	wheel := tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonWheelUp}
	if handled, _ := m.HandleMouse(wheel); handled {
		t.Fatalf("wheel should not count as a tap")
	}
	if !m.MenuOpen() {
		t.Fatalf("menu should still be open")
	}
}

func TestRevealStartsOnOpenAndResetsOnDismiss(t *testing.T) {
	anim := reveal.New()
	m := New(Config{Labels: testLabels, Keys: testKeys, Reveal: anim})
	m.SetSize(60, 20)
	m.Init()
	if !anim.Enabled() {
		t.Fatalf("Init should enable the animator")
	}
	if cmd := m.ShowMenu(); cmd == nil {
		t.Fatalf("opening the menu should schedule the entrance")
	}
	if anim.Started("diary") || anim.Offset("diary") == 0 {
		t.Fatalf("diary should wait lowered for its delay")
	}
	out := overlayOf(m)
	if !strings.Contains(out, "Register diary") {
		t.Fatalf("options are drawn while waiting:\n%s", out)
	}
	for _, r := range m.optionRects() {
		if r.y+r.h > m.overlayHeight() {
			t.Fatalf("option %+v overlaps the bar", r)
		}
	}
	m.DismissMenu()
	if anim.Offset("diary") != 0 || !anim.Started("diary") {
		t.Fatalf("dismiss should reset the animation")
	}
}
