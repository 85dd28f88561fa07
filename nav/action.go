package nav

import (
	"time"

	"github.com/geurime/geurime-tui/internal/route"
)

type Kind int

const (
	// KindLink navigates to Target.
	KindLink Kind = iota
	// KindMenu opens the registration overlay instead of navigating.
	KindMenu
)

type Action struct {
	ID      string
	LabelID string
	Icon    string
	Kind    Kind
	Target  route.Route
}

// KeyAction is the key binding action name that activates a.
func (a Action) KeyAction() string { return "nav-" + a.ID }

// Actions returns the bar's actions in display order. The index of an action
// in this slice is its tab index.
func Actions() []Action {
	return []Action{
		{ID: "home", LabelID: "NavHome", Icon: "⌂", Kind: KindLink, Target: route.Main},
		{ID: "gallery", LabelID: "NavGallery", Icon: "▦", Kind: KindLink, Target: route.Gallery},
		{ID: "register", Icon: "⊕", Kind: KindMenu},
		{ID: "community", LabelID: "NavCommunity", Icon: "☷", Kind: KindLink, Target: route.Board},
		{ID: "settings", LabelID: "NavSettings", Icon: "⚙", Kind: KindLink, Target: route.Settings},
	}
}

// Option is one shortcut offered by the registration overlay.
type Option struct {
	ID      string
	LabelID string
	Target  route.Route
	Delay   time.Duration // entrance delay once the overlay opens
}

func (o Option) KeyAction() string { return "menu-" + o.ID }

// MenuOptions returns the overlay options top to bottom.
func MenuOptions() []Option {
	return []Option{
		{ID: "diary", LabelID: "MenuRegisterDiary", Target: route.RegistDiary, Delay: 200 * time.Millisecond},
		{ID: "drawing", LabelID: "MenuRegisterDrawing", Target: route.RegistDrawing, Delay: 100 * time.Millisecond},
	}
}

// DismissAction is the key binding action that closes the overlay.
const DismissAction = "menu-dismiss"
