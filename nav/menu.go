package nav

type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	switch s {
	case MenuOpen:
		return "open"
	default:
		return "closed"
	}
}

// Menu is the registration overlay state machine. It has no terminal state;
// every transition is user driven.
type Menu struct {
	state MenuState
}

// Show moves Closed -> Open and reports whether the state changed.
func (m *Menu) Show() bool {
	if m.state == MenuOpen {
		return false
	}
	m.state = MenuOpen
	return true
}

// Dismiss moves Open -> Closed and reports whether the state changed.
// Dismissing a closed menu is a no-op.
func (m *Menu) Dismiss() bool {
	if m.state == MenuClosed {
		return false
	}
	m.state = MenuClosed
	return true
}

func (m Menu) State() MenuState { return m.state }

func (m Menu) IsOpen() bool { return m.state == MenuOpen }
