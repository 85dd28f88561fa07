package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Everywhere scopes a binding to both the bar and the open menu.
const Everywhere = "*"

// KeyBinding binds keys to an action inside the nav scopes it lists. No
// scopes means Everywhere. Description is a message ID.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

func (b KeyBinding) activeIn(scope string) bool {
	return len(b.Scopes) == 0 || slices.Contains(b.Scopes, Everywhere) || slices.Contains(b.Scopes, scope)
}

// only reports whether b belongs to scope alone, like the menu's own options.
func (b KeyBinding) only(scope string) bool {
	return len(b.Scopes) == 1 && b.Scopes[0] == scope
}

// KeyRegistry answers the nav bar's "is this press that action here"
// questions and builds the footer's help line. Bindings are indexed by
// pressed key.
type KeyRegistry struct {
	bindings []KeyBinding
	byKey    map[string][]int
}

// NewKeyRegistry copies bindings, dropping any without an action or keys.
func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{byKey: make(map[string][]int)}
	for _, b := range bindings {
		keys := make([]string, 0, len(b.Keys))
		for _, k := range b.Keys {
			if k = keyName(k); k != "" && !slices.Contains(keys, k) {
				keys = append(keys, k)
			}
		}
		if b.Action == "" || len(keys) == 0 {
			continue
		}
		b.Keys = keys
		b.Scopes = slices.Clone(b.Scopes)
		for _, k := range keys {
			r.byKey[k] = append(r.byKey[k], len(r.bindings))
		}
		r.bindings = append(r.bindings, b)
	}
	return r
}

// IsAction reports whether msg triggers action while scope has focus.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, i := range r.byKey[keyName(msg.String())] {
		if b := r.bindings[i]; b.Action == action && b.activeIn(scope) {
			return true
		}
	}
	return false
}

// Help returns one entry per action active in scope, with the keys each
// action answers to. Bindings owned by scope alone come first, so with the
// menu open its options lead the footer.
func (r *KeyRegistry) Help(scope string) []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	seen := make(map[string]bool, len(r.bindings))
	add := func(b KeyBinding) {
		if seen[b.Action] {
			return
		}
		seen[b.Action] = true
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)))
	}
	for _, b := range r.bindings {
		if b.only(scope) {
			add(b)
		}
	}
	for _, b := range r.bindings {
		if b.activeIn(scope) {
			add(b)
		}
	}
	return out
}

// keyName puts a configured key or a pressed key into the form bubbletea
// prints, folding case and spelling the space bar out.
func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}
