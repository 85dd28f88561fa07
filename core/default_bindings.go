package core

import (
	"slices"
	"strings"

	"github.com/geurime/geurime-tui/nav"
)

// DefaultKeyBindings returns the stock bindings. Descriptions are message IDs.
func DefaultKeyBindings() []KeyBinding {
	both := []string{nav.ScopeBar, nav.ScopeMenu}
	return []KeyBinding{
		{Keys: []string{"1", "h"}, Action: "nav-home", Description: "HelpHome", Scopes: both},
		{Keys: []string{"2", "g"}, Action: "nav-gallery", Description: "HelpGallery", Scopes: both},
		{Keys: []string{"3", "+"}, Action: "nav-register", Description: "HelpRegister", Scopes: both},
		{Keys: []string{"4", "c"}, Action: "nav-community", Description: "HelpCommunity", Scopes: both},
		{Keys: []string{"5", "s"}, Action: "nav-settings", Description: "HelpSettings", Scopes: both},
		{Keys: []string{"d"}, Action: "menu-diary", Description: "HelpDiary", Scopes: []string{nav.ScopeMenu}},
		{Keys: []string{"w"}, Action: "menu-drawing", Description: "HelpDrawing", Scopes: []string{nav.ScopeMenu}},
		{Keys: []string{"esc"}, Action: nav.DismissAction, Description: "HelpDismiss", Scopes: []string{nav.ScopeMenu}},
		{Keys: []string{"backspace"}, Action: "back", Description: "HelpBack", Scopes: []string{nav.ScopeBar}},
		{Keys: []string{"q"}, Action: "quit", Description: "HelpQuit", Scopes: []string{Everywhere}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an entry in actionKeys. Actions without an entry keep their keys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}

// UnknownActions returns the actions in actionKeys that no binding uses.
func UnknownActions(bindings []KeyBinding, actionKeys map[string][]string) []string {
	known := DefaultKeybindingsByAction(bindings)
	var out []string
	for action := range actionKeys {
		if _, ok := known[action]; !ok {
			out = append(out, action)
		}
	}
	slices.Sort(out)
	return out
}
