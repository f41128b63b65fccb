package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeLogin      = "login"
	scopeSignUp     = "signup"
	scopeHelp       = "help"
	scopeHelpSearch = "help_search"
)

const (
	actionQuit       = "quit"
	actionNextField  = "next-field"
	actionPrevField  = "prev-field"
	actionSubmit     = "submit"
	actionGoSignUp   = "goto-signup"
	actionGoLogin    = "goto-login"
	actionGoHelp     = "goto-help"
	actionBack       = "back"
	actionNextTab    = "next-tab"
	actionPrevTab    = "prev-tab"
	actionTopicDown  = "topic-down"
	actionTopicUp    = "topic-up"
	actionTopicOpen  = "topic-open"
	actionSearch     = "search"
	actionSearchDone = "search-done"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	forms := []string{scopeLogin, scopeSignUp}
	return []KeyBinding{
		{Keys: []string{"enter"}, Action: actionSubmit, Description: "submit", Scopes: forms},
		{Keys: []string{"tab", "down"}, Action: actionNextField, Description: "next field", Scopes: forms},
		{Keys: []string{"shift+tab", "up"}, Action: actionPrevField, Description: "prev field", Scopes: forms},
		{Keys: []string{"ctrl+n"}, Action: actionGoSignUp, Description: "create account", Scopes: []string{scopeLogin}},
		{Keys: []string{"esc", "ctrl+l"}, Action: actionGoLogin, Description: "sign in", Scopes: []string{scopeSignUp}},
		{Keys: []string{"f1"}, Action: actionGoHelp, Description: "help", Scopes: forms},
		{Keys: []string{"right", "l"}, Action: actionNextTab, Description: "next tab", Scopes: []string{scopeHelp}},
		{Keys: []string{"left", "h"}, Action: actionPrevTab, Description: "prev tab", Scopes: []string{scopeHelp}},
		{Keys: []string{"down", "j"}, Action: actionTopicDown, Description: "topic down", Scopes: []string{scopeHelp}},
		{Keys: []string{"up", "k"}, Action: actionTopicUp, Description: "topic up", Scopes: []string{scopeHelp}},
		{Keys: []string{"enter"}, Action: actionTopicOpen, Description: "open topic", Scopes: []string{scopeHelp}},
		{Keys: []string{"/"}, Action: actionSearch, Description: "search", Scopes: []string{scopeHelp}},
		{Keys: []string{"enter", "esc"}, Action: actionSearchDone, Description: "done", Scopes: []string{scopeHelpSearch}},
		{Keys: []string{"esc", "b"}, Action: actionBack, Description: "back", Scopes: []string{scopeHelp}},
		{Keys: []string{"q"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeHelp}},
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: forms},
	}
}

// Actions lists every action a keybindings file may remap.
func Actions() []string {
	seen := map[string]bool{}
	var out []string
	for _, b := range DefaultKeyBindings() {
		if !seen[b.Action] {
			seen[b.Action] = true
			out = append(out, b.Action)
		}
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. All bindings of an action share the override.
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
