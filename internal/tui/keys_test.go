package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestIsActionRespectsScope(t *testing.T) {
	r := testKeys()
	if !r.IsAction(keyCtrlN, actionGoSignUp, scopeLogin) {
		t.Fatal("ctrl+n should open sign-up from login")
	}
	if r.IsAction(keyCtrlN, actionGoSignUp, scopeSignUp) {
		t.Fatal("ctrl+n should not be bound on sign-up")
	}
	if r.IsAction(runeKey("q"), actionQuit, scopeLogin) {
		t.Fatal("q must stay typeable on login")
	}
	if !r.IsAction(runeKey("q"), actionQuit, scopeHelp) {
		t.Fatal("q should quit from help")
	}
	if r.IsAction(runeKey("q"), actionQuit, scopeHelpSearch) {
		t.Fatal("q must stay typeable while searching")
	}
}

func TestEveryScopeHasBindings(t *testing.T) {
	r := testKeys()
	for _, scope := range []string{scopeLogin, scopeSignUp, scopeHelp, scopeHelpSearch} {
		if len(r.BindingsForScope(scope)) == 0 {
			t.Errorf("scope %q has no bindings", scope)
		}
	}
}

func TestActionsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Actions() {
		if seen[a] {
			t.Fatalf("duplicate action %q", a)
		}
		seen[a] = true
	}
	if !seen[actionSubmit] || !seen[actionBack] {
		t.Fatalf("actions = %v", Actions())
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	defaults := DefaultKeyBindings()
	out := ApplyActionKeybindings(defaults, map[string][]string{actionGoHelp: {"f12"}})
	r := NewKeyRegistry(out)
	if r.IsAction(keyF1, actionGoHelp, scopeLogin) {
		t.Fatal("f1 should no longer open help")
	}
	if !r.IsAction(tea.KeyMsg{Type: tea.KeyF12}, actionGoHelp, scopeSignUp) {
		t.Fatal("f12 should open help")
	}
	if !NewKeyRegistry(defaults).IsAction(keyF1, actionGoHelp, scopeLogin) {
		t.Fatal("override mutated the defaults")
	}
}

func TestFooterListsScopeBindings(t *testing.T) {
	line := ansi.Strip(renderFooter(testKeys(), scopeLogin, 200))
	for _, want := range []string{"enter", "submit", "ctrl+n", "f1"} {
		if !strings.Contains(line, want) {
			t.Fatalf("footer %q missing %q", line, want)
		}
	}
	if ansi.StringWidth(renderFooter(testKeys(), scopeHelp, 40)) != 40 {
		t.Fatal("footer should fill the width exactly")
	}
}
