package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincept/fincept-shell/internal/auth"
)

func runeKey(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlN    = tea.KeyMsg{Type: tea.KeyCtrlN}
	keyF1       = tea.KeyMsg{Type: tea.KeyF1}
	keyF2       = tea.KeyMsg{Type: tea.KeyF2}
	keyF3       = tea.KeyMsg{Type: tea.KeyF3}
	keyF4       = tea.KeyMsg{Type: tea.KeyF4}
	keyF5       = tea.KeyMsg{Type: tea.KeyF5}
	keyF6       = tea.KeyMsg{Type: tea.KeyF6}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
)

// fakeAuth records calls and answers with err. When block is set, calls
// wait for the context to end.
type fakeAuth struct {
	mu       sync.Mutex
	err      error
	block    bool
	logins   []auth.Credentials
	profiles []auth.Profile
}

func (f *fakeAuth) Authenticate(ctx context.Context, c auth.Credentials) error {
	f.mu.Lock()
	f.logins = append(f.logins, c)
	f.mu.Unlock()
	return f.answer(ctx)
}

func (f *fakeAuth) Register(ctx context.Context, p auth.Profile) error {
	f.mu.Lock()
	f.profiles = append(f.profiles, p)
	f.mu.Unlock()
	return f.answer(ctx)
}

func (f *fakeAuth) answer(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func fixedNow() time.Time {
	return time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
}

func testKeys() *KeyRegistry {
	return NewKeyRegistry(DefaultKeyBindings())
}

func newTestModel(t *testing.T, a auth.Service) Model {
	t.Helper()
	if a == nil {
		a = &fakeAuth{}
	}
	return New(context.Background(), Options{Auth: a, Now: fixedNow, FuzzyDistance: 1})
}

func applyMsg(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got, cmd
}

// follow runs a navigation cmd and feeds the message it produces back
// into the model. The follow-up cmd is discarded because screen Init cmds
// are timers.
func follow(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	m, _ = applyMsg(t, m, cmd())
	return m
}

func typeInto(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = applyMsg(t, m, runeKey(string(r)))
	}
	return m
}

// collect runs cmd and flattens batches. Only use it on commands that do
// not sleep.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}
