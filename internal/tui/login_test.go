package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fincept/fincept-shell/internal/auth"
	"github.com/fincept/fincept-shell/internal/nav"
)

func newTestLogin(a auth.Authenticator) *loginScreen {
	return newLoginScreen(context.Background(), testKeys(), a, LoginCallbacks{
		OnSwitchToSignUp: navigateTo(nav.SignUp),
		OnNavigateToHelp: navigateTo(nav.Help),
	})
}

func typeLogin(s *loginScreen, text string) {
	for _, r := range text {
		s.Update(runeKey(string(r)))
	}
}

func fillLogin(s *loginScreen, user, pass string) {
	typeLogin(s, user)
	s.Update(keyTab)
	typeLogin(s, pass)
}

func loginResult(t *testing.T, cmd tea.Cmd) loginResultMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if r, ok := msg.(loginResultMsg); ok {
			return r
		}
	}
	t.Fatal("command produced no loginResultMsg")
	return loginResultMsg{}
}

func TestLoginTypingMirrorsIntoForm(t *testing.T) {
	s := newTestLogin(&fakeAuth{})
	fillLogin(s, "trader", "hunter22")
	if s.form.Username != "trader" || s.form.Password != "hunter22" {
		t.Fatalf("form = %+v", s.form)
	}
	view := ansi.Strip(s.View(100, 30))
	if strings.Contains(view, "hunter22") {
		t.Fatal("password rendered in clear text")
	}
	if !strings.Contains(view, "••••••••") {
		t.Fatal("password mask not rendered")
	}
}

func TestLoginFocusCycles(t *testing.T) {
	s := newTestLogin(&fakeAuth{})
	s.Update(keyTab)
	if s.focus != 1 {
		t.Fatalf("focus after tab = %d, want 1", s.focus)
	}
	s.Update(keyTab)
	if s.focus != 0 {
		t.Fatalf("focus should wrap to 0, got %d", s.focus)
	}
	s.Update(keyShiftTab)
	if s.focus != 1 {
		t.Fatalf("focus after shift+tab = %d, want 1", s.focus)
	}
}

func TestLoginRequiresFields(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		pass      string
		wantErr   string
		wantFocus int
	}{
		{name: "empty", wantErr: "Terminal username is required", wantFocus: 0},
		{name: "blank username", user: "   ", pass: "x", wantErr: "Terminal username is required", wantFocus: 0},
		{name: "no password", user: "trader", wantErr: "Password is required", wantFocus: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fa := &fakeAuth{}
			s := newTestLogin(fa)
			fillLogin(s, tc.user, tc.pass)
			s.Update(keyEnter)
			if s.form.Submitting {
				t.Fatal("incomplete form should not submit")
			}
			if s.err != tc.wantErr {
				t.Fatalf("err = %q, want %q", s.err, tc.wantErr)
			}
			if s.focus != tc.wantFocus {
				t.Fatalf("focus = %d, want %d", s.focus, tc.wantFocus)
			}
			if len(fa.logins) != 0 {
				t.Fatal("authenticator called for an incomplete form")
			}
		})
	}
}

func TestLoginSubmitSuccess(t *testing.T) {
	fa := &fakeAuth{}
	s := newTestLogin(fa)
	fillLogin(s, "trader", "hunter22")

	cmd := s.Update(keyEnter)
	if !s.form.Submitting {
		t.Fatal("form should be submitting")
	}
	if again := s.Update(keyEnter); again != nil {
		t.Fatal("second submit while pending should be ignored")
	}
	if !strings.Contains(ansi.Strip(s.View(100, 30)), "Next") {
		t.Fatal("busy button missing")
	}

	s.Update(loginResult(t, cmd))
	if s.form.Submitting {
		t.Fatal("form still submitting after result")
	}
	if s.notice != "Signed in as trader" {
		t.Fatalf("notice = %q", s.notice)
	}
	if len(fa.logins) != 1 || fa.logins[0] != (auth.Credentials{Username: "trader", Password: "hunter22"}) {
		t.Fatalf("logins = %+v", fa.logins)
	}
}

func TestLoginSubmitFailureShowsError(t *testing.T) {
	s := newTestLogin(&fakeAuth{err: auth.ErrInvalidCredentials})
	fillLogin(s, "trader", "wrong")
	cmd := s.Update(keyEnter)
	s.Update(loginResult(t, cmd))
	if s.err != auth.Describe(auth.ErrInvalidCredentials) {
		t.Fatalf("err = %q", s.err)
	}
	if !strings.Contains(ansi.Strip(s.View(100, 30)), s.err) {
		t.Fatal("error not rendered")
	}

	typeLogin(s, "x")
	if s.err != "" {
		t.Fatal("editing a field should clear the error")
	}
}

func TestLoginIgnoresStaleResult(t *testing.T) {
	s := newTestLogin(&fakeAuth{})
	fillLogin(s, "trader", "hunter22")
	s.Update(keyEnter)

	s.Update(loginResultMsg{Attempt: "old-attempt", Username: "trader", Err: auth.ErrInvalidCredentials})
	if !s.form.Submitting {
		t.Fatal("stale result ended the pending attempt")
	}
	if s.err != "" {
		t.Fatalf("stale result set err %q", s.err)
	}
}

func TestLoginCloseCancelsAttempt(t *testing.T) {
	s := newTestLogin(&fakeAuth{block: true})
	fillLogin(s, "trader", "hunter22")
	cmd := s.Update(keyEnter)
	s.Close()
	r := loginResult(t, cmd)
	if auth.Describe(r.Err) != "Request cancelled" {
		t.Fatalf("err = %v", r.Err)
	}
}

func TestLoginNavigationIntents(t *testing.T) {
	s := newTestLogin(&fakeAuth{})
	if msg := s.Update(keyCtrlN)(); msg != (navigateMsg{To: nav.SignUp}) {
		t.Fatalf("ctrl+n = %#v", msg)
	}
	if msg := s.Update(keyF1)(); msg != (navigateMsg{To: nav.Help}) {
		t.Fatalf("f1 = %#v", msg)
	}
}

func TestLoginNeverLogsCredentials(t *testing.T) {
	var buf bytes.Buffer
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	for _, err := range []error{nil, auth.ErrInvalidCredentials} {
		s := newTestLogin(&fakeAuth{err: err})
		fillLogin(s, "trader", "hunter22")
		cmd := s.Update(keyEnter)
		s.Update(loginResult(t, cmd))
	}

	out := buf.String()
	if !strings.Contains(out, "login submitted") {
		t.Fatalf("expected submit log line, got %q", out)
	}
	if strings.Contains(out, "hunter22") || strings.Contains(out, "trader") {
		t.Fatalf("credentials leaked into log: %s", out)
	}
}
