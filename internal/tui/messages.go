package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincept/fincept-shell/internal/nav"
)

// navigateMsg asks the shell to show another screen.
type navigateMsg struct {
	To nav.Screen
}

// backMsg asks the shell to leave Help for the screen it came from.
type backMsg struct{}

// statusMsg replaces the shell status line.
type statusMsg struct {
	Text  string
	IsErr bool
}

// loginResultMsg carries the outcome of an authentication attempt.
type loginResultMsg struct {
	Attempt  string
	Username string
	Err      error
}

// signUpResultMsg carries the outcome of a registration attempt.
type signUpResultMsg struct {
	Attempt  string
	Username string
	Err      error
}

// clockMsg refreshes the help terminal clock of one mounted screen.
type clockMsg struct {
	Mount string
	Time  time.Time
}

func navigateTo(s nav.Screen) func() tea.Msg {
	return func() tea.Msg { return navigateMsg{To: s} }
}

func goBack() tea.Msg { return backMsg{} }
