package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fincept/fincept-shell/internal/auth"
	"github.com/fincept/fincept-shell/internal/forms"
	"github.com/fincept/fincept-shell/internal/nav"
)

// LoginCallbacks are the navigation intents the login screen can raise.
type LoginCallbacks struct {
	OnSwitchToSignUp func() tea.Msg
	OnNavigateToHelp func() tea.Msg
}

type loginScreen struct {
	ctx       context.Context
	keys      *KeyRegistry
	auth      auth.Authenticator
	callbacks LoginCallbacks

	form    forms.LoginForm
	fields  []forms.LoginField
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	attempt string
	cancel  context.CancelFunc
	err     string
	notice  string
}

func newLoginScreen(ctx context.Context, keys *KeyRegistry, a auth.Authenticator, cb LoginCallbacks) *loginScreen {
	s := &loginScreen{
		ctx:       ctx,
		keys:      keys,
		auth:      a,
		callbacks: cb,
		fields:    forms.LoginFields(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for _, f := range s.fields {
		inp := textinput.New()
		inp.Placeholder = f.Label()
		inp.Prompt = ""
		inp.CharLimit = 128
		inp.Width = 36
		if f == forms.LoginPassword {
			inp.EchoMode = textinput.EchoPassword
			inp.EchoCharacter = '•'
		}
		s.inputs = append(s.inputs, inp)
	}
	s.inputs[0].Focus()
	return s
}

func (s *loginScreen) ID() nav.Screen { return nav.Login }
func (s *loginScreen) Scope() string  { return scopeLogin }

func (s *loginScreen) Init() tea.Cmd { return textinput.Blink }

func (s *loginScreen) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *loginScreen) setFocus(i int) tea.Cmd {
	n := len(s.inputs)
	i = (i%n + n) % n
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[s.focus].Focus()
}

func (s *loginScreen) focusField(f forms.LoginField) tea.Cmd {
	for i, field := range s.fields {
		if field == f {
			return s.setFocus(i)
		}
	}
	return nil
}

func (s *loginScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginResultMsg:
		s.finish(msg)
		return nil
	case spinner.TickMsg:
		if !s.form.Submitting {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		switch {
		case s.keys.IsAction(msg, actionSubmit, scopeLogin):
			return s.submit()
		case s.keys.IsAction(msg, actionNextField, scopeLogin):
			return s.setFocus(s.focus + 1)
		case s.keys.IsAction(msg, actionPrevField, scopeLogin):
			return s.setFocus(s.focus - 1)
		case s.keys.IsAction(msg, actionGoSignUp, scopeLogin):
			return s.callbacks.OnSwitchToSignUp
		case s.keys.IsAction(msg, actionGoHelp, scopeLogin):
			return s.callbacks.OnNavigateToHelp
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	field := s.fields[s.focus]
	if v := s.inputs[s.focus].Value(); v != s.form.Value(field) {
		s.form.Set(field, v)
		s.err = ""
	}
	return cmd
}

// submit starts an authentication attempt. Empty fields are reported and
// focused instead of being sent.
func (s *loginScreen) submit() tea.Cmd {
	if s.form.Submitting {
		return nil
	}
	if missing := s.form.Missing(); missing != "" {
		s.err = missing.Label() + " is required"
		s.notice = ""
		return s.focusField(missing)
	}

	attempt := uuid.NewString()
	ctx, cancel := context.WithCancel(s.ctx)
	s.form.Submitting = true
	s.attempt = attempt
	s.cancel = cancel
	s.err, s.notice = "", ""

	creds := auth.Credentials{Username: s.form.Username, Password: s.form.Password}
	log.Info().Str("attempt", attempt).Str("user", auth.Mask(creds.Username)).Msg("login submitted")

	authn := s.auth
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		defer cancel()
		err := authn.Authenticate(ctx, creds)
		return loginResultMsg{Attempt: attempt, Username: creds.Username, Err: err}
	})
}

func (s *loginScreen) finish(msg loginResultMsg) {
	if msg.Attempt == "" || msg.Attempt != s.attempt {
		return
	}
	s.form.Submitting = false
	s.attempt = ""
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if msg.Err != nil {
		s.err = auth.Describe(msg.Err)
		log.Warn().Str("attempt", msg.Attempt).Err(msg.Err).Msg("login failed")
		return
	}
	s.notice = "Signed in as " + strings.TrimSpace(msg.Username)
	log.Info().Str("attempt", msg.Attempt).Str("user", auth.Mask(msg.Username)).Msg("login accepted")
}

func (s *loginScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(nav.Login.Title()))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Width(44).Render("This is a secure FinceptTerminal authentication service that allows you access to FinceptTerminal services from wherever you are."))
	b.WriteString("\n\n")

	for i, f := range s.fields {
		label := labelStyle.Render(f.Label())
		if f == forms.LoginPassword {
			label = lipgloss.JoinHorizontal(lipgloss.Top, label, strings.Repeat(" ", 20), linkStyle.Render("Forgot Password"))
		}
		b.WriteString(label)
		b.WriteString("\n")
		style := inputStyle
		if i == s.focus {
			style = inputFocusStyle
		}
		b.WriteString(style.Width(40).Render(s.inputs[i].View()))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("Your B-Unit may be required to log in."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(44, lipgloss.Right, s.button()))
	b.WriteString("\n")

	switch {
	case s.err != "":
		b.WriteString(errorStyle.Render(s.err))
	case s.notice != "":
		b.WriteString(successStyle.Render(s.notice))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Don't have an account? "))
	b.WriteString(accentStyle.Render("Create Account"))

	card := cardStyle.Render(b.String())
	return layoutPage(width, height, card)
}

func (s *loginScreen) button() string {
	if s.form.Submitting {
		return buttonBusyStyle.Render(s.spinner.View() + " Next")
	}
	return buttonStyle.Render("Next")
}

const legalFooter = "© 2025 FinceptTerminal LP All rights reserved.   Contact Us  Terms of Service  Trademarks  Privacy Policy  Help Center"

// layoutPage wraps a centered card with the brand header and legal footer
// shared by the login and sign-up screens.
func layoutPage(width, height int, card string) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		brandStyle.Render("FinceptTerminal"),
		strings.Repeat(" ", max(1, width-len("FinceptTerminal")-len("? Help (F1)"))),
		mutedStyle.Render("? Help (F1)"),
	)
	footer := ansi.Truncate(mutedStyle.Render(legalFooter), max(1, width), "")
	bodyH := max(1, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.Place(width, bodyH, lipgloss.Center, lipgloss.Center, card)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
