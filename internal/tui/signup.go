package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fincept/fincept-shell/internal/auth"
	"github.com/fincept/fincept-shell/internal/forms"
	"github.com/fincept/fincept-shell/internal/nav"
)

// SignUpCallbacks are the navigation intents the sign-up screen can raise.
type SignUpCallbacks struct {
	OnSwitchToSignIn func() tea.Msg
	OnNavigateToHelp func() tea.Msg
}

var signUpPlaceholders = map[forms.Field]string{
	forms.FirstName:       "John",
	forms.LastName:        "Doe",
	forms.Username:        "Choose a terminal username",
	forms.Email:           "john.doe@example.com",
	forms.Password:        "At least 8 characters",
	forms.ConfirmPassword: "Repeat your password",
}

type signUpScreen struct {
	ctx       context.Context
	keys      *KeyRegistry
	registrar auth.Registrar
	callbacks SignUpCallbacks

	form    forms.SignUpForm
	fields  []forms.Field
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	attempt string
	cancel  context.CancelFunc
	err     string
	notice  string
}

func newSignUpScreen(ctx context.Context, keys *KeyRegistry, r auth.Registrar, cb SignUpCallbacks) *signUpScreen {
	s := &signUpScreen{
		ctx:       ctx,
		keys:      keys,
		registrar: r,
		callbacks: cb,
		fields:    forms.SignUpFields(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for _, f := range s.fields {
		inp := textinput.New()
		inp.Placeholder = signUpPlaceholders[f]
		inp.Prompt = ""
		inp.CharLimit = 128
		inp.Width = 36
		if f.Secret() {
			inp.EchoMode = textinput.EchoPassword
			inp.EchoCharacter = '•'
		}
		s.inputs = append(s.inputs, inp)
	}
	s.inputs[0].Focus()
	return s
}

func (s *signUpScreen) ID() nav.Screen { return nav.SignUp }
func (s *signUpScreen) Scope() string  { return scopeSignUp }

func (s *signUpScreen) Init() tea.Cmd { return textinput.Blink }

func (s *signUpScreen) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *signUpScreen) setFocus(i int) tea.Cmd {
	n := len(s.inputs)
	i = (i%n + n) % n
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[s.focus].Focus()
}

// focusFirstError moves the cursor to the first field with a recorded error.
func (s *signUpScreen) focusFirstError() tea.Cmd {
	for i, f := range s.fields {
		if s.form.Errors[f] != nil {
			return s.setFocus(i)
		}
	}
	return nil
}

func (s *signUpScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case signUpResultMsg:
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
		case s.keys.IsAction(msg, actionSubmit, scopeSignUp):
			return s.submit()
		case s.keys.IsAction(msg, actionNextField, scopeSignUp):
			return s.setFocus(s.focus + 1)
		case s.keys.IsAction(msg, actionPrevField, scopeSignUp):
			return s.setFocus(s.focus - 1)
		case s.keys.IsAction(msg, actionGoLogin, scopeSignUp):
			return s.callbacks.OnSwitchToSignIn
		case s.keys.IsAction(msg, actionGoHelp, scopeSignUp):
			return s.callbacks.OnNavigateToHelp
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	field := s.fields[s.focus]
	if v := s.inputs[s.focus].Value(); v != s.form.Value(field) {
		s.form.UpdateField(field, v)
		s.err = ""
	}
	return cmd
}

// submit validates the whole form and, when it passes, starts a
// registration attempt.
func (s *signUpScreen) submit() tea.Cmd {
	if s.form.Submitting {
		return nil
	}
	s.notice = ""
	if !s.form.Submit() {
		log.Debug().Int("errors", len(s.form.Errors)).Msg("sign-up validation failed")
		return s.focusFirstError()
	}

	attempt := uuid.NewString()
	ctx, cancel := context.WithCancel(s.ctx)
	s.attempt = attempt
	s.cancel = cancel
	s.err = ""

	p := auth.Profile{
		FirstName: strings.TrimSpace(s.form.FirstName),
		LastName:  strings.TrimSpace(s.form.LastName),
		Username:  strings.TrimSpace(s.form.Username),
		Email:     strings.TrimSpace(s.form.Email),
		Password:  s.form.Password,
	}
	log.Info().Str("attempt", attempt).Str("user", auth.Mask(p.Username)).Msg("sign-up submitted")

	reg := s.registrar
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		defer cancel()
		err := reg.Register(ctx, p)
		return signUpResultMsg{Attempt: attempt, Username: p.Username, Err: err}
	})
}

func (s *signUpScreen) finish(msg signUpResultMsg) {
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
		if errors.Is(msg.Err, auth.ErrUsernameTaken) {
			s.form.Reject(forms.Username, s.err)
		}
		log.Warn().Str("attempt", msg.Attempt).Err(msg.Err).Msg("sign-up failed")
		return
	}
	s.notice = "Account created for " + msg.Username + ". Sign in to continue."
	log.Info().Str("attempt", msg.Attempt).Str("user", auth.Mask(msg.Username)).Msg("sign-up accepted")
}

func (s *signUpScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(nav.SignUp.Title()))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Width(56).Render("Register for a new FinceptTerminal account to access our financial terminal services and market data."))
	b.WriteString("\n\n")

	for i, f := range s.fields {
		style := inputStyle
		switch {
		case s.form.Errors[f] != nil:
			style = inputErrStyle
		case i == s.focus:
			style = inputFocusStyle
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Width(18).Render(f.Label()),
			style.Width(38).Render(s.inputs[i].View()),
		))
		b.WriteString("\n")
		if msg := s.form.Errors.Message(f); msg != "" {
			b.WriteString(strings.Repeat(" ", 18))
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(56, lipgloss.Right, s.button()))
	b.WriteString("\n")

	switch {
	case s.err != "":
		b.WriteString(errorStyle.Render(s.err))
	case s.notice != "":
		b.WriteString(successStyle.Render(s.notice))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Already have an account? "))
	b.WriteString(accentStyle.Render("Sign In"))

	return layoutPage(width, height, cardStyle.Render(b.String()))
}

func (s *signUpScreen) button() string {
	if s.form.Submitting {
		return buttonBusyStyle.Render(s.spinner.View() + " Create Account")
	}
	return buttonStyle.Render("Create Account")
}
