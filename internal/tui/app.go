// Package tui is the bubbletea shell: it owns the Navigator, mounts exactly
// one screen at a time and routes messages to it.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/fincept/fincept-shell/internal/auth"
	"github.com/fincept/fincept-shell/internal/helpdesk"
	"github.com/fincept/fincept-shell/internal/nav"
)

// screen is one mounted full-page view. Screens are rebuilt on every
// navigation, so their state never outlives a visit.
type screen interface {
	ID() nav.Screen
	Scope() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	// Close releases pending work when the screen is unmounted.
	Close()
}

// Options wires the shell's collaborators.
type Options struct {
	Auth          auth.Service
	Keys          *KeyRegistry
	FuzzyDistance int
	Now           func() time.Time
	// Status is shown on the status line until the first screen message.
	Status    string
	StatusErr bool
}

// Model is the root bubbletea model.
type Model struct {
	ctx       context.Context
	opts      Options
	nav       *nav.Navigator
	active    screen
	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

func New(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Auth == nil {
		opts.Auth = auth.NewSimulated(auth.DefaultLatency)
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FuzzyDistance < 0 {
		opts.FuzzyDistance = helpdesk.DefaultFuzzyDistance
	}
	m := Model{
		ctx:       ctx,
		opts:      opts,
		nav:       nav.New(),
		width:     100,
		height:    32,
		status:    opts.Status,
		statusErr: opts.StatusErr,
	}
	m.active = m.mount(m.nav.Current())
	return m
}

func (m Model) Init() tea.Cmd {
	return m.active.Init()
}

// Current returns the screen being shown.
func (m Model) Current() nav.Screen {
	return m.nav.Current()
}

func (m Model) mount(s nav.Screen) screen {
	switch s {
	case nav.SignUp:
		return newSignUpScreen(m.ctx, m.opts.Keys, m.opts.Auth, SignUpCallbacks{
			OnSwitchToSignIn: navigateTo(nav.Login),
			OnNavigateToHelp: navigateTo(nav.Help),
		})
	case nav.Help:
		return newHelpScreen(m.opts.Keys, m.opts.FuzzyDistance, m.opts.Now, HelpCallbacks{
			OnBack: goBack,
		})
	default:
		return newLoginScreen(m.ctx, m.opts.Keys, m.opts.Auth, LoginCallbacks{
			OnSwitchToSignUp: navigateTo(nav.SignUp),
			OnNavigateToHelp: navigateTo(nav.Help),
		})
	}
}

// navigate applies a Navigator transition and remounts the screen.
func (m Model) navigate(step func(*nav.Navigator)) (Model, tea.Cmd) {
	from := m.nav.Current()
	step(m.nav)
	to := m.nav.Current()
	if m.active != nil {
		m.active.Close()
	}
	m.active = m.mount(to)
	m.status, m.statusErr = "", false
	log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("navigate")
	return m, m.active.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case navigateMsg:
		return m.navigate(func(n *nav.Navigator) { n.Go(msg.To) })
	case backMsg:
		return m.navigate((*nav.Navigator).Back)
	case statusMsg:
		m.status, m.statusErr = msg.Text, msg.IsErr
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || m.opts.Keys.IsAction(msg, actionQuit, m.active.Scope()) {
			m.quitting = true
			m.active.Close()
			return m, tea.Quit
		}
	}
	return m, m.active.Update(msg)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	bodyH := max(1, m.height-2)
	body := clipHeight(m.active.View(m.width, bodyH), bodyH)
	body = lipgloss.NewStyle().Height(bodyH).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		renderStatusBar(m.status, m.statusErr, m.width),
		renderFooter(m.opts.Keys, m.active.Scope(), m.width, screenHelp(m.active)...),
	)
}
