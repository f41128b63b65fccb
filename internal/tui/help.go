package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/fincept/fincept-shell/internal/helpdesk"
	"github.com/fincept/fincept-shell/internal/nav"
)

// HelpCallbacks are the navigation intents the help terminal can raise.
type HelpCallbacks struct {
	OnBack func() tea.Msg
}

const (
	helpSidePanelWidth = 30
	helpMinCenterWidth = 60
	clockInterval      = time.Second
)

type helpScreen struct {
	keys      *KeyRegistry
	callbacks HelpCallbacks
	fuzzy     int
	now       func() time.Time
	mount     string
	clock     time.Time

	active    helpdesk.Tab
	search    textinput.Model
	searching bool
	query     string
	topics    []helpdesk.Topic
	cursor    int
	notice    string

	features table.Model
	apis     table.Model
}

func newHelpScreen(keys *KeyRegistry, fuzzy int, now func() time.Time, cb HelpCallbacks) *helpScreen {
	search := textinput.New()
	search.Placeholder = "Search Help Topics"
	search.Prompt = "/ "
	search.Width = 28
	s := &helpScreen{
		keys:      keys,
		callbacks: cb,
		fuzzy:     fuzzy,
		now:       now,
		mount:     uuid.NewString(),
		clock:     now(),
		active:    helpdesk.TabAbout,
		search:    search,
		topics:    helpdesk.Topics(),
		features:  newFeaturesTable(),
		apis:      newEndpointsTable(),
	}
	return s
}

func (s *helpScreen) ID() nav.Screen { return nav.Help }

func (s *helpScreen) Scope() string {
	if s.searching {
		return scopeHelpSearch
	}
	return scopeHelp
}

func (s *helpScreen) Init() tea.Cmd { return s.tick() }

func (s *helpScreen) Close() {}

func (s *helpScreen) tick() tea.Cmd {
	mount := s.mount
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg{Mount: mount, Time: t}
	})
}

func (s *helpScreen) ExtraHelp() []key.Binding {
	keys := make([]string, 0, len(helpdesk.Shortcuts()))
	for _, sc := range helpdesk.Shortcuts() {
		keys = append(keys, sc.Key)
	}
	return []key.Binding{key.NewBinding(key.WithKeys(keys...), key.WithHelp("f1-f6", "quick jump"))}
}

// SelectTab shows the block for a tab name or shortcut label.
func (s *helpScreen) SelectTab(name string) bool {
	tab, ok := helpdesk.Resolve(name)
	if !ok {
		return false
	}
	s.active = tab
	s.notice = ""
	return true
}

// SetSearchQuery filters the topic navigator.
func (s *helpScreen) SetSearchQuery(q string) {
	s.query = q
	s.topics = helpdesk.Search(helpdesk.Topics(), q, s.fuzzy)
	if s.cursor >= len(s.topics) {
		s.cursor = max(0, len(s.topics)-1)
	}
}

func (s *helpScreen) openTopic() {
	if len(s.topics) == 0 {
		return
	}
	t := s.topics[s.cursor]
	if tab, ok := t.Tab(); ok {
		s.SelectTab(string(tab))
		return
	}
	s.notice = fmt.Sprintf("%s: %s", t.Name, t.Status)
}

func (s *helpScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case clockMsg:
		if msg.Mount != s.mount {
			return nil
		}
		s.clock = msg.Time
		return s.tick()
	case tea.KeyMsg:
		if s.searching {
			return s.updateSearch(msg)
		}
		if sc, ok := helpdesk.ShortcutForKey(msg.String()); ok {
			s.SelectTab(sc.Label)
			return nil
		}
		switch {
		case s.keys.IsAction(msg, actionBack, scopeHelp):
			return s.callbacks.OnBack
		case s.keys.IsAction(msg, actionNextTab, scopeHelp):
			s.SelectTab(string(helpdesk.NextTab(s.active, 1)))
		case s.keys.IsAction(msg, actionPrevTab, scopeHelp):
			s.SelectTab(string(helpdesk.NextTab(s.active, -1)))
		case s.keys.IsAction(msg, actionTopicDown, scopeHelp):
			if s.cursor < len(s.topics)-1 {
				s.cursor++
			}
		case s.keys.IsAction(msg, actionTopicUp, scopeHelp):
			if s.cursor > 0 {
				s.cursor--
			}
		case s.keys.IsAction(msg, actionTopicOpen, scopeHelp):
			s.openTopic()
		case s.keys.IsAction(msg, actionSearch, scopeHelp):
			s.searching = true
			return s.search.Focus()
		}
		return nil
	}
	if s.searching {
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return cmd
	}
	return nil
}

func (s *helpScreen) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if s.keys.IsAction(msg, actionSearchDone, scopeHelpSearch) {
		s.searching = false
		s.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if v := s.search.Value(); v != s.query {
		s.SetSearchQuery(v)
	}
	return cmd
}

func (s *helpScreen) View(width, height int) string {
	header := s.renderHeader(width)
	status := s.renderStatusLine(width)

	centerW := width
	showSides := width >= helpMinCenterWidth+2*helpSidePanelWidth
	if showSides {
		centerW = width - 2*helpSidePanelWidth
	}
	center := panelStyle.Width(max(10, centerW-2)).Render(s.renderTabs() + "\n\n" + s.renderContent())
	var body string
	if showSides {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			panelStyle.Width(helpSidePanelWidth-2).Render(s.renderNavigator()),
			center,
			panelStyle.Width(helpSidePanelWidth-2).Render(s.renderQuickActions()),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			panelStyle.Width(max(10, width-2)).Render(s.renderTopicList()),
			center,
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (s *helpScreen) renderHeader(width int) string {
	title := accentStyle.Render("FINCEPT") + " " + titleStyle.Render(strings.ToUpper(nav.Help.Title()))
	search := inputStyle.Render(s.search.View())
	if s.searching {
		search = inputFocusStyle.Render(s.search.View())
	}
	top := lipgloss.JoinHorizontal(lipgloss.Center, title, "   ", search, "   ", mutedStyle.Render("[esc] BACK"))

	keys := make([]string, 0, len(helpdesk.Shortcuts()))
	for _, sc := range helpdesk.Shortcuts() {
		keys = append(keys, shortcutStyle.Render(sc.Caption()))
	}
	return ansi.Truncate(top, width, "") + "\n" + ansi.Truncate(strings.Join(keys, " "), width, "")
}

func (s *helpScreen) renderTabs() string {
	parts := make([]string, 0, len(helpdesk.Tabs()))
	for _, t := range helpdesk.Tabs() {
		if t == s.active {
			parts = append(parts, activeTabStyle.Render(string(t)))
		} else {
			parts = append(parts, inactiveTabStyle.Render(string(t)))
		}
	}
	return strings.Join(parts, " ")
}

// renderContent is a pure projection of the active tab.
func (s *helpScreen) renderContent() string {
	switch s.active {
	case helpdesk.TabFeatures:
		return panelTitleStyle.Render("TERMINAL FEATURES & CAPABILITIES") + "\n\n" + s.features.View()
	case helpdesk.TabSupport:
		return renderSupport()
	case helpdesk.TabAPIDocs:
		return panelTitleStyle.Render("API DOCUMENTATION & ENDPOINTS") + "\n\n" + s.apis.View()
	default:
		return renderAbout()
	}
}

func renderFacts(facts []helpdesk.Fact, labelW int) string {
	lines := make([]string, 0, len(facts))
	for _, f := range facts {
		lines = append(lines, mutedStyle.Width(labelW).Render(f.Label+":")+" "+labelStyle.Render(f.Value))
	}
	return strings.Join(lines, "\n")
}

func renderBullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, bodyStyle.Render("• "+it))
	}
	return strings.Join(lines, "\n")
}

func renderAbout() string {
	left := titleStyle.Render(helpdesk.ProductName) + "\n" +
		mutedStyle.Render(helpdesk.ProductTagline) + "\n\n" +
		renderFacts(helpdesk.AboutFacts(), 14)
	right := titleStyle.Render("Core Features") + "\n" + renderBullets(helpdesk.CoreFeatures())
	cols := lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(40).Render(left), right)
	return panelTitleStyle.Render("ABOUT FINCEPT TERMINAL") + "\n\n" + cols + "\n\n" +
		bodyStyle.Width(80).Render(helpdesk.AboutOverview)
}

func renderSupport() string {
	left := titleStyle.Render("Contact Information") + "\n" + renderFacts(helpdesk.SupportContacts(), 15)
	right := titleStyle.Render("Support Channels") + "\n" + renderBullets(helpdesk.SupportChannels())
	cols := lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(44).Render(left), right)
	return panelTitleStyle.Render("CUSTOMER SUPPORT & ASSISTANCE") + "\n\n" + cols
}

func (s *helpScreen) renderTopicList() string {
	if len(s.topics) == 0 {
		return mutedStyle.Render(fmt.Sprintf("No topics match %q", s.query))
	}
	lines := make([]string, 0, len(s.topics))
	for i, t := range s.topics {
		marker := "  "
		name := labelStyle.Render(t.Name)
		if i == s.cursor {
			marker = accentStyle.Render("> ")
			name = accentStyle.Render(t.Name)
		}
		status := lipgloss.NewStyle().Foreground(statusColor(t.Status)).Render(t.Status)
		lines = append(lines, marker+name+"  "+status)
	}
	return strings.Join(lines, "\n")
}

func (s *helpScreen) renderNavigator() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("HELP NAVIGATOR"))
	b.WriteString("\n\n")
	b.WriteString(s.renderTopicList())
	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(successStyle.Render(s.notice))
	}
	b.WriteString("\n\n")
	b.WriteString(panelTitleStyle.Render("HELP STATISTICS"))
	b.WriteString("\n")
	b.WriteString(renderFacts(helpdesk.Statistics(), 18))
	b.WriteString("\n\n")
	b.WriteString(panelTitleStyle.Render("SYSTEM STATUS"))
	b.WriteString("\n")
	b.WriteString(successStyle.Render("● ALL SYSTEMS OPERATIONAL"))
	return b.String()
}

func (s *helpScreen) renderQuickActions() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("QUICK ACTIONS"))
	b.WriteString("\n")
	b.WriteString(renderBullets(helpdesk.QuickActions()))
	b.WriteString("\n\n")
	b.WriteString(panelTitleStyle.Render("SYSTEM INFORMATION"))
	b.WriteString("\n")
	b.WriteString(renderFacts(helpdesk.SystemInfo(), 17))
	b.WriteString("\n\n")
	b.WriteString(panelTitleStyle.Render("RECENT HELP TOPICS"))
	b.WriteString("\n")
	b.WriteString(renderBullets(helpdesk.RecentTopics()))
	return b.String()
}

func (s *helpScreen) renderStatusLine(width int) string {
	parts := []string{
		"HELP STATUS: " + successStyle.Render("ONLINE"),
		"SUPPORT AVAILABLE: " + successStyle.Render("24/7"),
		"LAST UPDATED: " + labelStyle.Render(helpdesk.LastUpdated),
		"HELP VERSION: " + labelStyle.Render(helpdesk.HelpVersion),
		mutedStyle.Render(s.clock.Format("2006-01-02 15:04:05")),
	}
	if s.notice != "" {
		parts = append(parts, successStyle.Render(s.notice))
	}
	return ansi.Truncate(mutedStyle.Render(strings.Join(parts, "   ")), width, "")
}

func staticTableStyles() table.Styles {
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Foreground(colorAccent).
		Bold(true)
	st.Selected = st.Cell
	return st
}

func newFeaturesTable() table.Model {
	rows := make([]table.Row, 0, len(helpdesk.Features()))
	for _, f := range helpdesk.Features() {
		rows = append(rows, table.Row{f.Category, f.Description, f.Status, f.Access})
	}
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Feature Category", Width: 18},
			{Title: "Description", Width: 46},
			{Title: "Status", Width: 11},
			{Title: "Access Level", Width: 12},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(staticTableStyles()),
	)
}

func newEndpointsTable() table.Model {
	rows := make([]table.Row, 0, len(helpdesk.Endpoints()))
	for _, e := range helpdesk.Endpoints() {
		authCol := "NO"
		if e.Auth {
			authCol = "YES"
		}
		rows = append(rows, table.Row{e.Path, e.Method, e.Description, e.RateLimit, authCol})
	}
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Endpoint", Width: 28},
			{Title: "Method", Width: 6},
			{Title: "Description", Width: 30},
			{Title: "Rate Limit", Width: 10},
			{Title: "Auth", Width: 5},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(staticTableStyles()),
	)
}
