package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	analyticsdto "studytrack/internal/modules/analytics/dto"
	sessiondomain "studytrack/internal/modules/session/domain"
	sessiondto "studytrack/internal/modules/session/dto"
	settingsdto "studytrack/internal/modules/settings/dto"
	"studytrack/internal/ui/components"
	"studytrack/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type sessionPort interface {
	Add(ctx context.Context, title, subject, date, startTime string, duration int) (sessiondto.SessionOutput, error)
	Remove(ctx context.Context, id string) error
	MarkComplete(ctx context.Context, id string, completed bool) error
	ListToday(ctx context.Context) ([]sessiondto.SessionOutput, error)
	ListWeek(ctx context.Context, startDate string) ([]sessiondto.SessionOutput, error)
	Today() string
}

type settingsPort interface {
	Load(ctx context.Context) (settingsdto.SettingsOutput, error)
	Set(ctx context.Context, key string, enabled bool) (settingsdto.SettingsOutput, error)
}

type analyticsPort interface {
	Weekly(ctx context.Context, startDate string) (analyticsdto.WeeklyOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabToday tabID = iota
	tabWeek
	tabAnalytics
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{"Today", "Week", "Analytics", "Settings"}

type settingRow struct {
	key   string
	label string
	get   func(settingsdto.SettingsOutput) bool
}

var settingRows = []settingRow{
	{"reminders", "Session reminders", func(s settingsdto.SettingsOutput) bool { return s.RemindersEnabled }},
	{"dark-mode", "Dark mode", func(s settingsdto.SettingsOutput) bool { return s.DarkModeEnabled }},
	{"motivational-messages", "Motivational messages", func(s settingsdto.SettingsOutput) bool { return s.MotivationalMessagesEnabled }},
	{"quick-add", "Quick add", func(s settingsdto.SettingsOutput) bool { return s.QuickAddEnabled }},
}

var motivationalMessages = []string{
	"Great job! Keep up the excellent work!",
	"You're making amazing progress!",
	"Another session completed! You're on fire!",
	"Consistency is key, and you're nailing it!",
	"Your dedication is paying off!",
	"Well done! Every session counts!",
}

// ─── messages ────────────────────────────────────────────────────────────────

// ReminderMsg carries a session whose end time has been reached.
type ReminderMsg struct {
	Session sessiondto.SessionOutput
}

type todayLoadedMsg struct {
	sessions []sessiondto.SessionOutput
	err      error
}

type weekLoadedMsg struct {
	weekly   analyticsdto.WeeklyOutput
	sessions []sessiondto.SessionOutput
	err      error
}

type settingsLoadedMsg struct {
	settings settingsdto.SettingsOutput
	err      error
}

type sessionAddedMsg struct {
	session sessiondto.SessionOutput
	err     error
}

type sessionChangedMsg struct {
	status string
	err    error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Up       key.Binding
	Down     key.Binding
	QuickAdd key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next tab")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		QuickAdd: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "quick add")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle done / setting")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete session")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.QuickAdd, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Up, k.Down},
		{k.QuickAdd, k.Toggle, k.Delete},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. Business logic lives behind the ports;
// the model only keeps what is on screen.
type Model struct {
	sessions  sessionPort
	settings  settingsPort
	analytics analyticsPort

	today    []sessiondto.SessionOutput
	week     []sessiondto.SessionOutput
	weekly   analyticsdto.WeeklyOutput
	prefs    settingsdto.SettingsOutput
	reminder *sessiondto.SessionOutput

	activeTab tabID
	cursor    int
	keys      keyMap
	help      help.Model
	showHelp  bool
	quickAdd  components.QuickAdd
	styles    theme.Styles
	status    string
	statusErr bool
	width     int
	height    int

	pick func(n int) int
}

func NewModel(sessions sessionPort, settings settingsPort, analytics analyticsPort) Model {
	return Model{
		sessions:  sessions,
		settings:  settings,
		analytics: analytics,
		activeTab: tabToday,
		keys:      defaultKeys(),
		help:      help.New(),
		quickAdd:  components.NewQuickAdd(),
		styles:    theme.For(false),
		status:    "ready",
		pick:      rand.IntN,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSettingsCmd(), m.refreshCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The quick-add overlay takes keys unless a reminder is on top of it.
	if _, ok := msg.(tea.KeyMsg); ok && m.quickAdd.Visible() && !m.reminderVisible() {
		var cmd tea.Cmd
		m.quickAdd, cmd = m.quickAdd.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.quickAdd.SetWidth(min(m.width-4, 72))
		m.help.Width = m.width

	case ReminderMsg:
		s := msg.Session
		m.reminder = &s

	case settingsLoadedMsg:
		if msg.err != nil {
			m.setError("settings: " + msg.err.Error())
			return m, nil
		}
		m.prefs = msg.settings
		m.styles = theme.For(m.prefs.DarkModeEnabled)
		if !m.prefs.RemindersEnabled {
			m.reminder = nil
		}

	case todayLoadedMsg:
		if msg.err != nil {
			m.setError("today: " + msg.err.Error())
			return m, nil
		}
		m.today = msg.sessions
		m.clampCursor()

	case weekLoadedMsg:
		if msg.err != nil {
			m.setError("week: " + msg.err.Error())
			return m, nil
		}
		m.weekly = msg.weekly
		m.week = msg.sessions

	case sessionAddedMsg:
		if msg.err != nil {
			m.setError(validationMessage(msg.err))
			return m, nil
		}
		m.setStatus(fmt.Sprintf("added %q at %s", msg.session.Title, msg.session.StartTime))
		return m, m.refreshCmd()

	case sessionChangedMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			return m, nil
		}
		m.setStatus(msg.status)
		return m, m.refreshCmd()

	case components.QuickAddSubmitMsg:
		return m, m.quickAddCmd(msg.Input)

	case components.QuickAddCancelMsg:
		m.setStatus("ready")

	case tea.KeyMsg:
		if m.reminderVisible() {
			return m.updateReminder(msg)
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		return m.updateKeys(msg)
	}
	if m.quickAdd.Visible() {
		var cmd tea.Cmd
		m.quickAdd, cmd = m.quickAdd.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		m.cursor = 0
	case "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		m.cursor = 0
	case "?":
		m.showHelp = true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "a":
		if m.activeTab != tabToday {
			return m, nil
		}
		if !m.prefs.QuickAddEnabled {
			m.setStatus("quick add is disabled in settings")
			return m, nil
		}
		cmd := m.quickAdd.Open()
		return m, cmd
	case " ", "enter":
		switch m.activeTab {
		case tabToday:
			if s, ok := m.selectedToday(); ok {
				return m, m.markCompleteCmd(s, !s.Completed)
			}
		case tabSettings:
			if m.cursor < len(settingRows) {
				row := settingRows[m.cursor]
				return m, m.toggleSettingCmd(row.key, !row.get(m.prefs))
			}
		}
	case "d":
		if m.activeTab == tabToday {
			if s, ok := m.selectedToday(); ok {
				return m, m.removeCmd(s)
			}
		}
	}
	return m, nil
}

// updateReminder handles keys while the reminder popup is open.
func (m Model) updateReminder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "c", "enter":
		s := *m.reminder
		m.reminder = nil
		return m, m.markCompleteCmd(s, true)
	case "esc", "x":
		m.reminder = nil
		m.setStatus("reminder dismissed")
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.reminderVisible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.renderReminder())
	case m.quickAdd.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.quickAdd.View(m.styles))
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	default:
		content = m.activeView()
	}
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar))
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabToday:
		return m.renderToday()
	case tabWeek:
		return m.renderWeek()
	case tabAnalytics:
		return m.renderAnalytics()
	case tabSettings:
		return m.renderSettings()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = m.styles.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = m.styles.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := "studytrack  " + strings.Join(parts, m.styles.Muted.Render(" │ "))
	return m.styles.Bar.Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.statusErr {
		left = m.styles.Failed.Render(left)
	}
	right := m.styles.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "\n" + m.styles.Bar.Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

func (m Model) renderToday() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Today") + "\n\n")
	if len(m.today) == 0 {
		sb.WriteString(m.styles.Muted.Render("no sessions scheduled"))
		if m.prefs.QuickAddEnabled {
			sb.WriteString(m.styles.Muted.Render("  (a: quick add)"))
		}
		return m.styles.Pane.Render(sb.String())
	}
	for i, s := range m.today {
		line := m.sessionLine(s)
		if i == m.cursor {
			line = m.styles.Hot.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	return m.styles.Pane.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) renderWeek() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Week of %s", m.weekly.StartDate)) + "\n")
	if len(m.week) == 0 {
		sb.WriteString("\n" + m.styles.Muted.Render("no sessions this week"))
		return m.styles.Pane.Render(sb.String())
	}
	day := ""
	for _, s := range m.week {
		if s.Date != day {
			day = s.Date
			sb.WriteString("\n" + m.styles.Hot.Render(day) + "\n")
		}
		sb.WriteString("  " + m.sessionLine(s) + "\n")
	}
	return m.styles.Pane.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) renderAnalytics() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Weekly progress %s to %s", m.weekly.StartDate, m.weekly.EndDate)) + "\n\n")
	if len(m.weekly.Totals) == 0 {
		sb.WriteString(m.styles.Muted.Render("nothing studied yet this week"))
		return m.styles.Pane.Render(sb.String())
	}
	peak := 0
	width := 0
	for _, t := range m.weekly.Totals {
		peak = max(peak, t.TotalMinutes)
		width = max(width, lipgloss.Width(t.Subject))
	}
	for _, t := range m.weekly.Totals {
		bar := strings.Repeat("█", max(1, t.TotalMinutes*30/max(peak, 1)))
		fmt.Fprintf(&sb, "%-*s %s %s\n", width, t.Subject, m.styles.Done.Render(bar), formatMinutes(t.TotalMinutes))
	}
	fmt.Fprintf(&sb, "\n%s  %d/%d sessions completed", m.styles.Muted.Render("total "+formatMinutes(m.weekly.TotalMinutes)), m.weekly.Completed, m.weekly.Sessions)
	return m.styles.Pane.Render(sb.String())
}

func (m Model) renderSettings() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Settings") + "\n\n")
	for i, row := range settingRows {
		mark := m.styles.Muted.Render("[ ]")
		if row.get(m.prefs) {
			mark = m.styles.Done.Render("[x]")
		}
		prefix := "  "
		if i == m.cursor {
			prefix = m.styles.Hot.Render("> ")
		}
		sb.WriteString(prefix + mark + " " + row.label + "\n")
	}
	return m.styles.Pane.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) renderReminder() string {
	s := m.reminder
	body := m.styles.Hot.Render("Session finished") + "\n\n" +
		s.Title + "\n" +
		m.styles.Muted.Render(s.Subject+"  "+s.StartTime+" · "+formatMinutes(s.Duration)) + "\n\n" +
		m.styles.Done.Render("c") + " mark complete   " + m.styles.Muted.Render("esc") + " dismiss"
	return m.styles.Popup.Render(body)
}

func (m Model) sessionLine(s sessiondto.SessionOutput) string {
	check := m.styles.Muted.Render("○")
	title := s.Title
	if s.Completed {
		check = m.styles.Done.Render("●")
		title = m.styles.Muted.Render(title)
	}
	return fmt.Sprintf("%s %s  %s  %s", check, s.StartTime, title, m.styles.Muted.Render(s.Subject+" · "+formatMinutes(s.Duration)))
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m *Model) clampCursor() {
	limit := 0
	switch m.activeTab {
	case tabToday:
		limit = len(m.today)
	case tabSettings:
		limit = len(settingRows)
	}
	if m.cursor >= limit {
		m.cursor = max(limit-1, 0)
	}
}

// reminderVisible gates the popup on the reminders setting.
func (m Model) reminderVisible() bool {
	return m.reminder != nil && m.prefs.RemindersEnabled
}

func (m Model) selectedToday() (sessiondto.SessionOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.today) {
		return sessiondto.SessionOutput{}, false
	}
	return m.today[m.cursor], true
}

func (m Model) motivation() string {
	return motivationalMessages[m.pick(len(motivationalMessages))]
}

// validationMessage renders a validation failure verbatim and anything else
// with context.
func validationMessage(err error) string {
	var verr *sessiondomain.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return "add failed: " + err.Error()
}

func formatMinutes(total int) string {
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	if total%60 == 0 {
		return fmt.Sprintf("%dh", total/60)
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) refreshCmd() tea.Cmd {
	return tea.Batch(m.loadTodayCmd(), m.loadWeekCmd())
}

func (m Model) loadSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.settings.Load(context.Background())
		return settingsLoadedMsg{settings: out, err: err}
	}
}

func (m Model) loadTodayCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.sessions.ListToday(context.Background())
		return todayLoadedMsg{sessions: out, err: err}
	}
}

// loadWeekCmd fetches analytics first so the week list shares its start date.
func (m Model) loadWeekCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		weekly, err := m.analytics.Weekly(ctx, "")
		if err != nil {
			return weekLoadedMsg{err: err}
		}
		sessions, err := m.sessions.ListWeek(ctx, weekly.StartDate)
		return weekLoadedMsg{weekly: weekly, sessions: sessions, err: err}
	}
}

func (m Model) quickAddCmd(input string) tea.Cmd {
	if input == "" {
		return nil
	}
	entry, err := components.ParseQuickAdd(input)
	if err != nil {
		return func() tea.Msg { return sessionAddedMsg{err: err} }
	}
	return func() tea.Msg {
		out, err := m.sessions.Add(context.Background(), entry.Title, entry.Subject, m.sessions.Today(), entry.StartTime, entry.Duration)
		return sessionAddedMsg{session: out, err: err}
	}
}

func (m Model) markCompleteCmd(s sessiondto.SessionOutput, completed bool) tea.Cmd {
	cheer := ""
	if completed && m.prefs.MotivationalMessagesEnabled {
		cheer = m.motivation()
	}
	return func() tea.Msg {
		if err := m.sessions.MarkComplete(context.Background(), s.ID, completed); err != nil {
			return sessionChangedMsg{err: err}
		}
		status := fmt.Sprintf("%q marked incomplete", s.Title)
		if completed {
			status = fmt.Sprintf("%q completed", s.Title)
		}
		if cheer != "" {
			status = cheer
		}
		return sessionChangedMsg{status: status}
	}
}

func (m Model) removeCmd(s sessiondto.SessionOutput) tea.Cmd {
	return func() tea.Msg {
		if err := m.sessions.Remove(context.Background(), s.ID); err != nil {
			return sessionChangedMsg{err: err}
		}
		return sessionChangedMsg{status: fmt.Sprintf("removed %q", s.Title)}
	}
}

func (m Model) toggleSettingCmd(key string, enabled bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.settings.Set(context.Background(), key, enabled)
		return settingsLoadedMsg{settings: out, err: err}
	}
}
