package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analyticsdto "studytrack/internal/modules/analytics/dto"
	sessiondomain "studytrack/internal/modules/session/domain"
	sessiondto "studytrack/internal/modules/session/dto"
	settingsdto "studytrack/internal/modules/settings/dto"
	"studytrack/internal/ui/components"
)

type fakeSessions struct {
	added     []string
	completed map[string]bool
	removed   []string
	addErr    error
}

func (f *fakeSessions) Add(_ context.Context, title, subject, date, startTime string, duration int) (sessiondto.SessionOutput, error) {
	if f.addErr != nil {
		return sessiondto.SessionOutput{}, f.addErr
	}
	f.added = append(f.added, date+" "+startTime+" "+title)
	return sessiondto.SessionOutput{ID: "new", Title: title, Subject: subject, Date: date, StartTime: startTime, Duration: duration}, nil
}

func (f *fakeSessions) Remove(_ context.Context, id string) error {
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeSessions) MarkComplete(_ context.Context, id string, completed bool) error {
	if f.completed == nil {
		f.completed = map[string]bool{}
	}
	f.completed[id] = completed
	return nil
}

func (f *fakeSessions) ListToday(context.Context) ([]sessiondto.SessionOutput, error) {
	return nil, nil
}

func (f *fakeSessions) ListWeek(context.Context, string) ([]sessiondto.SessionOutput, error) {
	return nil, nil
}

func (f *fakeSessions) Today() string { return "2025-06-02" }

type fakeSettings struct {
	set map[string]bool
}

func (f *fakeSettings) Load(context.Context) (settingsdto.SettingsOutput, error) {
	return settingsdto.SettingsOutput{RemindersEnabled: true, MotivationalMessagesEnabled: true, QuickAddEnabled: true}, nil
}

func (f *fakeSettings) Set(_ context.Context, key string, enabled bool) (settingsdto.SettingsOutput, error) {
	if f.set == nil {
		f.set = map[string]bool{}
	}
	f.set[key] = enabled
	return settingsdto.SettingsOutput{RemindersEnabled: true, DarkModeEnabled: key == "dark-mode" && enabled}, nil
}

type fakeAnalytics struct{}

func (fakeAnalytics) Weekly(context.Context, string) (analyticsdto.WeeklyOutput, error) {
	return analyticsdto.WeeklyOutput{StartDate: "2025-06-01", EndDate: "2025-06-07"}, nil
}

func newTestModel(t *testing.T, prefs settingsdto.SettingsOutput) (Model, *fakeSessions, *fakeSettings) {
	t.Helper()
	sessions := &fakeSessions{}
	settings := &fakeSettings{}
	m := NewModel(sessions, settings, fakeAnalytics{})
	m.pick = func(int) int { return 0 }
	m = step(t, m, settingsLoadedMsg{settings: prefs})
	return m, sessions, settings
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func press(t *testing.T, m Model, keyName string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch keyName {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keyName)}
	}
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestReminderPopupMarkCompleteShowsMotivation(t *testing.T) {
	t.Parallel()
	m, sessions, _ := newTestModel(t, settingsdto.SettingsOutput{RemindersEnabled: true, MotivationalMessagesEnabled: true})
	m = step(t, m, ReminderMsg{Session: sessiondto.SessionOutput{ID: "s-1", Title: "Algebra", Subject: "Math"}})
	require.True(t, m.reminderVisible())
	assert.Contains(t, m.View(), "Algebra")

	m, cmd := press(t, m, "c")
	assert.False(t, m.reminderVisible())
	require.NotNil(t, cmd)
	msg := cmd()
	assert.True(t, sessions.completed["s-1"])
	assert.Equal(t, sessionChangedMsg{status: motivationalMessages[0]}, msg)
}

func TestReminderPopupWithoutMotivation(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t, settingsdto.SettingsOutput{RemindersEnabled: true})
	m = step(t, m, ReminderMsg{Session: sessiondto.SessionOutput{ID: "s-1", Title: "Algebra"}})
	_, cmd := press(t, m, "c")
	assert.Equal(t, sessionChangedMsg{status: `"Algebra" completed`}, cmd())
}

func TestReminderPopupHiddenWhileRemindersDisabled(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t, settingsdto.SettingsOutput{})
	m = step(t, m, ReminderMsg{Session: sessiondto.SessionOutput{ID: "s-1", Title: "Algebra"}})
	assert.False(t, m.reminderVisible())
	assert.NotContains(t, m.View(), "Session finished")
}

func TestReminderDismiss(t *testing.T) {
	t.Parallel()
	m, sessions, _ := newTestModel(t, settingsdto.SettingsOutput{RemindersEnabled: true})
	m = step(t, m, ReminderMsg{Session: sessiondto.SessionOutput{ID: "s-1"}})
	m, cmd := press(t, m, "esc")
	assert.Nil(t, cmd)
	assert.False(t, m.reminderVisible())
	assert.Empty(t, sessions.completed)
}

func TestQuickAddUsesTodayAndShowsValidationVerbatim(t *testing.T) {
	t.Parallel()
	m, sessions, _ := newTestModel(t, settingsdto.SettingsOutput{QuickAddEnabled: true})

	cmd := m.quickAddCmd("Algebra | Math | 14:00 | 45")
	require.NotNil(t, cmd)
	added, ok := cmd().(sessionAddedMsg)
	require.True(t, ok)
	require.NoError(t, added.err)
	assert.Equal(t, []string{"2025-06-02 14:00 Algebra"}, sessions.added)

	sessions.addErr = sessiondomain.Overlap("Physics")
	m = step(t, m, m.quickAddCmd("Chem | Science | 14:30 | 30")())
	assert.True(t, m.statusErr)
	assert.Equal(t, `overlaps with "Physics"`, m.status)
}

func TestQuickAddDisabled(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t, settingsdto.SettingsOutput{})
	m, cmd := press(t, m, "a")
	assert.Nil(t, cmd)
	assert.False(t, m.quickAdd.Visible())
	assert.Equal(t, "quick add is disabled in settings", m.status)
}

func TestQuickAddOverlayTakesKeys(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel(t, settingsdto.SettingsOutput{QuickAddEnabled: true})
	m, cmd := press(t, m, "a")
	require.NotNil(t, cmd)
	require.True(t, m.quickAdd.Visible())

	m, _ = press(t, m, "q")
	assert.True(t, m.quickAdd.Visible())
	m, cmd = press(t, m, "esc")
	assert.False(t, m.quickAdd.Visible())
	assert.Equal(t, components.QuickAddCancelMsg{}, cmd())
}

func TestSettingsToggleSwitchesTheme(t *testing.T) {
	t.Parallel()
	m, _, settings := newTestModel(t, settingsdto.SettingsOutput{RemindersEnabled: true})
	m.activeTab = tabSettings
	m, _ = press(t, m, "j")
	_, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	m = step(t, m, cmd())
	assert.True(t, settings.set["dark-mode"])
	assert.True(t, m.prefs.DarkModeEnabled)
	assert.Equal(t, "#1e1e2e", string(m.styles.Palette.Base))
}

func TestFormatMinutes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "45m", formatMinutes(45))
	assert.Equal(t, "2h", formatMinutes(120))
	assert.Equal(t, "1h 30m", formatMinutes(90))
}
