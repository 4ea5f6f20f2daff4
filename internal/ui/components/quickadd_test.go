package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/internal/ui/components"
)

func TestParseQuickAdd(t *testing.T) {
	t.Parallel()
	entry, err := components.ParseQuickAdd(" Algebra review | Math |14:00| 45 ")
	require.NoError(t, err)
	assert.Equal(t, components.QuickAddEntry{Title: "Algebra review", Subject: "Math", StartTime: "14:00", Duration: 45}, entry)
}

func TestParseQuickAddLeavesFieldRulesToValidation(t *testing.T) {
	t.Parallel()
	entry, err := components.ParseQuickAdd(" | Math | 9:00 | 0")
	require.NoError(t, err)
	assert.Empty(t, entry.Title)
	assert.Equal(t, "9:00", entry.StartTime)
	assert.Zero(t, entry.Duration)
}

func TestParseQuickAddRejectsShape(t *testing.T) {
	t.Parallel()
	_, err := components.ParseQuickAdd("Algebra | Math | 14:00")
	require.Error(t, err)
	_, err = components.ParseQuickAdd("Algebra | Math | 14:00 | soon")
	require.Error(t, err)
}

func TestQuickAddSubmitAndCancel(t *testing.T) {
	t.Parallel()
	q := components.NewQuickAdd()
	q.Open()
	require.True(t, q.Visible())
	for _, r := range "a | b | 10:00 | 5" {
		q, _ = q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	q, cmd := q.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, q.Visible())
	assert.Equal(t, components.QuickAddSubmitMsg{Input: "a | b | 10:00 | 5"}, cmd())

	q.Open()
	q, cmd = q.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, q.Visible())
	assert.Equal(t, components.QuickAddCancelMsg{}, cmd())
}
