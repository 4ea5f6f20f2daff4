package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"studytrack/internal/ui/theme"
)

// QuickAddSubmitMsg is emitted when the user confirms a line.
type QuickAddSubmitMsg struct{ Input string }

// QuickAddCancelMsg is emitted when the user presses esc.
type QuickAddCancelMsg struct{}

const QuickAddFormat = "title | subject | HH:mm | minutes"

// QuickAddEntry is one parsed quick-add line; the date is supplied by the caller.
type QuickAddEntry struct {
	Title     string
	Subject   string
	StartTime string
	Duration  int
}

// ParseQuickAdd splits "title | subject | HH:mm | minutes". Field contents are
// left for session validation to judge.
func ParseQuickAdd(input string) (QuickAddEntry, error) {
	parts := strings.Split(input, "|")
	if len(parts) != 4 {
		return QuickAddEntry{}, fmt.Errorf("expected %s", QuickAddFormat)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	minutes, err := strconv.Atoi(parts[3])
	if err != nil {
		return QuickAddEntry{}, fmt.Errorf("minutes must be a whole number, got %q", parts[3])
	}
	return QuickAddEntry{Title: parts[0], Subject: parts[1], StartTime: parts[2], Duration: minutes}, nil
}

// QuickAdd is a one-line overlay backed by bubbles/textinput.
type QuickAdd struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewQuickAdd() QuickAdd {
	ti := textinput.New()
	ti.Placeholder = "Algebra review | Math | 14:00 | 45"
	ti.CharLimit = 256
	return QuickAdd{input: ti}
}

func (q QuickAdd) Visible() bool { return q.visible }

// Open shows the overlay, clears the input, and returns the focus command.
func (q *QuickAdd) Open() tea.Cmd {
	q.visible = true
	q.input.SetValue("")
	return q.input.Focus()
}

func (q *QuickAdd) SetWidth(w int) { q.width = w }

func (q QuickAdd) Update(msg tea.Msg) (QuickAdd, tea.Cmd) {
	if !q.visible {
		return q, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			q.visible = false
			q.input.Blur()
			return q, func() tea.Msg { return QuickAddCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(q.input.Value())
			q.visible = false
			q.input.Blur()
			return q, func() tea.Msg { return QuickAddSubmitMsg{Input: val} }
		}
	}
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q QuickAdd) View(styles theme.Styles) string {
	if !q.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Quick add for today") + "\n")
	sb.WriteString("> " + q.input.View() + "\n\n")
	sb.WriteString(styles.Muted.Render(QuickAddFormat))

	w := q.width
	if w < 20 {
		w = 64
	}
	return styles.Popup.Width(w - 2).Render(sb.String())
}
