package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studytrack/internal/modules/session/domain"
	sessionout "studytrack/internal/modules/session/port/out"
	"studytrack/internal/platform/clock"
	"studytrack/internal/platform/markdown"
	"studytrack/internal/platform/slug"
)

const noteSchemaVersion = 1

type VaultNoteStore struct{}

func NewVaultNoteStore() sessionout.NoteWriter {
	return VaultNoteStore{}
}

// Write places the note at <dir>/sessions/YYYY/MM/DD/HHMM-<title>.md,
// replacing an earlier export of the same session.
func (VaultNoteStore) Write(_ context.Context, dir string, session domain.Session) (string, error) {
	day, err := time.Parse(clock.DateLayout, session.Date)
	if err != nil {
		return "", fmt.Errorf("session %s has invalid date %q", session.ID, session.Date)
	}
	noteDir := filepath.Join(dir, "sessions", day.Format("2006"), day.Format("01"), day.Format("02"))
	if err := os.MkdirAll(noteDir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", strings.ReplaceAll(session.StartTime, ":", ""), slug.Make(session.Title))
	path := filepath.Join(noteDir, name)

	status := "planned"
	if session.Completed {
		status = "completed"
	}
	meta, err := markdown.Mapping(
		"schema_version", noteSchemaVersion,
		"id", session.ID,
		"title", session.Title,
		"subject", session.Subject,
		"date", session.Date,
		"start_time", session.StartTime,
		"duration_minutes", session.Duration,
		"completed", session.Completed,
		"created_at", session.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", err
	}
	when := session.StartTime
	if end, err := domain.EndMinute(session.StartTime, session.Duration); err == nil {
		when = fmt.Sprintf("%s-%02d:%02d", session.StartTime, end/60, end%60)
	}
	body := fmt.Sprintf("# %s\n\n- Subject: [[%s]]\n- When: %s %s\n- Duration: %d minutes\n- Status: %s\n",
		session.Title, session.Subject, session.Date, when, session.Duration, status)
	rendered, err := markdown.Note(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}
