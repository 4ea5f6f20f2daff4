package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studytrack/internal/modules/reminder/domain"
	sessiondto "studytrack/internal/modules/session/dto"
)

func TestDueMatchesExactEndMinuteOnly(t *testing.T) {
	t.Parallel()
	sessions := []sessiondto.SessionOutput{
		{ID: "a", StartTime: "09:00", Duration: 60},
		{ID: "b", StartTime: "09:00", Duration: 59},
		{ID: "c", StartTime: "09:30", Duration: 30, Completed: true},
		{ID: "d", StartTime: "bad", Duration: 30},
		{ID: "e", StartTime: "09:45", Duration: 15},
	}
	due := domain.Due(sessions, 600)
	ids := make([]string, 0, len(due))
	for _, s := range due {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"a", "e"}, ids)
	assert.Empty(t, domain.Due(sessions, 601))
}

func TestStatusString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "running", domain.Running.String())
	assert.Equal(t, "stopped", domain.Stopped.String())
}
