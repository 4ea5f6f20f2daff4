package service

import (
	"time"

	"github.com/jonboulle/clockwork"

	"studytrack/internal/modules/session/domain"
	"studytrack/internal/platform/clock"
	"studytrack/internal/platform/id"
)

type SessionService struct {
	clock clockwork.Clock
	loc   *time.Location
	idGen id.Generator
}

func NewSessionService(clock clockwork.Clock, loc *time.Location, idGen id.Generator) *SessionService {
	if loc == nil {
		loc = time.Local
	}
	return &SessionService{clock: clock, loc: loc, idGen: idGen}
}

// Build stamps a fresh identity onto fields. It does not validate.
func (s *SessionService) Build(fields domain.Fields) domain.Session {
	return domain.Session{
		ID:        s.idGen.New(),
		Title:     fields.Title,
		Subject:   fields.Subject,
		Date:      fields.Date,
		StartTime: fields.StartTime,
		Duration:  fields.Duration,
		Completed: false,
		CreatedAt: s.clock.Now().UTC(),
	}
}

// Today is the local calendar date.
func (s *SessionService) Today() string {
	return clock.LocalDate(s.clock.Now().In(s.loc))
}
