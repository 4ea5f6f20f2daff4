package domain

import (
	"time"

	sessiondomain "studytrack/internal/modules/session/domain"
	sessiondto "studytrack/internal/modules/session/dto"
)

// Interval between reminder ticks after the immediate one on start.
const Interval = time.Minute

type Status int

const (
	Stopped Status = iota
	Running
)

func (s Status) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Due returns the incomplete sessions whose end falls exactly on minuteOfDay,
// keeping the order of sessions. A minute missed while the process was not
// ticking is not caught up later.
func Due(sessions []sessiondto.SessionOutput, minuteOfDay int) []sessiondto.SessionOutput {
	var due []sessiondto.SessionOutput
	for _, s := range sessions {
		if s.Completed {
			continue
		}
		end, err := sessiondomain.EndMinute(s.StartTime, s.Duration)
		if err != nil {
			continue
		}
		if end == minuteOfDay {
			due = append(due, s)
		}
	}
	return due
}
