package domain

import (
	"time"

	"studytrack/internal/platform/clock"
)

type Entry struct {
	Subject string
	Minutes int
}

type SubjectTotal struct {
	Subject      string
	TotalMinutes int
}

// Totals sums minutes per subject, keeping the order subjects first appear in.
func Totals(entries []Entry) []SubjectTotal {
	index := map[string]int{}
	out := []SubjectTotal{}
	for _, e := range entries {
		idx, ok := index[e.Subject]
		if !ok {
			idx = len(out)
			index[e.Subject] = idx
			out = append(out, SubjectTotal{Subject: e.Subject})
		}
		out[idx].TotalMinutes += e.Minutes
	}
	return out
}

// WeekStart is the Sunday on or before now, as a local calendar date.
func WeekStart(now time.Time) string {
	sunday := now.AddDate(0, 0, -int(now.Weekday()))
	return clock.LocalDate(sunday)
}
