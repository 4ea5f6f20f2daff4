package domain

import (
	"fmt"
	"time"

	"studytrack/internal/platform/clock"
)

const MinutesPerDay = 24 * 60

// Session is one scheduled study block. ID and CreatedAt never change after
// creation. Date may move through an update, which is validated against the
// sessions of the new date.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	Duration  int       `json:"duration"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Fields is the user-editable part of a session, the unit validation runs on.
type Fields struct {
	Title     string
	Subject   string
	Date      string
	StartTime string
	Duration  int
}

// Patch is a partial update; nil members keep the stored value.
type Patch struct {
	Title     *string
	Subject   *string
	Date      *string
	StartTime *string
	Duration  *int
	Completed *bool
}

func (s Session) Fields() Fields {
	return Fields{Title: s.Title, Subject: s.Subject, Date: s.Date, StartTime: s.StartTime, Duration: s.Duration}
}

// Apply merges p onto s. ID and CreatedAt are carried over untouched.
func (p Patch) Apply(s Session) Session {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Subject != nil {
		s.Subject = *p.Subject
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.StartTime != nil {
		s.StartTime = *p.StartTime
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Completed != nil {
		s.Completed = *p.Completed
	}
	return s
}

// ParseStartTime converts a zero-padded HH:mm wall-clock time into minutes
// since local midnight.
func ParseStartTime(value string) (int, error) {
	if len(value) != len(clock.TimeLayout) {
		return 0, fmt.Errorf("start time %q must be HH:mm", value)
	}
	t, err := time.Parse(clock.TimeLayout, value)
	if err != nil {
		return 0, fmt.Errorf("start time %q must be HH:mm", value)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// EndMinute is start+duration in minutes since midnight. Durations that are
// not positive or run past midnight have no end on the same day.
func EndMinute(startTime string, duration int) (int, error) {
	start, err := ParseStartTime(startTime)
	if err != nil {
		return 0, err
	}
	if !fitsDay(start, duration) {
		return 0, fmt.Errorf("%d minutes from %s does not end by midnight", duration, startTime)
	}
	return start + duration, nil
}

// fitsDay compares without adding so huge durations cannot wrap around.
func fitsDay(start, duration int) bool {
	return duration > 0 && duration <= MinutesPerDay-start
}

func ValidDate(value string) bool {
	if len(value) != len(clock.DateLayout) {
		return false
	}
	_, err := time.Parse(clock.DateLayout, value)
	return err == nil
}
