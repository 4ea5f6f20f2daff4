package clock

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// System returns the wall clock used outside of tests.
func System() clockwork.Clock {
	return clockwork.NewRealClock()
}

// LocalDate formats t as a YYYY-MM-DD calendar date in t's location.
func LocalDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MinuteOfDay returns minutes elapsed since midnight in t's location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func AddDays(date string, days int) (string, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}
	return day.AddDate(0, 0, days).Format(DateLayout), nil
}
