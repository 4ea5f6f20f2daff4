package domain

import "strings"

// Validate checks candidate against the field rules and then against every
// session on the same date except excludeID. It stops at the first violation.
// Intervals are half-open, so back-to-back sessions do not overlap.
func Validate(candidate Fields, existing []Session, excludeID string) error {
	if strings.TrimSpace(candidate.Title) == "" {
		return MissingField("title")
	}
	if strings.TrimSpace(candidate.Subject) == "" {
		return MissingField("subject")
	}
	if candidate.Duration <= 0 {
		return &ValidationError{Kind: KindInvalidDuration}
	}
	if !ValidDate(candidate.Date) {
		return &ValidationError{Kind: KindInvalidDate, Field: "date"}
	}
	start, err := ParseStartTime(candidate.StartTime)
	if err != nil {
		return &ValidationError{Kind: KindInvalidStartTime, Field: "startTime"}
	}
	if !fitsDay(start, candidate.Duration) {
		return &ValidationError{Kind: KindCrossesMidnight}
	}
	end := start + candidate.Duration

	for _, other := range existing {
		if other.Date != candidate.Date {
			continue
		}
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		otherEnd, err := EndMinute(other.StartTime, other.Duration)
		if err != nil {
			// a stored row that cannot be placed on the day never conflicts
			continue
		}
		otherStart := otherEnd - other.Duration
		if start < otherEnd && end > otherStart {
			return Overlap(other.Title)
		}
	}
	return nil
}
