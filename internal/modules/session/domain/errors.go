package domain

import (
	"fmt"

	apperrors "studytrack/internal/platform/errors"
)

type ViolationKind string

const (
	KindMissingField     ViolationKind = "missing_field"
	KindInvalidDuration  ViolationKind = "invalid_duration"
	KindInvalidDate      ViolationKind = "invalid_date"
	KindInvalidStartTime ViolationKind = "invalid_start_time"
	KindCrossesMidnight  ViolationKind = "crosses_midnight"
	KindOverlap          ViolationKind = "overlap"
)

// ValidationError names the first rule a candidate session broke. Its
// message is meant to be shown to the user as is.
type ValidationError struct {
	Kind     ViolationKind
	Field    string
	Conflict string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("%s is required", e.Field)
	case KindInvalidDuration:
		return "duration must be a positive number of minutes"
	case KindInvalidDate:
		return "date must be YYYY-MM-DD"
	case KindInvalidStartTime:
		return "start time must be HH:mm"
	case KindCrossesMidnight:
		return "session must end by midnight"
	case KindOverlap:
		return fmt.Sprintf("overlaps with %q", e.Conflict)
	}
	return string(e.Kind)
}

func (e *ValidationError) Unwrap() error { return apperrors.ErrInvalidInput }

func MissingField(field string) *ValidationError {
	return &ValidationError{Kind: KindMissingField, Field: field}
}

func Overlap(conflictingTitle string) *ValidationError {
	return &ValidationError{Kind: KindOverlap, Conflict: conflictingTitle}
}

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("session %s not found", e.ID) }

func (e *NotFoundError) Unwrap() error { return apperrors.ErrNotFound }
