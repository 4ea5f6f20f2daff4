package dto

import "time"

type CreateInput struct {
	Title     string
	Subject   string
	Date      string
	StartTime string
	Duration  int
}

// UpdateInput carries only the fields being changed; nil keeps the stored value.
type UpdateInput struct {
	ID        string
	Title     *string
	Subject   *string
	Date      *string
	StartTime *string
	Duration  *int
	Completed *bool
}

type SessionOutput struct {
	ID        string
	Title     string
	Subject   string
	Date      string
	StartTime string
	Duration  int
	Completed bool
	CreatedAt time.Time
}

type ExportNotesOutput struct {
	Dir   string
	Paths []string
}
