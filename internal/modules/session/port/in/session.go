package in

import (
	"context"

	"studytrack/internal/modules/session/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.SessionOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.SessionOutput, error)
	Remove(ctx context.Context, id string) error
	MarkComplete(ctx context.Context, id string, completed bool) error
	ListByDate(ctx context.Context, date string) ([]dto.SessionOutput, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]dto.SessionOutput, error)
	ListAll(ctx context.Context) ([]dto.SessionOutput, error)
	ListToday(ctx context.Context) ([]dto.SessionOutput, error)
	ListWeek(ctx context.Context, startDate string) ([]dto.SessionOutput, error)
	// Today is the local calendar date that ListToday reads.
	Today() string
	ExportNotes(ctx context.Context, dir string) (dto.ExportNotesOutput, error)
}
