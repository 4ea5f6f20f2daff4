package in

import (
	"context"

	sessiondto "studytrack/internal/modules/session/dto"
	sessionin "studytrack/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title, subject, date, startTime string, duration int) (sessiondto.SessionOutput, error) {
	return h.usecase.Create(ctx, sessiondto.CreateInput{Title: title, Subject: subject, Date: date, StartTime: startTime, Duration: duration})
}

func (h CLIHandler) Edit(ctx context.Context, input sessiondto.UpdateInput) (sessiondto.SessionOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.usecase.Remove(ctx, id)
}

func (h CLIHandler) MarkComplete(ctx context.Context, id string, completed bool) error {
	return h.usecase.MarkComplete(ctx, id, completed)
}

func (h CLIHandler) ListByDate(ctx context.Context, date string) ([]sessiondto.SessionOutput, error) {
	return h.usecase.ListByDate(ctx, date)
}

func (h CLIHandler) ListAll(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return h.usecase.ListAll(ctx)
}

func (h CLIHandler) ListToday(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return h.usecase.ListToday(ctx)
}

func (h CLIHandler) ListWeek(ctx context.Context, startDate string) ([]sessiondto.SessionOutput, error) {
	return h.usecase.ListWeek(ctx, startDate)
}

func (h CLIHandler) Today() string {
	return h.usecase.Today()
}

func (h CLIHandler) ExportNotes(ctx context.Context, dir string) (sessiondto.ExportNotesOutput, error) {
	return h.usecase.ExportNotes(ctx, dir)
}
