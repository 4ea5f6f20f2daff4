package usecase

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"studytrack/internal/modules/analytics/domain"
	analyticsdto "studytrack/internal/modules/analytics/dto"
	analyticsin "studytrack/internal/modules/analytics/port/in"
	analyticsout "studytrack/internal/modules/analytics/port/out"
	"studytrack/internal/platform/clock"
)

type Interactor struct {
	sessions analyticsout.WeekLister
	clock    clockwork.Clock
	loc      *time.Location
}

func NewInteractor(sessions analyticsout.WeekLister, clock clockwork.Clock, loc *time.Location) analyticsin.Usecase {
	if loc == nil {
		loc = time.Local
	}
	return &Interactor{sessions: sessions, clock: clock, loc: loc}
}

func (i *Interactor) Weekly(ctx context.Context, startDate string) (analyticsdto.WeeklyOutput, error) {
	if startDate == "" {
		startDate = domain.WeekStart(i.clock.Now().In(i.loc))
	}
	sessions, err := i.sessions.ListWeek(ctx, startDate)
	if err != nil {
		return analyticsdto.WeeklyOutput{}, err
	}
	endDate, err := clock.AddDays(startDate, 6)
	if err != nil {
		return analyticsdto.WeeklyOutput{}, err
	}

	out := analyticsdto.WeeklyOutput{StartDate: startDate, EndDate: endDate, Sessions: len(sessions)}
	entries := make([]domain.Entry, 0, len(sessions))
	for _, s := range sessions {
		entries = append(entries, domain.Entry{Subject: s.Subject, Minutes: s.Duration})
		out.TotalMinutes += s.Duration
		if s.Completed {
			out.Completed++
		}
	}
	for _, total := range domain.Totals(entries) {
		out.Totals = append(out.Totals, analyticsdto.SubjectTotalOutput{Subject: total.Subject, TotalMinutes: total.TotalMinutes})
	}
	return out, nil
}
