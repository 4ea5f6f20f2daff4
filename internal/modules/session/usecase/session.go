package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"studytrack/internal/modules/session/domain"
	sessiondto "studytrack/internal/modules/session/dto"
	sessionin "studytrack/internal/modules/session/port/in"
	sessionout "studytrack/internal/modules/session/port/out"
	"studytrack/internal/modules/session/service"
	statedomain "studytrack/internal/modules/state/domain"
	statein "studytrack/internal/modules/state/port/in"
	"studytrack/internal/platform/clock"
	"studytrack/internal/platform/tx"
)

type Interactor struct {
	svc    *service.SessionService
	state  statein.Gateway
	tx     tx.Manager
	notes  sessionout.NoteWriter
	logger zerolog.Logger
}

func NewInteractor(svc *service.SessionService, state statein.Gateway, txm tx.Manager, notes sessionout.NoteWriter, logger zerolog.Logger) sessionin.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &Interactor{svc: svc, state: state, tx: txm, notes: notes, logger: logger}
}

func (i *Interactor) Create(ctx context.Context, input sessiondto.CreateInput) (sessiondto.SessionOutput, error) {
	fields := domain.Fields{
		Title:     input.Title,
		Subject:   input.Subject,
		Date:      input.Date,
		StartTime: input.StartTime,
		Duration:  input.Duration,
	}
	var created domain.Session
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		state := i.state.ReadState(ctx).Clone()
		if err := domain.Validate(fields, state.Sessions, ""); err != nil {
			return err
		}
		created = i.svc.Build(fields)
		state.Sessions = append(state.Sessions, created)
		i.state.WriteState(ctx, state)
		return nil
	})
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	i.logger.Debug().Str("id", created.ID).Str("date", created.Date).Str("start", created.StartTime).Msg("session created")
	return toOutput(created), nil
}

func (i *Interactor) Update(ctx context.Context, input sessiondto.UpdateInput) (sessiondto.SessionOutput, error) {
	patch := domain.Patch{
		Title:     input.Title,
		Subject:   input.Subject,
		Date:      input.Date,
		StartTime: input.StartTime,
		Duration:  input.Duration,
		Completed: input.Completed,
	}
	var updated domain.Session
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		state := i.state.ReadState(ctx).Clone()
		idx := indexOf(state.Sessions, input.ID)
		if idx < 0 {
			return &domain.NotFoundError{ID: input.ID}
		}
		merged := patch.Apply(state.Sessions[idx])
		if err := domain.Validate(merged.Fields(), state.Sessions, merged.ID); err != nil {
			return err
		}
		state.Sessions[idx] = merged
		i.state.WriteState(ctx, state)
		updated = merged
		return nil
	})
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	i.logger.Debug().Str("id", updated.ID).Msg("session updated")
	return toOutput(updated), nil
}

// Remove is a no-op for unknown ids; nothing is written in that case.
func (i *Interactor) Remove(ctx context.Context, id string) error {
	return i.tx.Within(ctx, func(ctx context.Context) error {
		state := i.state.ReadState(ctx)
		kept := make([]domain.Session, 0, len(state.Sessions))
		for _, s := range state.Sessions {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		if len(kept) == len(state.Sessions) {
			i.logger.Warn().Str("id", id).Msg("remove: session not found")
			return nil
		}
		i.state.WriteState(ctx, statedomain.State{Sessions: kept, Settings: state.Settings})
		i.logger.Debug().Str("id", id).Msg("session removed")
		return nil
	})
}

func (i *Interactor) MarkComplete(ctx context.Context, id string, completed bool) error {
	_, err := i.Update(ctx, sessiondto.UpdateInput{ID: id, Completed: &completed})
	return err
}

func (i *Interactor) ListByDate(ctx context.Context, date string) ([]sessiondto.SessionOutput, error) {
	return i.list(ctx, func(s domain.Session) bool { return s.Date == date })
}

// ListByDateRange compares YYYY-MM-DD strings, which sort chronologically.
func (i *Interactor) ListByDateRange(ctx context.Context, startDate, endDate string) ([]sessiondto.SessionOutput, error) {
	return i.list(ctx, func(s domain.Session) bool { return s.Date >= startDate && s.Date <= endDate })
}

func (i *Interactor) ListAll(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return i.list(ctx, func(domain.Session) bool { return true })
}

func (i *Interactor) Today() string {
	return i.svc.Today()
}

func (i *Interactor) ListToday(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	out, err := i.ListByDate(ctx, i.Today())
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].StartTime < out[b].StartTime })
	return out, nil
}

// ListWeek returns the seven days starting at startDate ordered by date then start.
func (i *Interactor) ListWeek(ctx context.Context, startDate string) ([]sessiondto.SessionOutput, error) {
	endDate, err := clock.AddDays(startDate, 6)
	if err != nil {
		return nil, &domain.ValidationError{Kind: domain.KindInvalidDate, Field: "date"}
	}
	out, err := i.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	sortChronological(out)
	return out, nil
}

func (i *Interactor) ExportNotes(ctx context.Context, dir string) (sessiondto.ExportNotesOutput, error) {
	if strings.TrimSpace(dir) == "" {
		return sessiondto.ExportNotesOutput{}, fmt.Errorf("export dir is required")
	}
	if i.notes == nil {
		return sessiondto.ExportNotesOutput{}, fmt.Errorf("note writer is not configured")
	}
	var sessions []domain.Session
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		sessions = i.state.ReadState(ctx).Clone().Sessions
		return nil
	})
	if err != nil {
		return sessiondto.ExportNotesOutput{}, err
	}
	sort.SliceStable(sessions, func(a, b int) bool {
		if sessions[a].Date != sessions[b].Date {
			return sessions[a].Date < sessions[b].Date
		}
		return sessions[a].StartTime < sessions[b].StartTime
	})
	out := sessiondto.ExportNotesOutput{Dir: dir, Paths: make([]string, 0, len(sessions))}
	for _, s := range sessions {
		path, err := i.notes.Write(ctx, dir, s)
		if err != nil {
			return out, fmt.Errorf("export session %s: %w", s.ID, err)
		}
		out.Paths = append(out.Paths, path)
	}
	return out, nil
}

func (i *Interactor) list(ctx context.Context, keep func(domain.Session) bool) ([]sessiondto.SessionOutput, error) {
	out := []sessiondto.SessionOutput{}
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		for _, s := range i.state.ReadState(ctx).Sessions {
			if keep(s) {
				out = append(out, toOutput(s))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func indexOf(sessions []domain.Session, id string) int {
	for idx, s := range sessions {
		if s.ID == id {
			return idx
		}
	}
	return -1
}

func sortChronological(out []sessiondto.SessionOutput) {
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Date != out[b].Date {
			return out[a].Date < out[b].Date
		}
		return out[a].StartTime < out[b].StartTime
	})
}

func toOutput(s domain.Session) sessiondto.SessionOutput {
	return sessiondto.SessionOutput{
		ID:        s.ID,
		Title:     s.Title,
		Subject:   s.Subject,
		Date:      s.Date,
		StartTime: s.StartTime,
		Duration:  s.Duration,
		Completed: s.Completed,
		CreatedAt: s.CreatedAt,
	}
}
