package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"studytrack/internal/modules/reminder/domain"
	reminderin "studytrack/internal/modules/reminder/port/in"
	reminderout "studytrack/internal/modules/reminder/port/out"
	"studytrack/internal/platform/clock"
)

// Scheduler polls today's sessions once on Start and then every Interval,
// handing each session that ends in the current minute to the registered
// callback. Callbacks run on the scheduler goroutine and must not call Start
// or Stop synchronously.
type Scheduler struct {
	clock    clockwork.Clock
	loc      *time.Location
	sessions reminderout.SessionLister
	settings reminderout.SettingsReader
	logger   zerolog.Logger

	lifecycle sync.Mutex

	mu       sync.Mutex
	callback reminderin.Callback
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewScheduler(clock clockwork.Clock, loc *time.Location, sessions reminderout.SessionLister, settings reminderout.SettingsReader, logger zerolog.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{clock: clock, loc: loc, sessions: sessions, settings: settings, logger: logger}
}

var _ reminderin.Scheduler = (*Scheduler)(nil)

// Start cancels a running loop before starting a new one, so at most one
// ticker is ever live.
func (s *Scheduler) Start(ctx context.Context) {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.stop()
	s.scan(ctx)

	loopCtx, cancel := context.WithCancel(ctx)
	ticker := s.clock.NewTicker(domain.Interval)
	done := make(chan struct{})
	s.mu.Lock()
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	go s.run(loopCtx, ticker, done)
	s.logger.Debug().Dur("interval", domain.Interval).Msg("reminder scheduler started")
}

// Stop returns once the loop has exited; no tick fires after it returns.
func (s *Scheduler) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if s.stop() {
		s.logger.Debug().Msg("reminder scheduler stopped")
	}
}

func (s *Scheduler) RegisterCallback(fn reminderin.Callback) {
	s.mu.Lock()
	s.callback = fn
	s.mu.Unlock()
}

func (s *Scheduler) Status() domain.Status {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return domain.Stopped
	}
	select {
	case <-done:
		return domain.Stopped
	default:
		return domain.Running
	}
}

func (s *Scheduler) stop() bool {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return false
	}
	cancel()
	<-done
	return true
}

func (s *Scheduler) run(ctx context.Context, ticker clockwork.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if ctx.Err() != nil {
				return
			}
			s.scan(ctx)
		}
	}
}

func (s *Scheduler) scan(ctx context.Context) {
	s.mu.Lock()
	callback := s.callback
	s.mu.Unlock()
	if callback == nil {
		return
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("reminder scan: load settings")
		return
	}
	if !settings.RemindersEnabled {
		return
	}

	now := s.clock.Now().In(s.loc)
	sessions, err := s.sessions.ListByDate(ctx, clock.LocalDate(now))
	if err != nil {
		s.logger.Warn().Err(err).Msg("reminder scan: list sessions")
		return
	}
	for _, session := range domain.Due(sessions, clock.MinuteOfDay(now)) {
		s.logger.Info().Str("id", session.ID).Str("title", session.Title).Msg("session reached its end")
		callback(session)
	}
}
