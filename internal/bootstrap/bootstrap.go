package bootstrap

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	analyticsinadapter "studytrack/internal/modules/analytics/adapter/in"
	analyticsusecase "studytrack/internal/modules/analytics/usecase"
	reminderinadapter "studytrack/internal/modules/reminder/adapter/in"
	reminderservice "studytrack/internal/modules/reminder/service"
	sessioninadapter "studytrack/internal/modules/session/adapter/in"
	sessionoutadapter "studytrack/internal/modules/session/adapter/out"
	sessiondto "studytrack/internal/modules/session/dto"
	sessionservice "studytrack/internal/modules/session/service"
	sessionusecase "studytrack/internal/modules/session/usecase"
	settingsinadapter "studytrack/internal/modules/settings/adapter/in"
	settingsusecase "studytrack/internal/modules/settings/usecase"
	stateoutadapter "studytrack/internal/modules/state/adapter/out"
	stateout "studytrack/internal/modules/state/port/out"
	stateservice "studytrack/internal/modules/state/service"
	"studytrack/internal/platform/clock"
	"studytrack/internal/platform/config"
	"studytrack/internal/platform/id"
	"studytrack/internal/platform/logging"
	"studytrack/internal/platform/markdown"
	"studytrack/internal/platform/tx"
	uiapp "studytrack/internal/ui/app"
)

const (
	ExportJSON = "json"
	ExportYAML = "yaml"
)

type App struct {
	SessionCLI   sessioninadapter.CLIHandler
	SettingsCLI  settingsinadapter.CLIHandler
	AnalyticsCLI analyticsinadapter.CLIHandler
	ReminderCLI  reminderinadapter.CLIHandler

	state   *stateservice.Gateway
	closers []io.Closer
	logger  zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) (*App, error) {
	clk := clock.System()
	loc := time.Local
	ids := id.UUID{}
	txm := tx.NewSerial()

	app := &App{logger: logger}
	var slot stateout.Slot
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		sqliteSlot, err := stateoutadapter.NewSQLiteSlot(cfg.DBPath, cfg.Storage.Key, clk)
		if err != nil {
			return nil, fmt.Errorf("new sqlite slot: %w", err)
		}
		app.closers = append(app.closers, sqliteSlot)
		slot = sqliteSlot
	default:
		slot = stateoutadapter.NewFileSlot(cfg.StatePath)
	}
	app.state = stateservice.NewGateway(slot, logging.Component(logger, "state"))

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, loc, ids),
		app.state,
		txm,
		sessionoutadapter.NewVaultNoteStore(),
		logging.Component(logger, "session"),
	)
	settingsUC := settingsusecase.NewInteractor(app.state, txm, logging.Component(logger, "settings"))
	analyticsUC := analyticsusecase.NewInteractor(sessionUC, clk, loc)
	scheduler := reminderservice.NewScheduler(clk, loc, sessionUC, settingsUC, logging.Component(logger, "reminder"))

	app.SessionCLI = sessioninadapter.NewCLIHandler(sessionUC)
	app.SettingsCLI = settingsinadapter.NewCLIHandler(settingsUC)
	app.AnalyticsCLI = analyticsinadapter.NewCLIHandler(analyticsUC)
	app.ReminderCLI = reminderinadapter.NewCLIHandler(scheduler)
	return app, nil
}

// ExportState renders the persisted record as json or yaml.
func (a *App) ExportState(ctx context.Context, format string) ([]byte, error) {
	payload, err := stateservice.Encode(a.state.ReadState(ctx))
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", ExportJSON:
		return payload, nil
	case ExportYAML:
		return markdown.FromJSON(payload)
	default:
		return nil, fmt.Errorf("unsupported format %q (want %s|%s)", format, ExportJSON, ExportYAML)
	}
}

// Reset removes the persisted record; the next read starts from defaults.
func (a *App) Reset(ctx context.Context) {
	a.state.ClearState(ctx)
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func RunTUI(ctx context.Context, app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.SettingsCLI, app.AnalyticsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.ReminderCLI.Run(runCtx, func(s sessiondto.SessionOutput) {
			program.Send(uiapp.ReminderMsg{Session: s})
		})
	}()

	_, err := program.Run()
	cancel()
	<-done
	if err != nil {
		app.logger.Error().Err(err).Msg("tui exited")
	}
	return err
}
