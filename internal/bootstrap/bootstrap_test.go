package bootstrap_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/internal/bootstrap"
	"studytrack/internal/platform/config"
)

func newApp(t *testing.T, backend string) *bootstrap.App {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	cfg.Storage.Backend = backend
	app, err := bootstrap.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestAppRoundTripPerBackend(t *testing.T) {
	t.Parallel()
	for _, backend := range []string{config.BackendFile, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			app := newApp(t, backend)

			added, err := app.SessionCLI.Add(ctx, "Algebra", "Math", "2030-01-01", "09:00", 60)
			require.NoError(t, err)
			_, err = app.SessionCLI.Add(ctx, "Essay", "History", "2030-01-01", "09:30", 30)
			require.EqualError(t, err, `overlaps with "Algebra"`)

			_, err = app.SettingsCLI.Set(ctx, "dark-mode", true)
			require.NoError(t, err)

			payload, err := app.ExportState(ctx, bootstrap.ExportJSON)
			require.NoError(t, err)
			var record struct {
				Sessions []struct {
					ID string `json:"id"`
				} `json:"sessions"`
				Settings struct {
					DarkModeEnabled bool `json:"darkModeEnabled"`
				} `json:"settings"`
			}
			require.NoError(t, json.Unmarshal(payload, &record))
			require.Len(t, record.Sessions, 1)
			assert.Equal(t, added.ID, record.Sessions[0].ID)
			assert.True(t, record.Settings.DarkModeEnabled)

			weekly, err := app.AnalyticsCLI.Weekly(ctx, "2029-12-30")
			require.NoError(t, err)
			assert.Equal(t, 60, weekly.TotalMinutes)

			app.Reset(ctx)
			all, err := app.SessionCLI.ListAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
			prefs, err := app.SettingsCLI.Load(ctx)
			require.NoError(t, err)
			assert.False(t, prefs.DarkModeEnabled)
		})
	}
}

func TestExportStateYAML(t *testing.T) {
	t.Parallel()
	app := newApp(t, config.BackendFile)
	out, err := app.ExportState(context.Background(), "YAML")
	require.NoError(t, err)
	assert.Contains(t, string(out), "sessions: []\n")
	assert.Contains(t, string(out), "remindersEnabled: true\n")

	_, err = app.ExportState(context.Background(), "csv")
	require.Error(t, err)
}

func TestReminderStatusStartsStopped(t *testing.T) {
	t.Parallel()
	app := newApp(t, config.BackendFile)
	assert.Equal(t, "stopped", app.ReminderCLI.Status())
}
