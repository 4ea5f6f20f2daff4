package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessiondomain "studytrack/internal/modules/session/domain"
	"studytrack/internal/modules/settings/domain"
	settingsdto "studytrack/internal/modules/settings/dto"
	"studytrack/internal/modules/settings/usecase"
	stateout "studytrack/internal/modules/state/adapter/out"
	statedomain "studytrack/internal/modules/state/domain"
	stateport "studytrack/internal/modules/state/port/out"
	stateservice "studytrack/internal/modules/state/service"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/tx"
)

func TestLoadReturnsDefaultsOnFirstRun(t *testing.T) {
	t.Parallel()
	gw := stateservice.NewGateway(stateout.NewFileSlot(filepath.Join(t.TempDir(), "state.json")), zerolog.Nop())
	uc := usecase.NewInteractor(gw, tx.NewSerial(), zerolog.Nop())

	out, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settingsdto.SettingsOutput{
		RemindersEnabled:            true,
		DarkModeEnabled:             false,
		MotivationalMessagesEnabled: true,
		QuickAddEnabled:             true,
	}, out)
}

func TestToggleChangesOneKeyAndKeepsSessions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw := stateservice.NewGateway(stateout.NewFileSlot(filepath.Join(t.TempDir(), "state.json")), zerolog.Nop())
	seed := statedomain.Default()
	seed.Sessions = append(seed.Sessions, sessiondomain.Session{ID: "a", Title: "T", Subject: "S", Date: "2025-06-02", StartTime: "09:00", Duration: 30})
	gw.WriteState(ctx, seed)
	uc := usecase.NewInteractor(gw, nil, zerolog.Nop())

	out, err := uc.Toggle(ctx, settingsdto.ToggleInput{Key: "dark-mode", Enabled: true})
	require.NoError(t, err)
	assert.True(t, out.DarkModeEnabled)
	assert.True(t, out.RemindersEnabled)

	out, err = uc.Toggle(ctx, settingsdto.ToggleInput{Key: "Reminders", Enabled: false})
	require.NoError(t, err)
	assert.False(t, out.RemindersEnabled)
	assert.True(t, out.DarkModeEnabled)

	state := gw.ReadState(ctx)
	require.Len(t, state.Sessions, 1)
	assert.False(t, state.Settings.RemindersEnabled)

	_, err = uc.Toggle(ctx, settingsdto.ToggleInput{Key: "volume", Enabled: true})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUpdateReplacesAllToggles(t *testing.T) {
	t.Parallel()
	gw := stateservice.NewGateway(stateout.NewFileSlot(filepath.Join(t.TempDir(), "state.json")), zerolog.Nop())
	uc := usecase.NewInteractor(gw, tx.NewSerial(), zerolog.Nop())

	out, err := uc.Update(context.Background(), settingsdto.UpdateInput{QuickAddEnabled: true})
	require.NoError(t, err)
	assert.Equal(t, settingsdto.SettingsOutput{QuickAddEnabled: true}, out)

	loaded, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, out, loaded)
}

func TestSettingsWithAndGet(t *testing.T) {
	t.Parallel()
	s := domain.Defaults()
	for _, key := range domain.Keys {
		flipped := s.With(key, !s.Get(key))
		assert.Equal(t, !s.Get(key), flipped.Get(key), key)
	}
	_, err := domain.ParseKey("nope")
	require.Error(t, err)
}

type countingSlot struct {
	stateport.Slot
	stores int
}

func (c *countingSlot) Store(ctx context.Context, payload []byte) error {
	c.stores++
	return c.Slot.Store(ctx, payload)
}

func TestToggleToCurrentValueSkipsWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	slot := &countingSlot{Slot: stateout.NewFileSlot(filepath.Join(t.TempDir(), "state.json"))}
	gw := stateservice.NewGateway(slot, zerolog.Nop())
	gw.WriteState(ctx, statedomain.Default())
	require.Equal(t, 1, slot.stores)
	uc := usecase.NewInteractor(gw, tx.NewSerial(), zerolog.Nop())

	out, err := uc.Toggle(ctx, settingsdto.ToggleInput{Key: "reminders", Enabled: true})
	require.NoError(t, err)
	assert.True(t, out.RemindersEnabled)
	assert.Equal(t, 1, slot.stores)

	_, err = uc.Toggle(ctx, settingsdto.ToggleInput{Key: "reminders", Enabled: false})
	require.NoError(t, err)
	assert.Equal(t, 2, slot.stores)
}
