package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"studytrack/internal/modules/settings/domain"
	settingsdto "studytrack/internal/modules/settings/dto"
	settingsin "studytrack/internal/modules/settings/port/in"
	statein "studytrack/internal/modules/state/port/in"
	apperrors "studytrack/internal/platform/errors"
	"studytrack/internal/platform/tx"
)

type Interactor struct {
	state  statein.Gateway
	tx     tx.Manager
	logger zerolog.Logger
}

func NewInteractor(state statein.Gateway, txm tx.Manager, logger zerolog.Logger) settingsin.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &Interactor{state: state, tx: txm, logger: logger}
}

func (i *Interactor) Load(ctx context.Context) (settingsdto.SettingsOutput, error) {
	var current domain.Settings
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		current = i.state.ReadState(ctx).Settings
		return nil
	})
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return toOutput(current), nil
}

// Update replaces the settings unit and leaves sessions untouched.
func (i *Interactor) Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	next := domain.Settings{
		RemindersEnabled:            input.RemindersEnabled,
		DarkModeEnabled:             input.DarkModeEnabled,
		MotivationalMessagesEnabled: input.MotivationalMessagesEnabled,
		QuickAddEnabled:             input.QuickAddEnabled,
	}
	return i.apply(ctx, func(domain.Settings) domain.Settings { return next })
}

func (i *Interactor) Toggle(ctx context.Context, input settingsdto.ToggleInput) (settingsdto.SettingsOutput, error) {
	key, err := domain.ParseKey(input.Key)
	if err != nil {
		return settingsdto.SettingsOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	changed := false
	out, err := i.apply(ctx, func(s domain.Settings) domain.Settings {
		changed = s.Get(key) != input.Enabled
		return s.With(key, input.Enabled)
	})
	if err == nil {
		i.logger.Debug().Str("key", string(key)).Bool("enabled", input.Enabled).Bool("changed", changed).Msg("setting toggled")
	}
	return out, err
}

func (i *Interactor) apply(ctx context.Context, change func(domain.Settings) domain.Settings) (settingsdto.SettingsOutput, error) {
	var next domain.Settings
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		state := i.state.ReadState(ctx)
		next = change(state.Settings)
		if next == state.Settings {
			return nil
		}
		state.Settings = next
		i.state.WriteState(ctx, state)
		return nil
	})
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return toOutput(next), nil
}

func toOutput(s domain.Settings) settingsdto.SettingsOutput {
	return settingsdto.SettingsOutput{
		RemindersEnabled:            s.RemindersEnabled,
		DarkModeEnabled:             s.DarkModeEnabled,
		MotivationalMessagesEnabled: s.MotivationalMessagesEnabled,
		QuickAddEnabled:             s.QuickAddEnabled,
	}
}
