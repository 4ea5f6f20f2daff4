package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"studytrack/internal/modules/state/domain"
	statein "studytrack/internal/modules/state/port/in"
	stateout "studytrack/internal/modules/state/port/out"
	apperrors "studytrack/internal/platform/errors"
)

type Gateway struct {
	slot   stateout.Slot
	logger zerolog.Logger
}

func NewGateway(slot stateout.Slot, logger zerolog.Logger) *Gateway {
	return &Gateway{slot: slot, logger: logger}
}

var _ statein.Gateway = (*Gateway)(nil)

// ReadState persists defaults on first run. A payload that cannot be read or
// decoded yields defaults for this call only; the stored bytes stay as they are.
func (g *Gateway) ReadState(ctx context.Context) domain.State {
	payload, err := g.slot.Load(ctx)
	if errors.Is(err, apperrors.ErrEmptySlot) {
		state := domain.Default()
		g.logger.Info().Msg("no stored state, writing defaults")
		g.WriteState(ctx, state)
		return state
	}
	if err != nil {
		g.logger.Error().Err(err).Msg("load state failed, using defaults")
		return domain.Default()
	}
	state, err := Decode(payload)
	if err != nil {
		g.logger.Error().Err(err).Int("bytes", len(payload)).Msg("stored state is corrupt, using defaults")
		return domain.Default()
	}
	return state
}

func (g *Gateway) WriteState(ctx context.Context, state domain.State) {
	payload, err := Encode(state)
	if err != nil {
		g.logger.Error().Err(err).Msg("encode state failed")
		return
	}
	if err := g.slot.Store(ctx, payload); err != nil {
		g.logger.Error().Err(err).Msg("write state failed")
	}
}

func (g *Gateway) ClearState(ctx context.Context) {
	if err := g.slot.Remove(ctx); err != nil {
		g.logger.Error().Err(err).Msg("clear state failed")
	}
}

func Encode(state domain.State) ([]byte, error) {
	if state.Sessions == nil {
		state.Sessions = domain.Default().Sessions
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return payload, nil
}

// Decode fills a default record from payload, so settings keys missing from
// older payloads keep their defaults.
func Decode(payload []byte) (domain.State, error) {
	state := domain.Default()
	if err := json.Unmarshal(payload, &state); err != nil {
		return domain.State{}, fmt.Errorf("decode state: %w", err)
	}
	if state.Sessions == nil {
		state.Sessions = domain.Default().Sessions
	}
	return state, nil
}
