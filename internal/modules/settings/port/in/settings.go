package in

import (
	"context"

	"studytrack/internal/modules/settings/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.SettingsOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.SettingsOutput, error)
	Toggle(ctx context.Context, input dto.ToggleInput) (dto.SettingsOutput, error)
}
