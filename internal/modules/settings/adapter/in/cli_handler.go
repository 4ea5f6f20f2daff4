package in

import (
	"context"

	settingsdto "studytrack/internal/modules/settings/dto"
	settingsin "studytrack/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) Set(ctx context.Context, key string, enabled bool) (settingsdto.SettingsOutput, error) {
	return h.usecase.Toggle(ctx, settingsdto.ToggleInput{Key: key, Enabled: enabled})
}
