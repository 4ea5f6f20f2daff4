package out

import (
	"context"

	sessiondto "studytrack/internal/modules/session/dto"
	settingsdto "studytrack/internal/modules/settings/dto"
)

type SessionLister interface {
	ListByDate(ctx context.Context, date string) ([]sessiondto.SessionOutput, error)
}

type SettingsReader interface {
	Load(ctx context.Context) (settingsdto.SettingsOutput, error)
}
