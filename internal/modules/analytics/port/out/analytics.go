package out

import (
	"context"

	sessiondto "studytrack/internal/modules/session/dto"
)

type WeekLister interface {
	ListWeek(ctx context.Context, startDate string) ([]sessiondto.SessionOutput, error)
}
