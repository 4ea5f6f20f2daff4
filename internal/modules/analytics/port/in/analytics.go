package in

import (
	"context"

	"studytrack/internal/modules/analytics/dto"
)

type Usecase interface {
	// Weekly summarizes the seven days from startDate; empty means the current week.
	Weekly(ctx context.Context, startDate string) (dto.WeeklyOutput, error)
}
