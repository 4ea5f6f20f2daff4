package in

import (
	"context"

	analyticsdto "studytrack/internal/modules/analytics/dto"
	analyticsin "studytrack/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Weekly(ctx context.Context, startDate string) (analyticsdto.WeeklyOutput, error) {
	return h.usecase.Weekly(ctx, startDate)
}
