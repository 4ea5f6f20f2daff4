package in

import (
	"context"

	"studytrack/internal/modules/reminder/domain"
	sessiondto "studytrack/internal/modules/session/dto"
)

// Callback receives one session whose scheduled end is the current minute.
type Callback func(session sessiondto.SessionOutput)

type Scheduler interface {
	Start(ctx context.Context)
	Stop()
	RegisterCallback(fn Callback)
	Status() domain.Status
}
