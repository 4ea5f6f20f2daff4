package in

import (
	"context"

	reminderin "studytrack/internal/modules/reminder/port/in"
)

type CLIHandler struct {
	scheduler reminderin.Scheduler
}

func NewCLIHandler(scheduler reminderin.Scheduler) CLIHandler {
	return CLIHandler{scheduler: scheduler}
}

// Run registers fn, starts polling and blocks until ctx is done.
func (h CLIHandler) Run(ctx context.Context, fn reminderin.Callback) {
	h.scheduler.RegisterCallback(fn)
	h.scheduler.Start(ctx)
	<-ctx.Done()
	h.scheduler.Stop()
	h.scheduler.RegisterCallback(nil)
}

func (h CLIHandler) Status() string {
	return h.scheduler.Status().String()
}
