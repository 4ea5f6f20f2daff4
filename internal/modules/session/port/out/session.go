package out

import (
	"context"

	"studytrack/internal/modules/session/domain"
)

// NoteWriter renders one session as a markdown note under dir.
type NoteWriter interface {
	Write(ctx context.Context, dir string, session domain.Session) (string, error)
}
