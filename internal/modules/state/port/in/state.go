package in

import (
	"context"

	"studytrack/internal/modules/state/domain"
)

// Gateway reads and replaces the whole persisted record. Reads never fail and
// write failures are logged, not returned.
type Gateway interface {
	ReadState(ctx context.Context) domain.State
	WriteState(ctx context.Context, state domain.State)
	ClearState(ctx context.Context)
}
