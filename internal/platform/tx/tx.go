package tx

import (
	"context"
	"sync"
)

// Manager wraps the whole-state read-modify-write boundary.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// Serial runs every unit under one mutex so the reminder goroutine never
// observes a half-applied mutation.
type Serial struct {
	mu sync.Mutex
}

func NewSerial() *Serial {
	return &Serial{}
}

func (s *Serial) Within(ctx context.Context, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx)
}
