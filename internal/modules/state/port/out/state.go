package out

import "context"

// Slot is one durable key-value cell holding the encoded state. Load returns
// apperrors.ErrEmptySlot when nothing has been stored yet.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Store(ctx context.Context, payload []byte) error
	Remove(ctx context.Context) error
}
