package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	stateout "studytrack/internal/modules/state/port/out"
	apperrors "studytrack/internal/platform/errors"
)

type FileSlot struct {
	path string
}

func NewFileSlot(path string) stateout.Slot {
	return &FileSlot{path: path}
}

func (s *FileSlot) Load(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrEmptySlot
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return payload, nil
}

// Store writes to a sibling temp file and renames it over the slot so a
// crash never leaves a half-written record behind.
func (s *FileSlot) Store(_ context.Context, payload []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (s *FileSlot) Remove(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}
