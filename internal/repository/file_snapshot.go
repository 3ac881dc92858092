package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const snapshotFileMode = 0o644

type fileSnapshot struct {
	path string
}

// NewFileSnapshotRepository - stores the snapshot as JSON at path.
func NewFileSnapshotRepository(path string) SnapshotRepository {
	return &fileSnapshot{
		path: path,
	}
}

func (that *fileSnapshot) Save(_ context.Context, snapshot *entity.Snapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(that.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	if err = os.WriteFile(that.path, data, snapshotFileMode); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

func (that *fileSnapshot) Load(_ context.Context) (*entity.Snapshot, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperror.ErrSnapshotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return decodeSnapshot(data)
}

func (that *fileSnapshot) Delete(_ context.Context) error {
	err := os.Remove(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return apperror.ErrSnapshotNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
