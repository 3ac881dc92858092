package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// SnapshotRepository holds the single saved session. Every Save overwrites the previous one.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	Load(ctx context.Context) (*entity.Snapshot, error)
	Delete(ctx context.Context) error
}

func encodeSnapshot(snapshot *entity.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("could not marshal snapshot: %w", err)
	}

	return data, nil
}

func decodeSnapshot(data []byte) (*entity.Snapshot, error) {
	var snapshot entity.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal snapshot: %w", apperror.ErrCorruptResume, err)
	}

	return &snapshot, nil
}
