package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type redisSnapshot struct {
	client *redis.Client
	key    string
}

func NewRedisSnapshotRepository(client *redis.Client, key string) SnapshotRepository {
	return &redisSnapshot{
		client: client,
		key:    key,
	}
}

func (that *redisSnapshot) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	if err = that.client.Set(ctx, that.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func (that *redisSnapshot) Load(ctx context.Context) (*entity.Snapshot, error) {
	response, err := that.client.Get(ctx, that.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSnapshotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return decodeSnapshot(response)
}

func (that *redisSnapshot) Delete(ctx context.Context) error {
	deleted, err := that.client.Del(ctx, that.key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrSnapshotNotFound
	}

	return nil
}
