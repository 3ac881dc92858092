package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
)

// Action is what a command does with a ready session.
type Action func(ctx context.Context, session *Session) error

// RunApp - opens the configured snapshot storage, builds a session and runs action with it.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, term *console.Console, action Action) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	repo, closeRepo, err := openSnapshotRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close snapshot storage", "error", err)
		}
	}()

	log.Debug("snapshot storage ready", "driver", conf.Storage.Driver)

	session := NewSession(logger, term, repo, random.New(), conf.Players)

	return action(ctx, session)
}

func openSnapshotRepository(ctx context.Context, conf *config.Config) (repository.SnapshotRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.DriverRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSnapshotRepository(redisStorage.Connection, conf.Storage.RedisKey), redisStorage.Close, nil
	case config.DriverFile:
		return repository.NewFileSnapshotRepository(conf.Storage.FilePath), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, conf.Storage.Driver)
	}
}
