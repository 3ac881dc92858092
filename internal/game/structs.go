package game

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/player"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

type SnapshotSaver interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
}

type SnapshotLoader interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
}

// PlayerBuilder turns a stored player identity back into a player.
type PlayerBuilder interface {
	Build(info entity.PlayerInfo) (player.Player, error)
}

type Option func(*Game)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithAutoSave - writes a snapshot to saver after every applied move.
func WithAutoSave(saver SnapshotSaver) Option {
	return func(g *Game) {
		g.saver = saver
	}
}

func WithSessionID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.id = id
		}
	}
}
