package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/player"
)

// Snapshot - captures the board, both players and whose turn it is.
func (that *Game) Snapshot() *entity.Snapshot {
	return &entity.Snapshot{
		SessionID: that.id,
		Board:     entity.BoardSnapshot{Grid: that.board.Grid()},
		Players: []entity.PlayerInfo{
			that.players[0].Info(),
			that.players[1].Info(),
		},
		CurrentIndex: that.current,
	}
}

func (that *Game) Save(ctx context.Context, sink SnapshotSaver) error {
	if err := sink.Save(ctx, that.Snapshot()); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// autoSave runs between placing a mark and passing the turn, so the stored index
// names the player due to move on resume.
func (that *Game) autoSave(ctx context.Context) error {
	if that.saver == nil {
		return nil
	}

	snapshot := that.Snapshot()
	snapshot.CurrentIndex = that.nextIndex()

	if err := that.saver.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrAutoSave, err)
	}

	return nil
}

// Load - reads a snapshot from source and rebuilds the session it describes.
func Load(ctx context.Context, source SnapshotLoader, builder PlayerBuilder, opts ...Option) (*Game, error) {
	snapshot, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	return FromSnapshot(snapshot, builder, opts...)
}

// FromSnapshot - validates a snapshot and rebuilds the session. Snapshots of games that are
// already decided are rejected with apperror.ErrCorruptResume.
func FromSnapshot(snapshot *entity.Snapshot, builder PlayerBuilder, opts ...Option) (*Game, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: empty snapshot", apperror.ErrCorruptResume)
	}

	if len(snapshot.Players) != playerCount {
		return nil, fmt.Errorf("%w: expected 2 players, got %d", apperror.ErrCorruptResume, len(snapshot.Players))
	}

	if snapshot.CurrentIndex != 0 && snapshot.CurrentIndex != 1 {
		return nil, fmt.Errorf("%w: invalid current player index %d", apperror.ErrCorruptResume, snapshot.CurrentIndex)
	}

	var players [playerCount]player.Player
	for i, info := range snapshot.Players {
		built, err := builder.Build(info)
		if err != nil {
			return nil, fmt.Errorf("%w: player %d: %w", apperror.ErrCorruptResume, i, err)
		}
		players[i] = built
	}

	board, err := entity.NewBoardFromGrid(snapshot.Board.Grid, players[0].Info().Mark, players[1].Info().Mark)
	if err != nil {
		return nil, fmt.Errorf("failed to restore board: %w", err)
	}

	if winner, ok := board.CheckWinner(); ok {
		return nil, fmt.Errorf("%w: %s has already won", apperror.ErrCorruptResume, winner)
	}

	if board.IsFull() {
		return nil, fmt.Errorf("%w: the game already ended in a draw", apperror.ErrCorruptResume)
	}

	game, err := New(players[0], players[1], slices.Concat(opts, []Option{WithSessionID(snapshot.SessionID)})...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptResume, err)
	}

	game.board = board
	game.current = snapshot.CurrentIndex

	return game, nil
}
