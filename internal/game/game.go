package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/player"
)

const playerCount = 2

// Game drives one session: it owns the board and both players and advances one ply at a time.
type Game struct {
	id      string
	board   *entity.Board
	players [playerCount]player.Player
	current int
	status  Status
	winner  entity.Mark

	saver  SnapshotSaver
	logger *slog.Logger
}

// New - starts a session with first to move.
func New(first, second player.Player, opts ...Option) (*Game, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("%w: a game needs two players", apperror.ErrInvariantViolation)
	}

	board, err := entity.NewBoard(first.Info().Mark, second.Info().Mark)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	game := &Game{
		id:      uuid.NewString(),
		board:   board,
		players: [playerCount]player.Player{first, second},
		status:  StatusOngoing,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(game)
	}

	game.logger = game.logger.With("component", "game", "session", game.id)

	return game, nil
}

func (that *Game) SessionID() string {
	return that.id
}

func (that *Game) Board() *entity.Board {
	return that.board
}

func (that *Game) Players() [playerCount]player.Player {
	return that.players
}

func (that *Game) CurrentIndex() int {
	return that.current
}

func (that *Game) CurrentPlayer() player.Player {
	return that.players[that.current]
}

func (that *Game) Status() Status {
	return that.status
}

func (that *Game) IsFinished() bool {
	return that.status != StatusOngoing
}

// Winner - returns the player who completed a line, false unless the game is won.
func (that *Game) Winner() (player.Player, bool) {
	if that.status != StatusWon {
		return nil, false
	}

	// the winner is never switched away from
	return that.players[that.current], true
}

func (that *Game) WinningMark() (entity.Mark, bool) {
	return that.winner, that.status == StatusWon
}

// SwitchPlayer - hands the turn to the other player.
func (that *Game) SwitchPlayer() {
	that.current = that.nextIndex()
}

// Step - plays one ply: the current player chooses, the board applies, the session is auto-saved,
// then the game either ends or passes the turn. An auto-save failure is returned wrapped in
// apperror.ErrAutoSave after the ply has been fully applied.
func (that *Game) Step(ctx context.Context) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	current := that.CurrentPlayer()
	info := current.Info()

	move, err := current.MakeMove(ctx, that.board)
	if err != nil {
		return fmt.Errorf("%s failed to choose a move: %w", info.Name, err)
	}

	if err = that.board.PlaceMark(move.Row, move.Col, info.Mark); err != nil {
		return fmt.Errorf("%w: %s chose (%d, %d): %w", apperror.ErrInvariantViolation, info.Name, move.Row, move.Col, err)
	}

	that.logger.Debug("move applied", "player", info.Name, "mark", info.Mark, "row", move.Row, "col", move.Col)

	saveErr := that.autoSave(ctx)

	that.updateGameState()

	return saveErr
}

// Play - steps until the game is won or drawn. Auto-save failures are logged and play goes on.
func (that *Game) Play(ctx context.Context) error {
	for !that.IsFinished() {
		err := that.Step(ctx)
		if errors.Is(err, apperror.ErrAutoSave) {
			that.logger.Warn("continuing without a saved game", "error", err)
			continue
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (that *Game) updateGameState() {
	if winner, ok := that.board.CheckWinner(); ok {
		that.status = StatusWon
		that.winner = winner
		that.logger.Info("game won", "player", that.CurrentPlayer().Info().Name, "mark", winner)
		return
	}

	if that.board.IsFull() {
		that.status = StatusDraw
		that.logger.Info("game drawn")
		return
	}

	that.SwitchPlayer()
}

func (that *Game) nextIndex() int {
	return 1 - that.current
}
