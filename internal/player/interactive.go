package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const invalidNumberMessage = "Invalid input. Please enter numbers."

// Interactive asks its input source for coordinates until it gets a legal move.
type Interactive struct {
	info  entity.PlayerInfo
	input InputSource
}

func NewInteractive(name string, mark entity.Mark, input InputSource) *Interactive {
	return &Interactive{
		info:  entity.PlayerInfo{Name: name, Mark: mark, Kind: entity.KindInteractive},
		input: input,
	}
}

func (that *Interactive) Info() entity.PlayerInfo {
	return that.info
}

// MakeMove - re-prompts on unparsable answers and on illegal placements. Only errors
// from the input source itself (closed input, canceled context) are returned.
func (that *Interactive) MakeMove(ctx context.Context, board *entity.Board) (entity.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, err
		}

		row, err := that.input.AskInt(ctx, fmt.Sprintf("%s - Enter row (0-2): ", label(that.info)))
		if errors.Is(err, apperror.ErrInvalidInput) {
			that.input.Notify(invalidNumberMessage)
			continue
		}
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to read row: %w", err)
		}

		col, err := that.input.AskInt(ctx, fmt.Sprintf("%s - Enter column (0-2): ", label(that.info)))
		if errors.Is(err, apperror.ErrInvalidInput) {
			that.input.Notify(invalidNumberMessage)
			continue
		}
		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to read column: %w", err)
		}

		err = board.CheckMove(row, col)
		switch {
		case err == nil:
			return entity.Move{Row: row, Col: col}, nil
		case errors.Is(err, apperror.ErrOutOfBounds), errors.Is(err, apperror.ErrCellOccupied):
			that.input.Notify("Error: " + err.Error())
		default:
			return entity.Move{}, fmt.Errorf("failed to check move: %w", err)
		}
	}
}
