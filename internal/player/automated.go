package player

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Automated picks uniformly among the empty cells.
type Automated struct {
	info     entity.PlayerInfo
	random   random.Random
	notifier Notifier
}

// NewAutomated - notifier may be nil.
func NewAutomated(name string, mark entity.Mark, rnd random.Random, notifier Notifier) *Automated {
	return &Automated{
		info:     entity.PlayerInfo{Name: name, Mark: mark, Kind: entity.KindAutomated},
		random:   rnd,
		notifier: notifier,
	}
}

func (that *Automated) Info() entity.PlayerInfo {
	return that.info
}

func (that *Automated) MakeMove(_ context.Context, board *entity.Board) (entity.Move, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Move{}, fmt.Errorf("%w: %s has nothing to choose from", apperror.ErrNoLegalMoves, label(that.info))
	}

	if that.notifier != nil {
		that.notifier.Notify(fmt.Sprintf("\n%s is making a move...", label(that.info)))
	}

	return availableCells[that.random.Intn(len(availableCells))], nil
}
