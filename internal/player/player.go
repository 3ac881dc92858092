package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Player selects the next move. Applying it to the board is up to the caller.
type Player interface {
	Info() entity.PlayerInfo
	MakeMove(ctx context.Context, board *entity.Board) (entity.Move, error)
}

// Notifier shows a message to whoever is at the keyboard.
type Notifier interface {
	Notify(message string)
}

// InputSource is the line-based prompt used by interactive players. AskInt returns
// apperror.ErrInvalidInput when the answer is not a number.
type InputSource interface {
	Notifier
	AskInt(ctx context.Context, prompt string) (int, error)
}

// Builder rebuilds players from their stored identity.
type Builder struct {
	input  InputSource
	random random.Random
}

func NewBuilder(input InputSource, rnd random.Random) *Builder {
	return &Builder{
		input:  input,
		random: rnd,
	}
}

// Build - returns the player variant named by info.Kind.
func (that *Builder) Build(info entity.PlayerInfo) (Player, error) {
	kind, err := info.Kind.Normalize()
	if err != nil {
		return nil, err
	}

	if err = info.Mark.Validate(); err != nil {
		return nil, fmt.Errorf("player %q: %w", info.Name, err)
	}

	switch kind {
	case entity.KindAutomated:
		return NewAutomated(info.Name, info.Mark, that.random, that.input), nil
	default:
		return NewInteractive(info.Name, info.Mark, that.input), nil
	}
}

func label(info entity.PlayerInfo) string {
	return fmt.Sprintf("%s (%s)", strings.TrimSpace(info.Name), info.Mark)
}
