package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type PlayerKind string

const (
	KindInteractive PlayerKind = "Interactive"
	KindAutomated   PlayerKind = "Automated"

	// older save files tagged players with the class that played them
	legacyKindHuman    PlayerKind = "HumanPlayer"
	legacyKindComputer PlayerKind = "ComputerPlayer"
)

// Normalize - maps a stored kind tag onto one of the two known variants.
func (that PlayerKind) Normalize() (PlayerKind, error) {
	switch that {
	case KindInteractive, legacyKindHuman:
		return KindInteractive, nil
	case KindAutomated, legacyKindComputer:
		return KindAutomated, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, string(that))
	}
}

// PlayerInfo is the identity of a player and never changes after the player is built.
type PlayerInfo struct {
	Name string     `json:"name"`
	Mark Mark       `json:"mark"`
	Kind PlayerKind `json:"type"`
}
