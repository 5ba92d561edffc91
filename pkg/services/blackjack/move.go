package blackjack

import (
	"fmt"
	"strings"

	"github.com/fadedpez/blackjack/internal/types"
)

// PlayerMove is an action the player can take on their turn
type PlayerMove int

const (
	Hit PlayerMove = iota + 1
	Stay
)

// String returns the string representation of the move
func (m PlayerMove) String() string {
	switch m {
	case Hit:
		return "HIT"
	case Stay:
		return "STAY"
	default:
		return fmt.Sprintf("MOVE(%d)", int(m))
	}
}

// ParsePlayerMove converts user input into a move
func ParsePlayerMove(text string) (PlayerMove, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "hit", "h":
		return Hit, nil
	case "stay", "stand", "s":
		return Stay, nil
	default:
		return 0, types.NewGameErrorf(types.ErrInvalidMove, "unknown move %q, expected hit or stay", text)
	}
}
