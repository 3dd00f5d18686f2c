package movegen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned when coordinate notation does not parse.
var ErrInvalidMove = errors.New("invalid move")

// Move is a from/to square pair. Promotion choice is not part of a move; it
// is resolved separately once the pawn has arrived.
type Move struct {
	From Square
	To   Square
}

// String produces coordinate notation, e.g. "e2e4".
func (m Move) String() string { return m.From.String() + m.To.String() }

// ParseMove converts coordinate notation ("e2e4") into a Move.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: %q: want four characters", ErrInvalidMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
	}
	return Move{From: from, To: to}, nil
}
