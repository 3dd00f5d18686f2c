package movegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Square represents a board index in [0,64). Index 0 is a8 and 63 is h1:
// rows run from rank 8 down to rank 1, files a to h within a row.
type Square int

// NoSquare marks the absence of a square, e.g. no pending promotion.
const NoSquare Square = -1

// ErrInvalidSquare is returned for names outside a1..h8.
var ErrInvalidSquare = errors.New("invalid square")

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

// Row is 0 for rank 8 and 7 for rank 1.
func (sq Square) Row() int { return int(sq) / 8 }

// Col is 0 for file a and 7 for file h.
func (sq Square) Col() int { return int(sq) % 8 }

// dragontoothmg counts from a1 upwards, so ranks are mirrored.
func toDragon(sq Square) uint8 { return uint8((7-sq.Row())*8 + sq.Col()) }

func fromDragon(idx uint8) Square { return Square((7-int(idx)/8)*8 + int(idx)%8) }

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return dragontoothmg.IndexToAlgebraic(dragontoothmg.Square(toDragon(sq)))
}

// ParseSquare converts an algebraic square name into a Square.
func ParseSquare(name string) (Square, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, name)
	}
	idx, err := dragontoothmg.AlgebraicToIndex(name)
	if err != nil {
		return NoSquare, fmt.Errorf("%w: %q: %v", ErrInvalidSquare, name, err)
	}
	return fromDragon(idx), nil
}

// MustSquare is ParseSquare for names known at compile time.
func MustSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
