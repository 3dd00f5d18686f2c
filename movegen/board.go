package movegen

// Color is the side owning a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Forward is the direction pawns of c travel in.
func (c Color) Forward() Direction {
	if c == White {
		return North
	}
	return South
}

// sign is -1 for White (toward lower indices) and +1 for Black.
func (c Color) sign() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind is a colorless piece type. NoKind marks an empty square.
type Kind uint8

const (
	NoKind Kind = iota
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
)

func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Rook:
		return "rook"
	case Pawn:
		return "pawn"
	}
	return "none"
}

// Piece is the occupant of a square. The zero Piece means "empty".
// Moved is only meaningful for pawns (double-step eligibility).
type Piece struct {
	Kind  Kind
	Color Color
	Moved bool
}

// Empty reports whether p represents no piece.
func (p Piece) Empty() bool { return p.Kind == NoKind }

// Symbol returns the FEN letter of the piece, upper case for White.
func (p Piece) Symbol() rune {
	var r rune
	switch p.Kind {
	case King:
		r = 'k'
	case Queen:
		r = 'q'
	case Bishop:
		r = 'b'
	case Knight:
		r = 'n'
	case Rook:
		r = 'r'
	case Pawn:
		r = 'p'
	default:
		return '.'
	}
	if p.Color == White {
		r -= 'a' - 'A'
	}
	return r
}

// Reader is a read-only view of a board. Move generation and pin detection
// only ever see a board through this interface.
type Reader interface {
	At(sq Square) (Piece, bool)
}

// Board is a flat 64-cell array indexed by Square. It is a value type:
// copying a Board copies the position.
type Board struct {
	cells [64]Piece
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard initial position.
func NewBoard() Board {
	var b Board
	for col := 0; col < 8; col++ {
		b.cells[col] = Piece{Kind: backRank[col], Color: Black}
		b.cells[8+col] = Piece{Kind: Pawn, Color: Black}
		b.cells[48+col] = Piece{Kind: Pawn, Color: White}
		b.cells[56+col] = Piece{Kind: backRank[col], Color: White}
	}
	return b
}

// At returns the piece on sq. The bool is false for an empty or off-board square.
func (b Board) At(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.cells[sq]
	return p, !p.Empty()
}

// Set places p on sq, replacing any occupant.
func (b *Board) Set(sq Square, p Piece) { b.cells[sq] = p }

// Clear empties sq.
func (b *Board) Clear(sq Square) { b.cells[sq] = Piece{} }

// Relocate moves the occupant of from onto to and empties from. Whatever
// stood on to is overwritten and returned.
func (b *Board) Relocate(from, to Square) Piece {
	captured := b.cells[to]
	b.cells[to] = b.cells[from]
	b.Clear(from)
	return captured
}

// KingSquare returns the square of c's king.
func (b Board) KingSquare(c Color) (Square, bool) {
	for sq, p := range b.cells {
		if p.Kind == King && p.Color == c {
			return Square(sq), true
		}
	}
	return NoSquare, false
}

// Count returns the number of pieces c has on the board.
func (b Board) Count(c Color) int {
	n := 0
	for _, p := range b.cells {
		if !p.Empty() && p.Color == c {
			n++
		}
	}
	return n
}
