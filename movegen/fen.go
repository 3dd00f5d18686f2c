package movegen

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is returned for a malformed placement or side to move.
var ErrInvalidFEN = errors.New("invalid FEN")

// ParseFEN reads the piece placement and side to move of a FEN string.
// Castling rights, en passant target and the move clocks may be present but
// are ignored. Pawns standing off their home rank are marked as moved.
func ParseFEN(fen string) (b Board, turn Color, err error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return Board{}, White, fmt.Errorf("%w: %q: want placement and side to move", ErrInvalidFEN, fen)
	}
	if err := checkPlacement(fields[0]); err != nil {
		return Board{}, White, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return Board{}, White, fmt.Errorf("%w: %q: side to move must be 'w' or 'b'", ErrInvalidFEN, fen)
	}

	defer func() {
		if r := recover(); r != nil {
			b, turn = Board{}, White
			err = fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, r)
		}
	}()
	dt := dragontoothmg.ParseFen(fields[0] + " " + fields[1] + " - - 0 1")
	placeBitboards(&b, dt.White, White)
	placeBitboards(&b, dt.Black, Black)
	return b, turn, nil
}

// checkPlacement validates the first FEN field: eight ranks of eight files.
func checkPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("want 8 ranks, got %d", len(ranks))
	}
	for i, rank := range ranks {
		files := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				files += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				files++
			default:
				return fmt.Errorf("rank %d: unexpected %q", 8-i, ch)
			}
		}
		if files != 8 {
			return fmt.Errorf("rank %d: want 8 files, got %d", 8-i, files)
		}
	}
	return nil
}

func placeBitboards(b *Board, bbs dragontoothmg.Bitboards, c Color) {
	sets := [...]struct {
		mask uint64
		kind Kind
	}{
		{bbs.Pawns, Pawn},
		{bbs.Knights, Knight},
		{bbs.Bishops, Bishop},
		{bbs.Rooks, Rook},
		{bbs.Queens, Queen},
		{bbs.Kings, King},
	}
	for _, set := range sets {
		for mask := set.mask; mask != 0; mask &= mask - 1 {
			sq := fromDragon(uint8(bits.TrailingZeros64(mask)))
			moved := set.kind == Pawn && !onHomeRank(c, sq)
			b.Set(sq, Piece{Kind: set.kind, Color: c, Moved: moved})
		}
	}
}

func onHomeRank(c Color, sq Square) bool {
	if c == White {
		return sq.Row() == 6
	}
	return sq.Row() == 1
}

// bitboards packs c's pieces into dragontoothmg's a1 = bit 0 layout.
func (b Board) bitboards(c Color) dragontoothmg.Bitboards {
	var bbs dragontoothmg.Bitboards
	for sq, p := range b.cells {
		if p.Empty() || p.Color != c {
			continue
		}
		bit := uint64(1) << toDragon(Square(sq))
		switch p.Kind {
		case Pawn:
			bbs.Pawns |= bit
		case Knight:
			bbs.Knights |= bit
		case Bishop:
			bbs.Bishops |= bit
		case Rook:
			bbs.Rooks |= bit
		case Queen:
			bbs.Queens |= bit
		case King:
			bbs.Kings |= bit
		}
		bbs.All |= bit
	}
	return bbs
}

// FEN renders the position with turn to move. Castling and en passant are
// never available, so those fields are always "-".
func (b Board) FEN(turn Color) string {
	dt := dragontoothmg.Board{
		White:   b.bitboards(White),
		Black:   b.bitboards(Black),
		Wtomove: turn == White,
	}
	placement := strings.Fields(dt.ToFen())[0]
	side := "w"
	if turn == Black {
		side = "b"
	}
	return placement + " " + side + " - - 0 1"
}
