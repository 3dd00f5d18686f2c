package movegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// String draws the board as an 8x8 grid, rank 8 on top, with FEN letters
// for pieces and dots for empty squares.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('8' - row))
		for col := 0; col < 8; col++ {
			p, _ := b.At(Square(row*8 + col))
			sb.WriteByte(' ')
			sb.WriteRune(p.Symbol())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

var (
	whiteInk = color.New(color.FgHiWhite, color.Bold)
	blackInk = color.New(color.FgHiYellow, color.Bold)
	markInk  = color.New(color.FgHiRed, color.Bold)
	emptyInk = color.New(color.FgHiBlack)
)

// Render writes a colored version of String to w. Squares in highlight are
// drawn in red, which is handy for showing a piece's legal destinations.
func Render(w io.Writer, b Board, highlight []Square) error {
	marked := make(map[Square]bool, len(highlight))
	for _, sq := range highlight {
		marked[sq] = true
	}

	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('8' - row))
		for col := 0; col < 8; col++ {
			sq := Square(row*8 + col)
			p, ok := b.At(sq)
			sym := string(p.Symbol())
			sb.WriteByte(' ')
			switch {
			case marked[sq]:
				if !ok {
					sym = "*"
				}
				sb.WriteString(markInk.Sprint(sym))
			case !ok:
				sb.WriteString(emptyInk.Sprint(sym))
			case p.Color == White:
				sb.WriteString(whiteInk.Sprint(sym))
			default:
				sb.WriteString(blackInk.Sprint(sym))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")

	_, err := fmt.Fprint(w, sb.String())
	return err
}
