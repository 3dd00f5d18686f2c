package movegen

// Apply plays m on the board without validating it: the piece on m.From
// replaces whatever stands on m.To and m.From is emptied. A pawn is marked
// as moved. It returns the piece that moved and the piece that was captured
// (the zero Piece when m.To was empty).
func (b *Board) Apply(m Move) (moved, captured Piece) {
	moved = b.cells[m.From]
	if moved.Kind == Pawn {
		moved.Moved = true
		b.cells[m.From] = moved
	}
	captured = b.Relocate(m.From, m.To)
	return moved, captured
}

// LastRank reports whether sq is the farthest rank for a pawn of color c.
func LastRank(c Color, sq Square) bool {
	return sq.Distance(c.Forward()) == 0
}

// Promotes reports whether p arriving on sq must be promoted.
func Promotes(p Piece, sq Square) bool {
	return p.Kind == Pawn && LastRank(p.Color, sq)
}
