package movegen

// Perft counts leaf nodes (move sequences) of the given depth from the
// position with mover to play. Pawns reaching the last rank are promoted to
// queens so the walk never stalls on a pending promotion.
func Perft(b Board, mover Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves, _ := Generate(b, mover)
	if depth == 1 {
		return uint64(moves.Count())
	}
	var nodes uint64
	for from, dests := range moves {
		for _, to := range dests {
			next := b.play(Move{From: from, To: to})
			nodes += Perft(next, mover.Opposite(), depth-1)
		}
	}
	return nodes
}

// PerftDivide returns the leaf count below each root move. Useful for
// narrowing down a mismatch against another generator.
func PerftDivide(b Board, mover Color, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	moves, _ := Generate(b, mover)
	for from, dests := range moves {
		for _, to := range dests {
			m := Move{From: from, To: to}
			result[m] = Perft(b.play(m), mover.Opposite(), depth-1)
		}
	}
	return result
}

// play returns a copy of b with m applied and any promotion resolved to a queen.
func (b Board) play(m Move) Board {
	moved, _ := b.Apply(m)
	if Promotes(moved, m.To) {
		b.Set(m.To, Piece{Kind: Queen, Color: moved.Color, Moved: true})
	}
	return b
}
