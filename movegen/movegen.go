package movegen

import "golang.org/x/exp/slices"

// Moves maps each square of the side to move to its legal destinations.
// A square without an entry holds no piece of that side.
type Moves map[Square][]Square

// Squares returns the origin squares in ascending order.
func (m Moves) Squares() []Square {
	keys := make([]Square, 0, len(m))
	for sq := range m {
		keys = append(keys, sq)
	}
	slices.Sort(keys)
	return keys
}

// Contains reports whether to is a legal destination from from.
func (m Moves) Contains(from, to Square) bool {
	return slices.Contains(m[from], to)
}

// Count returns the total number of destinations over all squares.
func (m Moves) Count() int {
	n := 0
	for _, dests := range m {
		n += len(dests)
	}
	return n
}

// List flattens the map into moves ordered by origin, then destination.
func (m Moves) List() []Move {
	list := make([]Move, 0, m.Count())
	for _, from := range m.Squares() {
		dests := slices.Clone(m[from])
		slices.Sort(dests)
		for _, to := range dests {
			list = append(list, Move{From: from, To: to})
		}
	}
	return list
}

// Generate computes the legal-move map for mover. The bool reports whether
// any generated destination holds the opposing king, i.e. whether mover
// currently attacks it.
func Generate(b Reader, mover Color) (Moves, bool) {
	pins := FindPins(b, mover)
	moves := make(Moves)
	check := false
	for sq := Square(0); sq < 64; sq++ {
		p, ok := b.At(sq)
		if !ok || p.Color != mover {
			continue
		}
		dests, attacksKing := PieceMoves(b, sq, p, pins.Axis(sq))
		moves[sq] = dests
		check = check || attacksKing
	}
	return moves, check
}

// InCheck reports whether c's king is attacked by the other side.
func InCheck(b Reader, c Color) bool {
	_, check := Generate(b, c.Opposite())
	return check
}

// PieceMoves generates destinations for the piece p standing on sq, limited
// to axis when the piece is pinned.
func PieceMoves(b Reader, sq Square, p Piece, axis Direction) ([]Square, bool) {
	switch p.Kind {
	case King:
		return kingMoves(b, sq, p.Color)
	case Queen, Bishop, Rook:
		return slidingMoves(b, sq, p.Color, slidingDirections(p.Kind), axis)
	case Knight:
		return knightMoves(b, sq, p.Color, axis)
	case Pawn:
		return pawnMoves(b, sq, p, axis)
	case NoKind:
	}
	return nil, false
}

// walk follows one ray for at most limit steps. Empty squares are added and
// the ray continues; the first occupied square ends it and is added only when
// it holds an opponent.
func walk(b Reader, dst []Square, from Square, c Color, d Direction, limit int) ([]Square, bool) {
	steps := min(from.Distance(d), limit)
	sq := from
	for i := 0; i < steps; i++ {
		sq += Square(d.Offset())
		p, ok := b.At(sq)
		if !ok {
			dst = append(dst, sq)
			continue
		}
		if p.Color == c {
			return dst, false
		}
		return append(dst, sq), p.Kind == King
	}
	return dst, false
}

func slidingMoves(b Reader, from Square, c Color, dirs []Direction, axis Direction) ([]Square, bool) {
	dst := make([]Square, 0, 14)
	check := false
	for _, d := range dirs {
		if !d.SameAxis(axis) {
			continue
		}
		var hit bool
		dst, hit = walk(b, dst, from, c, d, 7)
		check = check || hit
	}
	return dst, check
}

// kingMoves does not look at whether a destination is attacked.
func kingMoves(b Reader, from Square, c Color) ([]Square, bool) {
	dst := make([]Square, 0, 8)
	check := false
	for _, d := range allDirections {
		var hit bool
		dst, hit = walk(b, dst, from, c, d, 1)
		check = check || hit
	}
	return dst, check
}

// knightMoves jumps two squares along an orthogonal, then one square to
// either side. Both hops are clipped by the distance table so nothing wraps
// around an edge. A pinned knight cannot stay on its axis and has no moves.
func knightMoves(b Reader, from Square, c Color, axis Direction) ([]Square, bool) {
	dst := make([]Square, 0, 8)
	if axis != Unrestricted {
		return dst, false
	}
	check := false
	for _, d := range orthogonals {
		if from.Distance(d) < 2 {
			continue
		}
		mid := from + Square(2*d.Offset())
		for _, side := range [2]Direction{d.rotate(2), d.rotate(6)} {
			if mid.Distance(side) < 1 {
				continue
			}
			to := mid + Square(side.Offset())
			p, ok := b.At(to)
			switch {
			case !ok:
				dst = append(dst, to)
			case p.Color != c:
				dst = append(dst, to)
				check = check || p.Kind == King
			}
		}
	}
	return dst, check
}

// pawnMoves generates pushes and diagonal captures. Reaching the last rank is
// handled by the caller after the move is applied.
func pawnMoves(b Reader, from Square, p Piece, axis Direction) ([]Square, bool) {
	dst := make([]Square, 0, 4)
	sign := p.Color.sign()

	forward, _ := DirectionOf(8 * sign)
	if forward.SameAxis(axis) {
		steps := 1
		if !p.Moved {
			steps = 2
		}
		steps = min(steps, from.Distance(forward))
		to := from
		for i := 0; i < steps; i++ {
			to += Square(forward.Offset())
			if _, occupied := b.At(to); occupied {
				break
			}
			dst = append(dst, to)
		}
	}

	check := false
	for _, off := range [2]int{7, 9} {
		d, _ := DirectionOf(off * sign)
		if !d.SameAxis(axis) || from.Distance(d) == 0 {
			continue
		}
		to := from + Square(d.Offset())
		if q, ok := b.At(to); ok && q.Color != p.Color {
			dst = append(dst, to)
			check = check || q.Kind == King
		}
	}
	return dst, check
}
