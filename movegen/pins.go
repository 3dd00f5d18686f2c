package movegen

// Pins maps a pinned square to the only axis its piece may still move along.
type Pins map[Square]Direction

// Axis returns the pin axis of sq, or Unrestricted when sq is not pinned.
func (p Pins) Axis(sq Square) Direction {
	if d, ok := p[sq]; ok {
		return d
	}
	return Unrestricted
}

// FindPins finds mover's pieces that are absolutely pinned to mover's king by
// an opposing queen, bishop or rook. The recorded axis is the direction of
// the ray from the attacker toward the king. A square pinned along two rays
// keeps only the last one found.
func FindPins(b Reader, mover Color) Pins {
	pins := make(Pins)
	for sq := Square(0); sq < 64; sq++ {
		p, ok := b.At(sq)
		if !ok || p.Color == mover {
			continue
		}
		for _, d := range slidingDirections(p.Kind) {
			if pinned, ok := pinAlong(b, sq, d, mover); ok {
				pins[pinned] = d
			}
		}
	}
	return pins
}

// pinAlong walks one ray from an attacker. It reports the square of the
// single mover piece standing between the attacker and mover's king.
func pinAlong(b Reader, from Square, d Direction, mover Color) (Square, bool) {
	candidate := NoSquare
	sq := from
	for i := 0; i < from.Distance(d); i++ {
		sq += Square(d.Offset())
		p, ok := b.At(sq)
		if !ok {
			continue
		}
		if p.Color != mover {
			return NoSquare, false
		}
		if p.Kind == King {
			return candidate, candidate != NoSquare
		}
		if candidate != NoSquare {
			return NoSquare, false
		}
		candidate = sq
	}
	return NoSquare, false
}
