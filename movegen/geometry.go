package movegen

// Direction is one of the eight compass directions, numbered clockwise from
// North. Direction d and d+4 (mod 8) always point in opposite senses.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Unrestricted is the axis of a piece that is not pinned.
const Unrestricted Direction = -1

// Linear index offset of a single step in each direction. Only valid with
// the a8 = 0 row-major layout of Square.
var offsets = [8]int{-8, -7, 1, 9, 8, 7, -1, -9}

var offsetDirection = map[int]Direction{
	-8: North,
	-7: NorthEast,
	1:  East,
	9:  SouthEast,
	8:  South,
	7:  SouthWest,
	-1: West,
	-9: NorthWest,
}

// Per-square number of steps available in each direction before the edge.
var distances [64][8]int

var (
	allDirections = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	orthogonals   []Direction
	diagonals     []Direction
)

func init() {
	initDistances()
	for _, d := range allDirections {
		if d.Diagonal() {
			diagonals = append(diagonals, d)
		} else {
			orthogonals = append(orthogonals, d)
		}
	}
}

// initDistances precomputes edge distances from rank/file arithmetic.
func initDistances() {
	for sq := 0; sq < 64; sq++ {
		row := sq / 8
		col := sq % 8

		up := row
		right := 7 - col
		down := 7 - row
		left := col

		distances[sq] = [8]int{
			up,
			min(up, right),
			right,
			min(down, right),
			down,
			min(down, left),
			left,
			min(up, left),
		}
	}
}

// Offset returns the index delta of one step in d.
func (d Direction) Offset() int { return offsets[d] }

// Opposite returns the direction pointing the other way along the same line.
func (d Direction) Opposite() Direction { return (d + 4) % 8 }

// Diagonal reports whether d is one of the four diagonal directions.
func (d Direction) Diagonal() bool { return d%2 == 1 }

// SameAxis reports whether a step in d stays on the line described by axis.
// Every direction shares the Unrestricted axis.
func (d Direction) SameAxis(axis Direction) bool {
	if axis == Unrestricted {
		return true
	}
	return d == axis || d+4 == axis || d == axis+4
}

// rotate turns d clockwise by n eighths of a circle.
func (d Direction) rotate(n int) Direction { return Direction((int(d) + n) % 8) }

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	case Unrestricted:
		return "any"
	}
	return "?"
}

// DirectionOf maps a single-step offset back to its direction.
func DirectionOf(offset int) (Direction, bool) {
	d, ok := offsetDirection[offset]
	return d, ok
}

// Distances returns how far a piece on sq can travel in each direction.
func Distances(sq Square) [8]int { return distances[sq] }

// Distance returns how many steps fit between sq and the edge in d.
func (sq Square) Distance(d Direction) int { return distances[sq][d] }

// slidingDirections lists the ray directions of a long-range piece, or nil.
func slidingDirections(k Kind) []Direction {
	switch k {
	case Queen:
		return allDirections
	case Bishop:
		return diagonals
	case Rook:
		return orthogonals
	}
	return nil
}
