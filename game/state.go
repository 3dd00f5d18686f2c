package game

// State is the phase the game is in after the last accepted operation.
type State uint8

const (
	InProgress State = iota
	// Check means the side that just moved attacks the opposing king.
	Check
	// SetPromotion means a pawn reached its last rank and no move is
	// accepted until Promote is called.
	SetPromotion
	// GameOver is declared for callers but nothing in this package produces it.
	GameOver
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case SetPromotion:
		return "set promotion"
	case GameOver:
		return "game over"
	}
	return "unknown"
}
