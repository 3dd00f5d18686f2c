package game

import (
	"fmt"
	"strings"

	"github.com/apex/log"

	"chess-rules/movegen"
)

// ParsePromotion reads a promotion choice: "q", "r", "b", and "n" or "kn"
// for a knight. Case is ignored.
func ParsePromotion(s string) (movegen.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "q":
		return movegen.Queen, nil
	case "r":
		return movegen.Rook, nil
	case "b":
		return movegen.Bishop, nil
	case "n", "kn":
		return movegen.Knight, nil
	}
	return movegen.NoKind, fmt.Errorf("%w: %q", ErrInvalidPromotion, s)
}

// Promote replaces the pending pawn with kind, which must be a queen, rook,
// bishop or knight. Then, exactly as after a normal move, check is decided
// for the promoting side, the turn passes and the legal-move map is rebuilt.
// Without a pending promotion, or with any other kind, nothing changes.
func (g *Game) Promote(kind movegen.Kind) (State, error) {
	ctx := g.log.WithFields(log.Fields{
		"kind": kind,
		"turn": g.turn,
	})

	if g.pending == movegen.NoSquare {
		ctx.Debug("promotion rejected: nothing pending")
		return g.state, ErrNoPromotionPending
	}
	switch kind {
	case movegen.Queen, movegen.Rook, movegen.Bishop, movegen.Knight:
	default:
		ctx.Debug("promotion rejected: invalid piece")
		return g.state, fmt.Errorf("%w: %s", ErrInvalidPromotion, kind)
	}

	sq := g.pending
	p, _ := g.board.At(sq)
	p.Kind = kind
	g.board.Set(sq, p)
	g.pending = movegen.NoSquare

	g.endTurn()
	ctx.WithFields(log.Fields{
		"square": sq,
		"state":  g.state,
	}).Debug("pawn promoted")
	return g.state, nil
}
