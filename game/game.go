// Package game drives a chess game: it owns the board and the turn, offers
// the legal destinations of the side to move, applies validated moves and
// tracks check and pending pawn promotions.
//
// A Game is not safe for concurrent use.
package game

import (
	"fmt"

	"github.com/apex/log"

	"chess-rules/movegen"
)

// Game is the aggregate root of a single game.
type Game struct {
	state   State
	turn    movegen.Color
	board   movegen.Board
	moves   movegen.Moves
	pending movegen.Square
	log     log.Interface
}

// New starts a game from the standard initial position with White to move.
func New(opts ...Option) *Game {
	g := &Game{
		turn:    movegen.White,
		board:   movegen.NewBoard(),
		pending: movegen.NoSquare,
		log:     log.Log,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.start()
	return g
}

// FromFEN starts a game from a FEN position. Options are applied after the
// position is loaded.
func FromFEN(fen string, opts ...Option) (*Game, error) {
	b, turn, err := movegen.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithPosition(b, turn)}, opts...)...), nil
}

func (g *Game) start() {
	g.state = InProgress
	if movegen.InCheck(g.board, g.turn) {
		g.state = Check
	}
	g.moves, _ = movegen.Generate(g.board, g.turn)
	g.log.WithFields(log.Fields{
		"turn":  g.turn,
		"state": g.state,
		"moves": g.moves.Count(),
		"white": g.board.Count(movegen.White),
		"black": g.board.Count(movegen.Black),
	}).Debug("game started")
}

// Move plays the piece on from to to. The move must be in the current
// legal-move map of the side to move; otherwise nothing changes and the
// error wraps ErrIllegalMove (or ErrPromotionPending while a promotion is
// unresolved). The returned State is the state after the call either way.
func (g *Game) Move(from, to movegen.Square) (State, error) {
	ctx := g.log.WithFields(log.Fields{
		"from": from,
		"to":   to,
		"turn": g.turn,
	})

	if g.pending != movegen.NoSquare {
		ctx.Debug("move rejected: promotion pending")
		return g.state, fmt.Errorf("%w: resolve promotion on %s first", ErrPromotionPending, g.pending)
	}
	p, ok := g.board.At(from)
	if !ok || p.Color != g.turn || !g.moves.Contains(from, to) {
		ctx.Debug("move rejected")
		return g.state, fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
	}

	moved, captured := g.board.Apply(movegen.Move{From: from, To: to})
	if !captured.Empty() {
		ctx = ctx.WithField("captured", captured.Kind)
	}

	if movegen.Promotes(moved, to) {
		g.pending = to
		g.moves = movegen.Moves{}
		g.state = SetPromotion
		ctx.WithField("state", g.state).Debug("pawn awaiting promotion")
		return g.state, nil
	}

	g.endTurn()
	ctx.WithField("state", g.state).Debug("move applied")
	return g.state, nil
}

// MoveSquares plays a move given as two square names, e.g. ("e2", "e4").
// A name that does not parse is reported as ErrIllegalMove.
func (g *Game) MoveSquares(from, to string) (State, error) {
	f, err := movegen.ParseSquare(from)
	if err != nil {
		return g.reject(from+to, fmt.Errorf("%w: %w", ErrIllegalMove, err))
	}
	t, err := movegen.ParseSquare(to)
	if err != nil {
		return g.reject(from+to, fmt.Errorf("%w: %w", ErrIllegalMove, err))
	}
	return g.Move(f, t)
}

// MoveUCI accepts coordinate notation such as "e2e4". A promotion choice may
// be appended ("b7b8q", "b7b8kn"); it is only accepted on a move that
// promotes and is resolved immediately.
func (g *Game) MoveUCI(notation string) (State, error) {
	if len(notation) < 4 {
		return g.reject(notation, fmt.Errorf("%w: %q", ErrIllegalMove, notation))
	}
	m, err := movegen.ParseMove(notation[:4])
	if err != nil {
		return g.reject(notation, fmt.Errorf("%w: %w", ErrIllegalMove, err))
	}

	promo := movegen.NoKind
	if suffix := notation[4:]; suffix != "" {
		if promo, err = ParsePromotion(suffix); err != nil {
			return g.reject(notation, err)
		}
		if p, _ := g.board.At(m.From); !movegen.Promotes(p, m.To) {
			return g.reject(notation, fmt.Errorf("%w: %s does not promote", ErrIllegalMove, m))
		}
	}

	state, err := g.Move(m.From, m.To)
	if err != nil || promo == movegen.NoKind {
		return state, err
	}
	return g.Promote(promo)
}

// reject logs a move refused before it reached Move.
func (g *Game) reject(notation string, err error) (State, error) {
	g.log.WithFields(log.Fields{
		"notation": notation,
		"turn":     g.turn,
	}).WithError(err).Debug("move rejected")
	return g.state, err
}

// endTurn decides check for the side that just moved, hands the turn over
// and rebuilds the legal-move map for the new side to move.
func (g *Game) endTurn() {
	_, check := movegen.Generate(g.board, g.turn)
	g.state = InProgress
	if check {
		g.state = Check
	}
	g.turn = g.turn.Opposite()
	g.moves, _ = movegen.Generate(g.board, g.turn)

	if check {
		if king, ok := g.board.KingSquare(g.turn); ok {
			g.log.WithFields(log.Fields{
				"king": king,
				"turn": g.turn,
			}).Debug("king in check")
		}
	}
}

// LegalDestinations returns the squares the piece on sq may move to. The
// bool is false when sq is empty, belongs to the side not to move, or a
// promotion is pending.
func (g *Game) LegalDestinations(sq movegen.Square) ([]movegen.Square, bool) {
	p, ok := g.board.At(sq)
	if !ok || p.Color != g.turn {
		return nil, false
	}
	dests, ok := g.moves[sq]
	if !ok {
		return nil, false
	}
	return append(make([]movegen.Square, 0, len(dests)), dests...), true
}

// LegalMoves lists every legal move of the side to move in square order.
func (g *Game) LegalMoves() []movegen.Move { return g.moves.List() }

// State returns the current state.
func (g *Game) State() State { return g.state }

// Turn returns the side to move. While a promotion is pending it is still
// the side that moved the pawn.
func (g *Game) Turn() movegen.Color { return g.turn }

// Board returns a copy of the current position.
func (g *Game) Board() movegen.Board { return g.board }

// PendingPromotion returns the square of a pawn waiting to be promoted.
func (g *Game) PendingPromotion() (movegen.Square, bool) {
	return g.pending, g.pending != movegen.NoSquare
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string { return g.board.FEN(g.turn) }

func (g *Game) String() string { return g.board.String() }
