package game

import (
	"github.com/apex/log"

	"chess-rules/movegen"
)

// Option configures a Game at construction.
type Option func(*Game)

// WithLogger sets the logger used for move, promotion and state transition
// events. The default is apex/log's package logger.
func WithLogger(l log.Interface) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithPosition starts the game from b with turn to move instead of the
// standard initial position.
func WithPosition(b movegen.Board, turn movegen.Color) Option {
	return func(g *Game) {
		g.board = b
		g.turn = turn
	}
}
