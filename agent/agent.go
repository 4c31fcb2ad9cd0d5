package agent

import "knockitoff/game"

type Agent interface {
	// ChooseMove picks a move for color. ok is false when none of color's
	// pieces can move; the caller decides between forfeit and elimination.
	ChooseMove(state *game.GameState, color game.Color) (move game.Move, ok bool)
}
