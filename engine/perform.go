package engine

import (
	"time"

	"knockitoff/agent"
	"knockitoff/game"

	"github.com/rs/zerolog/log"
)

// PerformMove commits a move taken from the Move Engine's candidate list and
// then either ends the game or passes the turn on.
func (s *Session) PerformMove(move game.Move) {
	s.perform(move, 0)
}

func (s *Session) perform(move game.Move, thinking time.Duration) {
	gs := s.State
	mover := gs.PlayerFor(move.Mover.Color)

	before := gs.Board.Snapshot()
	gs.Board.Cells = append([]*game.Piece(nil), move.Cells...)
	s.observe(move)

	s.ui.PaintBoard(gs.Board.Cells)
	s.ui.RenderRacks(gs)
	s.ui.RenderSideRacks(gs)

	entry := game.LogEntry{
		Turn:       gs.Turn.Turns,
		Mover:      gs.DisplayName(move.Mover.Color),
		MoverColor: move.Mover.Color,
		MoverKind:  move.Mover.Kind,
		Dir:        move.Dir,
		From:       move.From,
		Dest:       move.Dest,
		Before:     before,
		After:      gs.Board.Snapshot(),
	}
	if move.IsKnock() {
		knocked := *move.Knocked
		entry.Knocked = &knocked
		entry.Victim = gs.DisplayName(knocked.Color)
		log.Info().Msgf("%s knocked off %s's %s at %d", entry.Mover, entry.Victim, knocked.Kind, move.Victim)
	} else {
		log.Debug().Msgf("%s moved %d->%d (%s)", entry.Mover, move.From, move.Dest, move.Dir)
	}
	gs.Logs = append(gs.Logs, entry)
	s.ui.RenderLog(gs)
	s.collector.AddMove(len(gs.Logs), mover, move.IsKnock(), thinking)

	if s.isGameOver() {
		s.declareGameOver()
		return
	}

	gs.Turn.Advance()
	s.ui.PaintBoard(gs.Board.Cells)
	s.ui.RenderSideRacks(gs)
	s.handOff()
}

// observe updates every AI color's memory for a committed move. The mover's
// own memory is pruned first. Every AI color follows the piece that moved,
// forgets the knocked piece, and learns the kind of a piece that knocked.
func (s *Session) observe(move game.Move) {
	gs := s.State
	turn := gs.Turn.Turns
	for _, color := range gs.AIColors() {
		if gs.Turn.IsEliminated(color) {
			continue
		}
		if color == move.Mover.Color {
			gs.Memory.ForgetExpired(color, s.profileFor(color), turn)
		}
		gs.Memory.Forget(color, move.Dest)
		gs.Memory.Migrate(color, move.From, move.Dest, turn)
		if move.IsKnock() {
			gs.Memory.Forget(color, move.Victim)
			if color != move.Mover.Color {
				gs.Memory.Remember(color, move.Dest, move.Mover.Kind, turn)
			}
		}
	}
}

// Reveal shows the kind on index to every AI color that does not own it.
// It reports whether there was a piece to reveal.
func (s *Session) Reveal(index int) bool {
	gs := s.State
	piece := gs.Board.At(index)
	if piece == nil {
		return false
	}
	for _, color := range gs.AIColors() {
		if color != piece.Color && !gs.Turn.IsEliminated(color) {
			gs.Memory.Remember(color, index, piece.Kind, gs.Turn.Turns)
		}
	}
	log.Debug().Msgf("revealed %s at %d", piece.Ref(), index)
	return true
}

func (s *Session) profileFor(color game.Color) agent.Profile {
	return s.profiles.MustLookup(s.State.PlayerFor(color).Level)
}

// isGameOver eliminates every color that has lost all its pieces and
// reports whether at most one color remains or the move limit is reached.
// A color that is only blocked stays in until its own turn comes.
func (s *Session) isGameOver() bool {
	gs := s.State
	counts := gs.Board.CountByColor()
	for _, color := range gs.Turn.Alive() {
		if counts[color] == 0 {
			s.eliminate(color)
		}
	}
	if len(gs.Turn.Alive()) <= 1 {
		return true
	}
	return s.maxTurns > 0 && len(gs.Logs) >= s.maxTurns
}

// declareGameOver latches the end of the game. The winner is the only color
// left standing; anything else is a draw.
func (s *Session) declareGameOver() {
	gs := s.State
	gs.Phase = game.GameOverPhase
	if alive := gs.Turn.Alive(); len(alive) == 1 {
		gs.Winner = gs.PlayerFor(alive[0])
		log.Info().Msgf("game %s over after %d moves, winner: %s", gs.ID, len(gs.Logs), gs.Winner.DisplayName())
	} else {
		log.Info().Msgf("game %s over after %d moves with no winner", gs.ID, len(gs.Logs))
	}
	s.ui.ShowWinModal(gs.Winner)
}
