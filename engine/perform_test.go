package engine

import (
	"testing"

	"knockitoff/agent"
	"knockitoff/game"

	"github.com/stretchr/testify/require"
)

func moveTo(t *testing.T, s *Session, from, dest int) game.Move {
	t.Helper()
	for _, m := range game.LegalMoves(s.State.Board, s.State.Rules, from) {
		if m.Dest == dest {
			return m
		}
	}
	t.Fatalf("no legal move from %d to %d", from, dest)
	return game.Move{}
}

func TestPerformMove(t *testing.T) {
	t.Run("a plain move advances the turn", func(t *testing.T) {
		s, rec := playing(game.NewHumanPlayer("Ada", game.Red), game.NewHumanPlayer("Bea", game.Blue))
		from := put(s, 5, 5, game.Red, game.Soldier)
		put(s, 1, 1, game.Blue, game.Soldier)
		dest := cell(s, 4, 5)

		require.NoError(t, s.MoveHuman(from, dest))

		gs := s.State
		require.Equal(t, game.PlayPhase, gs.Phase)
		require.Equal(t, 1, gs.Turn.Turns)
		require.Equal(t, game.Blue, gs.Turn.Current())
		require.Zero(t, rec.winModals)
		require.Equal(t, 1, rec.humanSelects)
		require.Nil(t, gs.Board.At(from))
		require.Equal(t, game.Red, gs.Board.At(dest).Color)

		entry := gs.Logs[0]
		require.Equal(t, "Ada (Red)", entry.Mover)
		require.Empty(t, entry.Victim)
		require.Nil(t, entry.Knocked)
		require.Equal(t, game.North, entry.Dir)
		require.Equal(t, game.Soldier, entry.MoverKind)
		require.NotNil(t, entry.Before[from])
		require.Nil(t, entry.After[from])
	})

	t.Run("a knock is logged and can end the game", func(t *testing.T) {
		s, rec := playing(game.NewHumanPlayer("Ada", game.Red), game.NewHumanPlayer("Bea", game.Blue))
		from := put(s, 4, 4, game.Red, game.Soldier)
		victim := put(s, 3, 4, game.Blue, game.Captain)
		dest := cell(s, 2, 4)

		require.NoError(t, s.MoveHuman(from, dest))

		gs := s.State
		require.Len(t, gs.Logs, 1)
		entry := gs.Logs[0]
		require.Equal(t, &game.PieceRef{Color: game.Blue, Kind: game.Captain}, entry.Knocked)
		require.Equal(t, "Bea (Blue)", entry.Victim)
		require.Nil(t, entry.After[victim], "The victim's cell is empty afterwards")
		require.Equal(t, game.Captain, entry.Before[victim].Kind)
		require.Equal(t, game.Red, entry.After[dest].Color)

		// Blue is wiped out, so the game ends instead of advancing
		require.Equal(t, game.GameOverPhase, gs.Phase)
		require.Equal(t, game.Red, gs.Winner.Color)
		require.Zero(t, gs.Turn.Turns)
		require.Equal(t, 1, rec.winModals)
		require.Zero(t, rec.humanSelects)
		require.True(t, gs.Turn.IsEliminated(game.Blue))
	})

	t.Run("a cornered AI forfeits on its turn", func(t *testing.T) {
		s, _ := playing(game.NewHumanPlayer("Ada", game.Red), game.NewAIPlayer("Bot", game.Blue, "master"))
		put(s, 0, 0, game.Blue, game.Crown)
		put(s, 0, 1, game.Red, game.Soldier)
		put(s, 0, 2, game.Red, game.Soldier)
		put(s, 1, 0, game.Red, game.Soldier)
		put(s, 2, 0, game.Red, game.Soldier)
		put(s, 2, 2, game.Red, game.Soldier)
		from := put(s, 1, 2, game.Red, game.Decoy)
		require.True(t, game.HasLegalMove(s.State.Board, s.State.Rules, game.Blue))

		require.NoError(t, s.MoveHuman(from, cell(s, 1, 1)))

		gs := s.State
		require.Equal(t, game.GameOverPhase, gs.Phase)
		require.Equal(t, game.Red, gs.Winner.Color)
		require.Equal(t, 1, gs.Turn.Turns, "The turn passed to Blue before it forfeited")
		require.Equal(t, 1, gs.Board.CountByColor()[game.Blue], "Blue still has its piece")

		_, ok := agent.NewController(agent.DefaultProfiles()).ChooseMove(gs, game.Blue)
		require.False(t, ok, "The evaluator reports no move instead of failing")
	})

	t.Run("a cornered human forfeits on their turn", func(t *testing.T) {
		s, rec := playing(game.NewHumanPlayer("Ada", game.Red), game.NewHumanPlayer("Bea", game.Blue))
		put(s, 0, 0, game.Blue, game.Crown)
		put(s, 0, 1, game.Red, game.Soldier)
		put(s, 0, 2, game.Red, game.Soldier)
		put(s, 1, 0, game.Red, game.Soldier)
		put(s, 2, 0, game.Red, game.Soldier)
		put(s, 2, 2, game.Red, game.Soldier)
		from := put(s, 1, 2, game.Red, game.Decoy)

		require.NoError(t, s.MoveHuman(from, cell(s, 1, 1)))

		require.Equal(t, game.GameOverPhase, s.State.Phase)
		require.Equal(t, game.Red, s.State.Winner.Color)
		require.True(t, s.State.Turn.IsEliminated(game.Blue))
		require.Zero(t, rec.humanSelects, "Blue never gets control")
		require.Equal(t, 1, rec.winModals)
	})

	t.Run("a color blocked off-turn stays in the game", func(t *testing.T) {
		s, rec := playing(
			game.NewHumanPlayer("Ada", game.Red),
			game.NewHumanPlayer("Cid", game.Green),
			game.NewHumanPlayer("Bea", game.Blue),
		)
		put(s, 0, 0, game.Blue, game.Crown)
		put(s, 0, 1, game.Green, game.Soldier)
		green := put(s, 0, 2, game.Green, game.Soldier)
		put(s, 1, 0, game.Red, game.Soldier)
		put(s, 2, 0, game.Red, game.Soldier)
		put(s, 2, 2, game.Red, game.Soldier)
		red := put(s, 1, 2, game.Red, game.Decoy)

		require.NoError(t, s.MoveHuman(red, cell(s, 1, 1)))
		require.False(t, game.HasLegalMove(s.State.Board, s.State.Rules, game.Blue))
		require.False(t, s.State.Turn.IsEliminated(game.Blue), "Green moves before Blue")

		require.NoError(t, s.MoveHuman(green, cell(s, 0, 3)))

		gs := s.State
		require.Equal(t, game.PlayPhase, gs.Phase)
		require.Equal(t, game.Blue, gs.Turn.Current())
		require.False(t, gs.Turn.IsEliminated(game.Blue))
		require.NotEmpty(t, s.LegalMovesFrom(cell(s, 0, 0)), "Blue can knock the green soldier now")
		require.Equal(t, 2, rec.humanSelects)
	})

	t.Run("the move limit ends the game in a draw", func(t *testing.T) {
		rec := &recorder{}
		s := StartGame([]*game.Player{game.NewHumanPlayer("Ada", game.Red), game.NewHumanPlayer("Bea", game.Blue)},
			WithSeatingOrder(), WithMaxTurns(2), WithCollaborators(rec))
		s.State.Phase = game.PlayPhase
		red := put(s, 5, 5, game.Red, game.Soldier)
		blue := put(s, 1, 1, game.Blue, game.Soldier)

		require.NoError(t, s.MoveHuman(red, cell(s, 4, 5)))
		require.NoError(t, s.MoveHuman(blue, cell(s, 2, 1)))

		require.Equal(t, game.GameOverPhase, s.State.Phase)
		require.Nil(t, s.State.Winner)
		require.Equal(t, 1, rec.winModals)
		require.Error(t, s.MoveHuman(cell(s, 4, 5), cell(s, 3, 5)))
	})
}

func TestMemoryObservation(t *testing.T) {
	t.Run("the mover's record follows its piece", func(t *testing.T) {
		s, _ := playing(game.NewAIPlayer("Bot", game.Blue, "master"), game.NewHumanPlayer("Ada", game.Red))
		from := put(s, 3, 3, game.Blue, game.Soldier)
		put(s, 6, 6, game.Red, game.Soldier)
		s.State.Memory.Remember(game.Blue, from, game.Crown, 0)
		move := moveTo(t, s, from, cell(s, 4, 3))

		s.PerformMove(move)

		_, ok := s.State.Memory.Recall(game.Blue, from)
		require.False(t, ok)
		rec, ok := s.State.Memory.Recall(game.Blue, move.Dest)
		require.True(t, ok)
		require.Equal(t, game.Crown, rec.Kind)
	})

	t.Run("expired records are pruned before migrating", func(t *testing.T) {
		s, _ := playing(game.NewAIPlayer("Bot", game.Blue, "casual"), game.NewHumanPlayer("Ada", game.Red))
		from := put(s, 3, 3, game.Blue, game.Soldier)
		put(s, 6, 6, game.Red, game.Soldier)
		s.State.Turn.Turns = 10
		s.State.Memory.Remember(game.Blue, from, game.Crown, 0)

		s.PerformMove(moveTo(t, s, from, cell(s, 4, 3)))

		require.Zero(t, s.State.Memory.Len(game.Blue))
	})

	t.Run("a knock teaches other AIs the knocker's kind", func(t *testing.T) {
		s, _ := playing(
			game.NewHumanPlayer("Ada", game.Red),
			game.NewAIPlayer("Bot", game.Blue, "master"),
			game.NewAIPlayer("Bob", game.Green, "master"),
		)
		from := put(s, 5, 5, game.Red, game.Captain)
		victim := put(s, 4, 5, game.Green, game.Soldier)
		put(s, 8, 8, game.Blue, game.Soldier)
		put(s, 0, 0, game.Green, game.Soldier)
		s.State.Memory.Remember(game.Blue, victim, game.Crown, 0)
		move := moveTo(t, s, from, cell(s, 3, 5))

		s.observe(move)

		for _, color := range []game.Color{game.Blue, game.Green} {
			rec, ok := s.State.Memory.Recall(color, move.Dest)
			require.True(t, ok, "%s saw the knock", color)
			require.Equal(t, game.Captain, rec.Kind)
			_, ok = s.State.Memory.Recall(color, victim)
			require.False(t, ok, "%s forgets the knocked piece", color)
		}
	})

	t.Run("reveal teaches every other AI", func(t *testing.T) {
		s, _ := playing(
			game.NewHumanPlayer("Ada", game.Red),
			game.NewAIPlayer("Bot", game.Blue, "master"),
			game.NewAIPlayer("Bob", game.Green, "master"),
		)
		red := put(s, 5, 5, game.Red, game.Crown)
		blue := put(s, 1, 5, game.Blue, game.Decoy)

		require.True(t, s.Reveal(red))
		require.True(t, s.Reveal(blue))
		require.False(t, s.Reveal(cell(s, 4, 4)))

		rec, ok := s.State.Memory.Recall(game.Blue, red)
		require.True(t, ok)
		require.Equal(t, game.Crown, rec.Kind)
		_, ok = s.State.Memory.Recall(game.Blue, blue)
		require.False(t, ok, "Blue knows its own pieces")
		rec, ok = s.State.Memory.Recall(game.Green, blue)
		require.True(t, ok)
		require.Equal(t, game.Decoy, rec.Kind)
		require.Zero(t, s.State.Memory.Len(game.Red), "Humans keep no memory")
	})
}
