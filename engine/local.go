package engine

import (
	"fmt"
	"time"

	"knockitoff/agent"
	"knockitoff/experiments/metrics"
	"knockitoff/game"
	"knockitoff/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Session owns one game. It is not safe for concurrent use: every call runs
// to completion before the next one starts.
type Session struct {
	State *game.GameState

	rules      game.Rules
	rng        *rand.Rand
	profiles   agent.Profiles
	agent      agent.Agent
	boardReady BoardReady
	ui         Collaborators
	collector  metrics.Collector
	maxTurns   int
	shuffle    bool

	stepping bool // AIStepIfNeeded is on the stack
}

// StartGame seats players and returns a session in the setup phase.
// Misconfigured player lists panic.
func StartGame(players []*game.Player, options ...Option) *Session {
	if len(players) < 2 || len(players) > game.MaxColors {
		panic(fmt.Sprintf("need 2 to %d players, got %d", game.MaxColors, len(players)))
	}

	s := &Session{ // Default values
		rules:      game.NewStandardRules(),
		rng:        rand.New(rand.NewSource(meta.DEFAULT_SEED)),
		profiles:   agent.DefaultProfiles(),
		boardReady: game.IsBoardReady,
		ui:         NopCollaborators{},
		collector:  metrics.NewDummyCollector(),
		maxTurns:   meta.MAX_TURNS,
		shuffle:    true,
	}
	for _, option := range options {
		option(s)
	}
	if err := s.profiles.Validate(); err != nil {
		panic(fmt.Sprintf("invalid AI profiles: %v", err))
	}
	if s.agent == nil {
		s.agent = agent.NewController(s.profiles, agent.WithRand(s.rng))
	}

	layout := game.CreateLayout(len(players))
	seen := make(map[game.Color]bool, len(players))
	for _, p := range players {
		if !p.Color.Valid() {
			panic(fmt.Sprintf("player %s has an unknown color", p.Name))
		}
		if seen[p.Color] {
			panic(fmt.Sprintf("color %s is taken twice", p.Color))
		}
		seen[p.Color] = true
		if len(layout.Zones[p.Color]) == 0 {
			panic(fmt.Sprintf("color %s has no home zone on a %dx%d board", p.Color, layout.Width, layout.Height))
		}
		if p.IsAI() {
			s.profiles.MustLookup(p.Level)
		}
	}

	seated := make([]*game.Player, len(players))
	copy(seated, players)
	if s.shuffle {
		s.rng.Shuffle(len(seated), func(i, j int) {
			seated[i], seated[j] = seated[j], seated[i]
		})
	}

	s.State = game.NewGameState(layout, s.rules, seated)
	log.Info().Msgf("game %s created with seating order %v", s.State.ID, s.State.Turn.Order)
	return s
}

// LegalMovesFrom lists the moves of the piece on index if it belongs to the
// human whose turn it is. Used to highlight targets.
func (s *Session) LegalMovesFrom(index int) []game.Move {
	gs := s.State
	if gs.Phase != game.PlayPhase || gs.CurrentPlayer().IsAI() {
		return nil
	}
	piece := gs.Board.At(index)
	if piece == nil || piece.Color != gs.Turn.Current() {
		return nil
	}
	return game.LegalMoves(gs.Board, gs.Rules, index)
}

// MoveHuman commits the current human's move from from to dest.
func (s *Session) MoveHuman(from, dest int) error {
	gs := s.State
	if gs.Phase != game.PlayPhase {
		return fmt.Errorf("cannot move during the %s phase", gs.Phase)
	}
	player := gs.CurrentPlayer()
	if player.IsAI() {
		return fmt.Errorf("cannot move: it is %s's turn", player.DisplayName())
	}
	piece := gs.Board.At(from)
	if piece == nil || piece.Color != player.Color {
		return fmt.Errorf("cannot move: cell %d holds no piece of %s", from, player.Color)
	}
	for _, m := range game.LegalMoves(gs.Board, gs.Rules, from) {
		if m.Dest == dest {
			s.PerformMove(m)
			return nil
		}
	}
	return fmt.Errorf("illegal move from %d to %d", from, dest)
}

// AIStepIfNeeded plays AI turns until a human is to move or the game ends.
// A nested call made while a step is in progress returns at once; the outer
// loop picks up the next turn.
func (s *Session) AIStepIfNeeded() {
	if s.stepping {
		return
	}
	s.stepping = true
	defer func() { s.stepping = false }()

	gs := s.State
	for gs.Phase == game.PlayPhase && gs.CurrentPlayer().IsAI() {
		color := gs.Turn.Current()
		start := time.Now()
		move, ok := s.agent.ChooseMove(gs, color)
		if !ok {
			s.forfeit(color)
			continue
		}
		s.perform(move, time.Since(start))
	}
}

// handOff gives control to whoever moves next. A human without a legal
// move forfeits; an AI finds out through its agent.
func (s *Session) handOff() {
	gs := s.State
	player := gs.CurrentPlayer()
	if player.IsAI() {
		s.AIStepIfNeeded()
		return
	}
	if !game.HasLegalMove(gs.Board, gs.Rules, player.Color) {
		s.forfeit(player.Color)
		return
	}
	s.ui.EnableHumanSelect()
}

// forfeit eliminates color when it cannot move on its own turn.
func (s *Session) forfeit(color game.Color) {
	gs := s.State
	log.Info().Msgf("%s has no move and forfeits", gs.DisplayName(color))
	s.eliminate(color)
	if len(gs.Turn.Alive()) <= 1 {
		s.declareGameOver()
		return
	}
	gs.Turn.Advance()
	s.ui.RenderSideRacks(gs)
	s.handOff()
}

func (s *Session) eliminate(color game.Color) {
	s.State.Turn.Eliminate(color)
	s.State.Memory.Clear(color)
	s.collector.AddElimination(color)
	log.Info().Msgf("%s is eliminated", s.State.DisplayName(color))
}

// Metrics closes the session's collector. Call it once the game is over.
func (s *Session) Metrics() (metrics.GameMetric, []metrics.MoveMetric) {
	return s.collector.Complete(s.State.Winner)
}
