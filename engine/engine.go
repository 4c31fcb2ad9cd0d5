package engine

import (
	"knockitoff/agent"
	"knockitoff/experiments/metrics"
	"knockitoff/game"

	"golang.org/x/exp/rand"
)

// Collaborators are the presentation hooks a session calls after it changes
// state. They are never read from.
type Collaborators interface {
	PaintBoard(cells []*game.Piece)
	RenderSideRacks(state *game.GameState)
	RenderRacks(state *game.GameState)
	RenderLog(state *game.GameState)
	// EnableHumanSelect hands control to the human whose turn it is.
	EnableHumanSelect()
	// ShowWinModal announces the end of the game. winner is nil on a draw.
	ShowWinModal(winner *game.Player)
}

// NopCollaborators ignores every call. Used for headless games.
type NopCollaborators struct{}

func (NopCollaborators) PaintBoard([]*game.Piece)        {}
func (NopCollaborators) RenderSideRacks(*game.GameState) {}
func (NopCollaborators) RenderRacks(*game.GameState)     {}
func (NopCollaborators) RenderLog(*game.GameState)       {}
func (NopCollaborators) EnableHumanSelect()              {}
func (NopCollaborators) ShowWinModal(*game.Player)       {}

// BoardReady is the structural check the phase gate consults before play.
type BoardReady func(state *game.GameState) bool

type Option func(s *Session)

func WithRules(rules game.Rules) Option {
	return func(s *Session) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithRand sets the source used for seating, setup planning and, unless
// WithAgent is given, AI move selection.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithProfiles(profiles agent.Profiles) Option {
	return func(s *Session) {
		if len(profiles) > 0 {
			s.profiles = profiles
		}
	}
}

func WithAgent(a agent.Agent) Option {
	return func(s *Session) {
		s.agent = a
	}
}

func WithBoardReady(ready BoardReady) Option {
	return func(s *Session) {
		if ready != nil {
			s.boardReady = ready
		}
	}
}

func WithCollaborators(ui Collaborators) Option {
	return func(s *Session) {
		if ui != nil {
			s.ui = ui
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *Session) {
		if collector != nil {
			s.collector = collector
		}
	}
}

// WithMaxTurns ends the game in a draw after n moves. Zero means no limit.
func WithMaxTurns(n int) Option {
	return func(s *Session) {
		s.maxTurns = n
	}
}

// WithSeatingOrder keeps players in the order given instead of shuffling.
func WithSeatingOrder() Option {
	return func(s *Session) {
		s.shuffle = false
	}
}
