package agent

import (
	"fmt"

	"knockitoff/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(c *Controller)

// Controller chooses moves for AI colors. Randomness is confined to the
// final pick and always comes from the controller's own source.
type Controller struct {
	profiles Profiles
	rng      *rand.Rand
	evaluate game.Evaluate
}

func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *Controller) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *Controller) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func NewController(profiles Profiles, options ...Option) *Controller {
	if len(profiles) == 0 {
		panic("controller needs at least one profile")
	}
	if err := profiles.Validate(); err != nil {
		panic(fmt.Sprintf("invalid AI profiles: %v", err))
	}
	c := &Controller{ // Default values
		profiles: profiles,
		rng:      rand.New(rand.NewSource(1)),
		evaluate: game.EvaluateMaterial,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// ProfileFor returns the profile of the AI seated as color. Asking for a
// color that is not an AI player is a wiring bug.
func (c *Controller) ProfileFor(state *game.GameState, color game.Color) Profile {
	player := state.PlayerFor(color)
	if player == nil || !player.IsAI() {
		panic(fmt.Sprintf("no AI player seated as %s", color))
	}
	return c.profiles.MustLookup(player.Level)
}

// ChooseMove prunes color's stale memory, rates every legal move of color's
// pieces and picks one.
func (c *Controller) ChooseMove(state *game.GameState, color game.Color) (game.Move, bool) {
	profile := c.ProfileFor(state, color)
	state.Memory.ForgetExpired(color, profile, state.Turn.Turns)

	moves := game.MovesForColor(state.Board, state.Rules, color)
	if len(moves) == 0 {
		return game.Move{}, false
	}

	e := evaluator{state: state, color: color, profile: profile, evaluate: c.evaluate}
	scores := e.scoreAll(moves)

	chosen := best(scores)
	if profile.Randomness > 0 {
		candidates := topK(scores, profile.TopK)
		probs := adjustTemperature(scores, candidates, profile.Randomness)
		chosen = candidates[sample(c.rng, probs)]
	}

	log.Debug().Msgf("%s (%s) picked %d->%d scoring %.3f out of %d moves",
		color, profile.Name, moves[chosen].From, moves[chosen].Dest, scores[chosen].Total, len(moves))
	return moves[chosen], true
}
