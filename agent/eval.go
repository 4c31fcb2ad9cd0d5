package agent

import "knockitoff/game"

// Score breaks down how a candidate move was rated.
type Score struct {
	Move     game.Move
	Capture  float64
	Safety   float64
	Threat   float64
	Mobility float64
	Position float64
	Total    float64
}

// evaluator rates moves for one color from what that color can know: the
// board layout, its own pieces, and its own memory of opponent kinds.
type evaluator struct {
	state    *game.GameState
	color    game.Color
	profile  Profile
	evaluate game.Evaluate
}

// believedValue is what color thinks the opposing piece on index is worth.
// Only color's own memory is consulted; the true kind stays hidden.
func (e evaluator) believedValue(index int) float64 {
	if rec, ok := e.state.Memory.Recall(e.color, index); ok {
		return e.profile.ValueOf(rec.Kind)
	}
	return e.profile.UnknownKindValue
}

// ownValue is the value of one of color's own pieces, whose kind it knows.
func (e evaluator) ownValue(kind game.Kind) float64 {
	return e.profile.ValueOf(kind)
}

func (e evaluator) score(move game.Move) Score {
	rules := e.state.Rules
	before := e.state.Board
	after := before.WithCells(move.Cells)
	s := Score{Move: move}

	if move.IsKnock() {
		s.Capture = e.profile.CaptureWeight * e.believedValue(move.Victim)
	}

	// Landing where an opponent can knock us next turn costs the mover's
	// value, softened by risk tolerance. Escaping an existing threat earns
	// half of it back.
	caution := e.profile.SafetyWeight * (1 - e.profile.RiskTolerance) * e.ownValue(move.Mover.Kind)
	if len(game.ThreatenedBy(after, rules, move.Dest)) > 0 {
		s.Safety -= caution
	} else if len(game.ThreatenedBy(before, rules, move.From)) > 0 {
		s.Safety += caution / 2
	}

	// The best knock the moved piece would threaten next turn
	best := 0.0
	follow := game.LegalMoves(after, rules, move.Dest)
	for _, m := range follow {
		if m.IsKnock() {
			if v := e.believedValue(m.Victim); v > best {
				best = v
			}
		}
	}
	s.Threat = e.profile.ThreatWeight * best

	s.Mobility = e.profile.MobilityWeight * float64(len(follow)) / float64(len(after.Layout.Directions))

	if e.evaluate != nil && e.profile.PositionWeight != 0 {
		s.Position = e.profile.PositionWeight * e.evaluate(after, rules, e.color)
	}

	s.Total = s.Capture + s.Safety + s.Threat + s.Mobility + s.Position
	return s
}

// scoreAll rates every candidate, keeping enumeration order.
func (e evaluator) scoreAll(moves []game.Move) []Score {
	scores := make([]Score, len(moves))
	for i, m := range moves {
		scores[i] = e.score(m)
	}
	return scores
}
