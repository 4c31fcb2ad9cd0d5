package game

// StandardRules moves one cell at a time and knocks only an adjacent piece.
type StandardRules struct {
	Steps int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Steps: 1,
	}
}

func (sr *StandardRules) MaxSteps() int {
	return sr.Steps
}

func (sr *StandardRules) CanKnock(stepsTaken int) bool {
	// Only a piece immediately adjacent to the mover is eligible
	return stepsTaken == 0
}

// SlidingRules lets a piece cross several empty cells. With KnockAfterSlide
// a piece may also knock off the first opponent it runs into.
type SlidingRules struct {
	Steps           int
	KnockAfterSlide bool
}

func NewSlidingRules(steps int, knockAfterSlide bool) *SlidingRules {
	if steps < 1 {
		steps = 1
	}
	return &SlidingRules{
		Steps:           steps,
		KnockAfterSlide: knockAfterSlide,
	}
}

func (sr *SlidingRules) MaxSteps() int {
	return sr.Steps
}

func (sr *SlidingRules) CanKnock(stepsTaken int) bool {
	return stepsTaken == 0 || sr.KnockAfterSlide
}
