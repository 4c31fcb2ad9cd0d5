package game

// EvaluateMaterial compares color's piece count against its strongest
// opponent to produce a score between -1 and 1.
func EvaluateMaterial(b *Board, rules Rules, color Color) float64 {
	counts := b.CountByColor()
	return normalize(float64(counts[color]), strongestOpponent(counts, color))
}

// EvaluateMobility compares the number of legal moves instead of pieces.
func EvaluateMobility(b *Board, rules Rules, color Color) float64 {
	mobility := make(map[Color]float64)
	for i, p := range b.Cells {
		if p != nil {
			mobility[p.Color] += float64(len(LegalMoves(b, rules, i)))
		}
	}
	return normalize(mobility[color], strongestOpponentF(mobility, color))
}

// EvaluateMaterialMobility averages material and mobility.
func EvaluateMaterialMobility(b *Board, rules Rules, color Color) float64 {
	return (EvaluateMaterial(b, rules, color) + EvaluateMobility(b, rules, color)) / 2
}

func strongestOpponent(counts map[Color]int, color Color) float64 {
	best := 0
	for c, n := range counts {
		if c != color && n > best {
			best = n
		}
	}
	return float64(best)
}

func strongestOpponentF(values map[Color]float64, color Color) float64 {
	best := 0.0
	for c, v := range values {
		if c != color && v > best {
			best = v
		}
	}
	return best
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
