package agent

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
)

// best returns the index of the highest score. Ties go to the earliest
// candidate so deterministic tiers are reproducible.
func best(scores []Score) int {
	bestIndex := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Total > scores[bestIndex].Total {
			bestIndex = i
		}
	}
	return bestIndex
}

// topK returns the indices of the k highest scores, best first. Equal scores
// keep enumeration order. At least the best candidate is always kept.
func topK(scores []Score, k int) []int {
	if k < 1 {
		k = 1
	}
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]].Total > scores[indices[b]].Total
	})
	if k < len(indices) {
		indices = indices[:k]
	}
	return indices
}

// adjustTemperature turns the candidates' scores into selection
// probabilities. Lower temperatures concentrate on the best candidate.
func adjustTemperature(scores []Score, candidates []int, temperature float64) []float64 {
	if len(candidates) == 0 {
		return nil
	}
	maxTotal := scores[candidates[0]].Total
	for _, i := range candidates {
		maxTotal = math.Max(maxTotal, scores[i].Total)
	}

	sum := 0.0
	probs := make([]float64, len(candidates))
	for j, i := range candidates {
		// Shift by the max so the exponent never overflows
		prob := math.Exp((scores[i].Total - maxTotal) / temperature)
		sum += prob
		probs[j] = prob
	}
	// Normalize
	for j := range probs {
		probs[j] /= sum
	}
	return probs
}

// sample draws a position from probs using rng.
func sample(rng *rand.Rand, probs []float64) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(probs) - 1 // Fallback in case of rounding errors
}
