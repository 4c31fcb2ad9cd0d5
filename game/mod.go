package game

// Evaluate scores a board between -1 and 1 indicating how favorable it is
// to color. Evaluations only see the board, never hidden-kind knowledge.
type Evaluate func(b *Board, rules Rules, color Color) float64
