package game

import "knockitoff/utils"

// Turn tracks whose move it is. Turns only ever increases.
type Turn struct {
	Order      []Color        // Seating order, fixed at game creation
	Index      int            // Position in Order of the active color
	Turns      int            // Number of completed advances
	Eliminated map[Color]bool // Colors that no longer take turns
}

// NewTurn starts the rotation at the first color of order.
func NewTurn(order []Color) Turn {
	if len(order) == 0 {
		panic("turn order cannot be empty")
	}
	o := make([]Color, len(order))
	copy(o, order)
	return Turn{
		Order:      o,
		Eliminated: make(map[Color]bool),
	}
}

func (t *Turn) Current() Color {
	return t.Order[t.Index]
}

// Advance hands the turn to the next color that is still in the game.
func (t *Turn) Advance() Color {
	t.Turns++
	n := len(t.Order)
	for i := 1; i <= n; i++ {
		next := (t.Index + i) % n
		if !t.Eliminated[t.Order[next]] {
			t.Index = next
			return t.Current()
		}
	}
	// Everyone is out; keep rotating so the counter stays meaningful
	t.Index = (t.Index + 1) % n
	return t.Current()
}

// Eliminate removes color from the rotation. It does not move the turn.
func (t *Turn) Eliminate(color Color) {
	if t.Eliminated == nil {
		t.Eliminated = make(map[Color]bool)
	}
	t.Eliminated[color] = true
}

func (t *Turn) IsEliminated(color Color) bool {
	return t.Eliminated[color]
}

// Alive lists the colors still in the rotation, in seating order.
func (t *Turn) Alive() []Color {
	var alive []Color
	for _, c := range t.Order {
		if !t.Eliminated[c] {
			alive = append(alive, c)
		}
	}
	return alive
}

// Seat returns color's position in the order, or -1 if it is not seated.
func (t *Turn) Seat(color Color) int {
	return utils.FindIndex(t.Order, color)
}
