package game

// Move is a candidate or committed action. Cells is the full board after the
// move, so committing a move replaces the board wholesale.
type Move struct {
	From    int
	Dest    int
	Dir     Direction
	Mover   PieceRef
	Knocked *PieceRef // nil when nothing is knocked off
	Victim  int       // Cell the knocked piece stood on, -1 if none
	Cells   []*Piece
}

func (m Move) IsKnock() bool {
	return m.Knocked != nil
}

// SameAction reports whether two moves describe the same from/dest/victim.
func (m Move) SameAction(other Move) bool {
	return m.From == other.From && m.Dest == other.Dest && m.Victim == other.Victim
}

// LegalMoves enumerates the moves available to the piece on from, walking the
// layout's directions in order. The same board and origin always yield the
// same moves in the same order.
func LegalMoves(b *Board, rules Rules, from int) []Move {
	piece := b.At(from)
	if piece == nil {
		return nil
	}

	var moves []Move
	for _, dir := range b.Layout.Directions {
		cur := from
		for steps := 0; steps < rules.MaxSteps(); steps++ {
			next, ok := b.Layout.Neighbor(cur, dir)
			if !ok {
				break
			}
			occupant := b.Cells[next]
			if occupant == nil {
				moves = append(moves, buildMove(b, piece, from, next, dir, -1))
				cur = next
				continue
			}
			// Own pieces block. Opposing pieces block too, unless they can be
			// knocked off onto an empty landing cell beyond.
			if occupant.Color != piece.Color && rules.CanKnock(steps) {
				landing, ok := b.Layout.Neighbor(next, dir)
				if ok && b.Cells[landing] == nil {
					moves = append(moves, buildMove(b, piece, from, landing, dir, next))
				}
			}
			break
		}
	}
	return moves
}

func buildMove(b *Board, piece *Piece, from, dest int, dir Direction, victim int) Move {
	cells := b.Snapshot()
	cells[from] = nil
	cells[dest] = piece

	move := Move{
		From:   from,
		Dest:   dest,
		Dir:    dir,
		Mover:  piece.Ref(),
		Victim: victim,
		Cells:  cells,
	}
	if victim >= 0 {
		knocked := b.Cells[victim].Ref()
		move.Knocked = &knocked
		cells[victim] = nil
	}
	return move
}

// MovesForColor enumerates legal moves for every piece of color, in cell
// index order.
func MovesForColor(b *Board, rules Rules, color Color) []Move {
	var moves []Move
	for _, idx := range b.PiecesOf(color) {
		moves = append(moves, LegalMoves(b, rules, idx)...)
	}
	return moves
}

// HasLegalMove reports whether any of color's pieces can move.
func HasLegalMove(b *Board, rules Rules, color Color) bool {
	for _, idx := range b.PiecesOf(color) {
		if len(LegalMoves(b, rules, idx)) > 0 {
			return true
		}
	}
	return false
}

// ThreatenedBy returns the cells of opposing pieces that could knock off the
// piece on index in their next move.
func ThreatenedBy(b *Board, rules Rules, index int) []int {
	target := b.At(index)
	if target == nil {
		return nil
	}
	var attackers []int
	for i, p := range b.Cells {
		if p == nil || p.Color == target.Color {
			continue
		}
		for _, m := range LegalMoves(b, rules, i) {
			if m.Victim == index {
				attackers = append(attackers, i)
				break
			}
		}
	}
	return attackers
}
