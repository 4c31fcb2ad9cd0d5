package game

// Board is the grid of cells. A nil cell is empty. The index of a cell is a
// stable identity: a piece moving from A to B is the same *Piece at B.
type Board struct {
	Layout *Layout  // Reference to the static layout
	Cells  []*Piece // Occupant per cell, indexed by cell index
}

// NewBoard returns an empty board for the layout.
func NewBoard(l *Layout) *Board {
	return &Board{
		Layout: l,
		Cells:  make([]*Piece, l.Size()),
	}
}

// At returns the piece on index, or nil for an empty or off-board index.
func (b *Board) At(index int) *Piece {
	if index < 0 || index >= len(b.Cells) {
		return nil
	}
	return b.Cells[index]
}

// Snapshot returns a copy of the cells. Pieces are shared since they are
// never mutated.
func (b *Board) Snapshot() []*Piece {
	cells := make([]*Piece, len(b.Cells))
	copy(cells, b.Cells)
	return cells
}

// Copy returns a board with its own cells over the same layout.
func (b *Board) Copy() *Board {
	return &Board{
		Layout: b.Layout,
		Cells:  b.Snapshot(),
	}
}

// WithCells returns a board over the same layout using cells as-is.
func (b *Board) WithCells(cells []*Piece) *Board {
	return &Board{Layout: b.Layout, Cells: cells}
}

// PiecesOf returns the indices holding color's pieces, in index order.
func (b *Board) PiecesOf(color Color) []int {
	var indices []int
	for i, p := range b.Cells {
		if p != nil && p.Color == color {
			indices = append(indices, i)
		}
	}
	return indices
}

// PieceCount counts every piece on the board.
func (b *Board) PieceCount() int {
	n := 0
	for _, p := range b.Cells {
		if p != nil {
			n++
		}
	}
	return n
}

// CountByColor tallies pieces per color.
func (b *Board) CountByColor() map[Color]int {
	counts := make(map[Color]int)
	for _, p := range b.Cells {
		if p != nil {
			counts[p.Color]++
		}
	}
	return counts
}

// IndexOfPiece finds the cell currently holding the piece with id.
func (b *Board) IndexOfPiece(id int) (int, bool) {
	for i, p := range b.Cells {
		if p != nil && p.ID == id {
			return i, true
		}
	}
	return -1, false
}
