package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var nextTestID = 1000

func place(b *Board, row, col int, color Color, kind Kind) int {
	idx, ok := b.Layout.Index(row, col)
	if !ok {
		panic("test piece off the board")
	}
	nextTestID++
	b.Cells[idx] = &Piece{ID: nextTestID, Color: color, Kind: kind}
	return idx
}

func index(b *Board, row, col int) int {
	idx, _ := b.Layout.Index(row, col)
	return idx
}

func emptyBoard() *Board {
	return NewBoard(NewLayout(8, 8))
}

func TestLegalMoves(t *testing.T) {
	rules := NewStandardRules()

	t.Run("empty origin yields no moves", func(t *testing.T) {
		b := emptyBoard()

		require.Empty(t, LegalMoves(b, rules, index(b, 3, 3)), "An empty cell has nothing to move")
	})

	t.Run("lone piece moves one step in every direction in order", func(t *testing.T) {
		b := emptyBoard()
		from := place(b, 3, 3, Red, Soldier)

		moves := LegalMoves(b, rules, from)

		require.Len(t, moves, 8, "A piece in open space should reach all eight neighbors")
		for i, m := range moves {
			require.Equal(t, AllDirections[i], m.Dir, "Moves should follow direction enumeration order")
			require.Equal(t, from, m.From)
			require.Nil(t, m.Knocked, "Plain moves knock nothing off")
			require.Equal(t, -1, m.Victim)
		}
		require.Equal(t, index(b, 2, 3), moves[0].Dest, "First move should head north")
	})

	t.Run("corner piece stays on the board", func(t *testing.T) {
		b := emptyBoard()
		from := place(b, 0, 0, Red, Soldier)

		moves := LegalMoves(b, rules, from)

		dests := []int{}
		for _, m := range moves {
			dests = append(dests, m.Dest)
		}
		require.ElementsMatch(t, []int{index(b, 0, 1), index(b, 1, 1), index(b, 1, 0)}, dests)
	})

	t.Run("own pieces block movement", func(t *testing.T) {
		b := emptyBoard()
		from := place(b, 3, 3, Red, Soldier)
		place(b, 2, 3, Red, Decoy)

		for _, m := range LegalMoves(b, rules, from) {
			require.NotEqual(t, North, m.Dir, "Friendly piece to the north should block")
		}
	})

	t.Run("adjacent opponent with empty landing is knocked off", func(t *testing.T) {
		b := emptyBoard()
		from := place(b, 3, 3, Red, Soldier)
		victim := place(b, 3, 4, Blue, Captain)

		var knock *Move
		for _, m := range LegalMoves(b, rules, from) {
			if m.Dir == East {
				knock = &m
			}
		}

		require.NotNil(t, knock, "Should offer a knock to the east")
		require.Equal(t, index(b, 3, 5), knock.Dest, "Should land beyond the victim")
		require.Equal(t, victim, knock.Victim)
		require.Equal(t, &PieceRef{Color: Blue, Kind: Captain}, knock.Knocked)
		require.Nil(t, knock.Cells[victim], "Victim's cell should be empty after the knock")
		require.NotNil(t, b.Cells[victim], "Original board must not change")
	})

	t.Run("opponent with blocked landing cannot be knocked", func(t *testing.T) {
		b := emptyBoard()
		from := place(b, 3, 3, Red, Soldier)
		place(b, 3, 4, Blue, Captain)
		place(b, 3, 5, Blue, Decoy)

		for _, m := range LegalMoves(b, rules, from) {
			require.NotEqual(t, East, m.Dir, "Occupied landing should block the knock")
		}
	})

	t.Run("opponent on the edge cannot be knocked", func(t *testing.T) {
		b := emptyBoard()
		from := place(b, 3, 6, Red, Soldier)
		place(b, 3, 7, Blue, Captain)

		for _, m := range LegalMoves(b, rules, from) {
			require.NotEqual(t, East, m.Dir, "Landing off the board is not a move")
		}
	})

	t.Run("same board yields the same moves", func(t *testing.T) {
		b := emptyBoard()
		from := place(b, 4, 4, Red, Soldier)
		place(b, 3, 4, Blue, Soldier)
		place(b, 5, 5, Red, Decoy)

		require.Equal(t, LegalMoves(b, rules, from), LegalMoves(b, rules, from))
	})
}

func TestLegalMovesPreservePieces(t *testing.T) {
	layout := CreateLayout(2)
	b := NewBoard(layout)
	// Interleave both colors in the middle so there are plenty of knocks
	for row := 2; row <= 5; row++ {
		for col := 0; col < 8; col++ {
			if (row+col)%3 == 0 {
				continue
			}
			color := Red
			if (row*8+col)%2 == 0 {
				color = Blue
			}
			place(b, row, col, color, Kind((row+col)%4))
		}
	}

	for _, rules := range []Rules{NewStandardRules(), NewSlidingRules(3, true), NewSlidingRules(3, false)} {
		before := b.PieceCount()
		for from := range b.Cells {
			for _, m := range LegalMoves(b, rules, from) {
				after := b.WithCells(m.Cells).PieceCount()
				if m.IsKnock() {
					require.Equal(t, before-1, after, "A knock removes exactly one piece")
				} else {
					require.Equal(t, before, after, "A plain move keeps every piece")
				}
				require.Same(t, b.Cells[from], m.Cells[m.Dest], "Mover should appear at dest")
				require.Nil(t, m.Cells[m.From], "Mover should leave from")
			}
		}
	}
}

func TestSlidingRules(t *testing.T) {
	t.Run("slides across empty cells", func(t *testing.T) {
		b := emptyBoard()
		from := place(b, 7, 0, Red, Soldier)

		moves := LegalMoves(b, NewSlidingRules(3, false), from)

		north := 0
		for _, m := range moves {
			if m.Dir == North {
				north++
			}
		}
		require.Equal(t, 3, north, "Should reach up to three cells north")
	})

	t.Run("knock after slide only when allowed", func(t *testing.T) {
		b := emptyBoard()
		from := place(b, 7, 0, Red, Soldier)
		victim := place(b, 5, 0, Blue, Decoy)

		hasKnock := func(rules Rules) bool {
			for _, m := range LegalMoves(b, rules, from) {
				if m.Victim == victim {
					return true
				}
			}
			return false
		}

		require.False(t, hasKnock(NewSlidingRules(3, false)), "Should not knock after sliding")
		require.True(t, hasKnock(NewSlidingRules(3, true)), "Should knock after sliding")
		require.False(t, hasKnock(NewStandardRules()), "Standard rules never reach the victim")
	})
}

func TestThreatenedBy(t *testing.T) {
	rules := NewStandardRules()
	b := emptyBoard()
	target := place(b, 3, 3, Red, Crown)
	attacker := place(b, 3, 2, Blue, Soldier)
	place(b, 5, 5, Blue, Soldier)

	require.Equal(t, []int{attacker}, ThreatenedBy(b, rules, target))
	require.Empty(t, ThreatenedBy(b, rules, index(b, 0, 0)), "Empty cells are never threatened")
}

func TestMovesForColor(t *testing.T) {
	rules := NewStandardRules()
	b := emptyBoard()
	place(b, 0, 0, Red, Soldier)
	place(b, 7, 7, Blue, Soldier)

	require.Len(t, MovesForColor(b, rules, Red), 3)
	require.True(t, HasLegalMove(b, rules, Blue))
	require.False(t, HasLegalMove(b, rules, Green), "Colors without pieces have no moves")
}
