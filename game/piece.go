package game

import "fmt"

type Color int

const (
	Red Color = iota
	Blue
	Green
	Yellow
)

// MaxColors is the largest number of teams a game can seat.
const MaxColors = 4

// ColorLabels maps colors to the display labels used in log text.
var ColorLabels = map[Color]string{
	Red:    "Red",
	Blue:   "Blue",
	Green:  "Green",
	Yellow: "Yellow",
}

func (c Color) String() string {
	if label, ok := ColorLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Valid reports whether c is one of the known team colors.
func (c Color) Valid() bool {
	return c >= Red && c < MaxColors
}

// Kind is the hidden subtype of a piece.
type Kind int

const (
	Decoy   Kind = iota // 0
	Soldier             // 1
	Captain             // 2
	Crown               // 3
)

var kindNames = []string{"Decoy", "Soldier", "Captain", "Crown"}

// AllKinds lists every kind in declaration order.
var AllKinds = []Kind{Decoy, Soldier, Captain, Crown}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Piece occupies exactly one cell. Pieces are never mutated after placement,
// so boards can share them between snapshots.
type Piece struct {
	ID    int
	Color Color
	Kind  Kind
}

// PieceRef identifies what a piece is without its identity.
type PieceRef struct {
	Color Color
	Kind  Kind
}

func (p *Piece) Ref() PieceRef {
	return PieceRef{Color: p.Color, Kind: p.Kind}
}

func (r PieceRef) String() string {
	return fmt.Sprintf("%s %s", r.Color, r.Kind)
}
