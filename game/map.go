package game

import (
	"fmt"

	"knockitoff/utils"
)

// Direction is a unit step on the grid.
type Direction struct {
	Name string
	DRow int
	DCol int
}

func (d Direction) String() string {
	return d.Name
}

// Directions in enumeration order. Move generation walks them in this order,
// which is what makes candidate lists reproducible.
var (
	North     = Direction{Name: "N", DRow: -1, DCol: 0}
	NorthEast = Direction{Name: "NE", DRow: -1, DCol: 1}
	East      = Direction{Name: "E", DRow: 0, DCol: 1}
	SouthEast = Direction{Name: "SE", DRow: 1, DCol: 1}
	South     = Direction{Name: "S", DRow: 1, DCol: 0}
	SouthWest = Direction{Name: "SW", DRow: 1, DCol: -1}
	West      = Direction{Name: "W", DRow: 0, DCol: -1}
	NorthWest = Direction{Name: "NW", DRow: -1, DCol: -1}
)

var (
	OrthogonalDirections = []Direction{North, East, South, West}
	AllDirections        = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
)

// Layout is the static shape of the board: its dimensions, the directions
// pieces may travel in, and each color's home zone for setup.
type Layout struct {
	Width      int
	Height     int
	Directions []Direction
	Zones      map[Color][]int // Cell indices each color places its pieces on
}

// NewLayout creates an empty layout of the given size that moves along all
// eight directions.
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:      width,
		Height:     height,
		Directions: AllDirections,
		Zones:      make(map[Color][]int),
	}
}

// Size is the number of cells N. Cells are indexed 0..N-1 row by row.
func (l *Layout) Size() int {
	return l.Width * l.Height
}

func (l *Layout) Coord(index int) (row, col int) {
	return index / l.Width, index % l.Width
}

// Index returns the cell at (row, col), or false if it is off the board.
func (l *Layout) Index(row, col int) (int, bool) {
	if row < 0 || row >= l.Height || col < 0 || col >= l.Width {
		return -1, false
	}
	return row*l.Width + col, true
}

// Neighbor returns the cell one step from index along d.
func (l *Layout) Neighbor(index int, d Direction) (int, bool) {
	row, col := l.Coord(index)
	return l.Index(row+d.DRow, col+d.DCol)
}

// AddZone marks a rectangle (inclusive bounds) as part of color's home zone.
func (l *Layout) AddZone(color Color, rowFrom, rowTo, colFrom, colTo int) {
	for r := rowFrom; r <= rowTo; r++ {
		for c := colFrom; c <= colTo; c++ {
			if idx, ok := l.Index(r, c); ok && !utils.Contains(l.Zones[color], idx) {
				l.Zones[color] = append(l.Zones[color], idx)
			}
		}
	}
}

// InZone reports whether index belongs to color's home zone.
func (l *Layout) InZone(color Color, index int) bool {
	return utils.Contains(l.Zones[color], index)
}

type zoneRect struct {
	rowFrom, rowTo, colFrom, colTo int
}

// Home zones for two seats on an 8x8 board: two full rows each.
var duelZones = map[Color]zoneRect{
	Red:  {6, 7, 0, 7},
	Blue: {0, 1, 0, 7},
}

// Home zones for up to four seats on a 10x10 board: a band on each edge,
// leaving the corners free.
var meleeZones = map[Color]zoneRect{
	Red:    {8, 9, 2, 7},
	Blue:   {0, 1, 2, 7},
	Green:  {2, 7, 0, 1},
	Yellow: {2, 7, 8, 9},
}

// CreateLayout builds the standard board for numColors seats.
func CreateLayout(numColors int) *Layout {
	if numColors < 2 || numColors > MaxColors {
		panic(fmt.Sprintf("unsupported number of colors: %d", numColors))
	}

	var l *Layout
	var zones map[Color]zoneRect
	if numColors == 2 {
		l = NewLayout(8, 8)
		zones = duelZones
	} else {
		l = NewLayout(10, 10)
		zones = meleeZones
	}

	for c := Color(0); c < Color(numColors); c++ {
		z := zones[c]
		l.AddZone(c, z.rowFrom, z.rowTo, z.colFrom, z.colTo)
	}
	return l
}
