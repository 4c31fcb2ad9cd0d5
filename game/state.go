package game

import (
	"fmt"

	"github.com/google/uuid"
)

type Phase int

const (
	SetupPhase Phase = iota
	PlayPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case SetupPhase:
		return "setup"
	case PlayPhase:
		return "play"
	case GameOverPhase:
		return "gameover"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Rack is the multiset of kinds a color still has to place.
type Rack map[Kind]int

// StandardRack is the set of pieces every color starts with.
func StandardRack() Rack {
	return Rack{
		Crown:   1,
		Captain: 2,
		Soldier: 5,
		Decoy:   4,
	}
}

// Size is the number of pieces left in the rack.
func (r Rack) Size() int {
	n := 0
	for _, count := range r {
		n += count
	}
	return n
}

// Kinds expands the rack into a list, in kind order.
func (r Rack) Kinds() []Kind {
	var kinds []Kind
	for _, k := range AllKinds {
		for i := 0; i < r[k]; i++ {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Placement is one planned piece drop.
type Placement struct {
	Index int
	Kind  Kind
}

// Setup is only meaningful while Phase is SetupPhase.
type Setup struct {
	HumanColors        []Color               // Humans place in this order
	Index              int                   // Position in HumanColors of the placing human
	HumanPlacementDone bool                  // Every human has emptied their rack
	AIRevealDone       bool                  // AI placements are on the board
	Racks              map[Color]Rack        // Pieces still to place per color
	Planned            map[Color][]Placement // AI placements waiting to be revealed
}

// LogEntry records one committed move. Entries are never modified.
type LogEntry struct {
	Turn       int
	Mover      string // Display name of the moving player
	Victim     string // Display name of the knocked player, "" if none
	MoverColor Color
	MoverKind  Kind
	Knocked    *PieceRef
	Dir        Direction
	From       int
	Dest       int
	Before     []*Piece
	After      []*Piece
}

// GameState is the single mutable aggregate of a game session. Every
// component reads and mutates it through the same pointer.
type GameState struct {
	ID      string
	Board   *Board
	Rules   Rules
	Players []*Player
	Turn    Turn
	Phase   Phase
	Setup   Setup
	Memory  AIMemory
	Logs    []LogEntry
	Winner  *Player // Set once Phase is GameOverPhase; nil on a draw

	nextPieceID int
}

// NewGameState seats players in the given order on layout. Humans place in
// seating order.
func NewGameState(layout *Layout, rules Rules, players []*Player) *GameState {
	order := make([]Color, 0, len(players))
	racks := make(map[Color]Rack, len(players))
	var humans []Color
	for _, p := range players {
		order = append(order, p.Color)
		racks[p.Color] = StandardRack()
		if !p.IsAI() {
			humans = append(humans, p.Color)
		}
	}

	return &GameState{
		ID:      uuid.NewString(),
		Board:   NewBoard(layout),
		Rules:   rules,
		Players: players,
		Turn:    NewTurn(order),
		Phase:   SetupPhase,
		Setup: Setup{
			HumanColors:        humans,
			HumanPlacementDone: len(humans) == 0,
			Racks:              racks,
			Planned:            make(map[Color][]Placement),
		},
		Memory: NewAIMemory(),
	}
}

// PlayerFor returns the player seated as color, or nil.
func (gs *GameState) PlayerFor(color Color) *Player {
	for _, p := range gs.Players {
		if p.Color == color {
			return p
		}
	}
	return nil
}

// CurrentPlayer is the player whose turn it is.
func (gs *GameState) CurrentPlayer() *Player {
	return gs.PlayerFor(gs.Turn.Current())
}

// DisplayName labels color for log text.
func (gs *GameState) DisplayName(color Color) string {
	if p := gs.PlayerFor(color); p != nil {
		return p.DisplayName()
	}
	return color.String()
}

// AIColors lists the colors controlled by AI players, in seating order.
func (gs *GameState) AIColors() []Color {
	var colors []Color
	for _, p := range gs.Players {
		if p.IsAI() {
			colors = append(colors, p.Color)
		}
	}
	return colors
}

// Place puts a new piece of color and kind on index and takes it from the
// color's rack.
func (gs *GameState) Place(index int, color Color, kind Kind) error {
	if index < 0 || index >= len(gs.Board.Cells) {
		return fmt.Errorf("cannot place: cell %d is off the board", index)
	}
	if gs.Board.Cells[index] != nil {
		return fmt.Errorf("cannot place: cell %d is occupied", index)
	}
	if !gs.Board.Layout.InZone(color, index) {
		return fmt.Errorf("cannot place: cell %d is outside %s's home zone", index, color)
	}
	rack := gs.Setup.Racks[color]
	if rack[kind] <= 0 {
		return fmt.Errorf("cannot place: %s has no %s left to place", color, kind)
	}

	rack[kind]--
	gs.nextPieceID++
	gs.Board.Cells[index] = &Piece{ID: gs.nextPieceID, Color: color, Kind: kind}
	return nil
}

// IsBoardReady is the default structural check before play: every rack is
// empty and every seated color has pieces on the board.
func IsBoardReady(gs *GameState) bool {
	counts := gs.Board.CountByColor()
	for _, color := range gs.Turn.Order {
		if gs.Setup.Racks[color].Size() > 0 {
			return false
		}
		if counts[color] == 0 {
			return false
		}
	}
	return true
}
