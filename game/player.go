package game

import (
	"fmt"

	"github.com/google/uuid"
)

type PlayerType int

const (
	Human PlayerType = iota
	AI
)

func (t PlayerType) String() string {
	if t == AI {
		return "ai"
	}
	return "human"
}

// Player is created once at game start and never changes afterwards.
type Player struct {
	ID    string
	Type  PlayerType
	Name  string
	Color Color
	Level string // Profile name, AI players only
}

func NewHumanPlayer(name string, color Color) *Player {
	return &Player{
		ID:    uuid.NewString(),
		Type:  Human,
		Name:  name,
		Color: color,
	}
}

func NewAIPlayer(name string, color Color, level string) *Player {
	return &Player{
		ID:    uuid.NewString(),
		Type:  AI,
		Name:  name,
		Color: color,
		Level: level,
	}
}

func (p *Player) IsAI() bool {
	return p.Type == AI
}

// DisplayName is the label used in log text, e.g. "Ada (Red)".
func (p *Player) DisplayName() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Color)
}
