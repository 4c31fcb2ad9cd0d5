package metrics

import (
	"time"

	"knockitoff/game"
)

type MoveMetric struct {
	Step     int
	Color    string
	Level    string // Profile name, "" for humans
	Knock    bool
	Duration time.Duration // Time spent choosing the move
}

type GameMetric struct {
	StartingColor string
	Winner        string // Color, "" on a draw
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
	Knocks        int
	Eliminated    int
}

// Collector is fed by a game session as moves are committed.
type Collector interface {
	Start(starting game.Color)
	AddMove(step int, player *game.Player, knock bool, duration time.Duration)
	AddElimination(color game.Color)
	Complete(winner *game.Player) (GameMetric, []MoveMetric)
}

type collector struct {
	starting   game.Color
	startTime  time.Time
	moves      []MoveMetric
	knocks     int
	eliminated int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(starting game.Color) {
	m.starting = starting
	m.startTime = time.Now()
	m.moves = nil
	m.knocks = 0
	m.eliminated = 0
}

func (m *collector) AddMove(step int, player *game.Player, knock bool, duration time.Duration) {
	if knock {
		m.knocks++
	}
	m.moves = append(m.moves, MoveMetric{
		Step:     step,
		Color:    player.Color.String(),
		Level:    player.Level,
		Knock:    knock,
		Duration: duration,
	})
}

func (m *collector) AddElimination(color game.Color) {
	m.eliminated++
}

func (m *collector) Complete(winner *game.Player) (GameMetric, []MoveMetric) {
	end := time.Now()
	gm := GameMetric{
		StartingColor: m.starting.String(),
		StartTime:     m.startTime,
		EndTime:       end,
		Duration:      end.Sub(m.startTime),
		TotalMoves:    len(m.moves),
		Knocks:        m.knocks,
		Eliminated:    m.eliminated,
	}
	if winner != nil {
		gm.Winner = winner.Color.String()
	}
	return gm, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(starting game.Color)                        {}
func (m *dummyCollector) AddMove(int, *game.Player, bool, time.Duration)   {}
func (m *dummyCollector) AddElimination(color game.Color)                  {}
func (m *dummyCollector) Complete(*game.Player) (GameMetric, []MoveMetric) { return GameMetric{}, nil }
