package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// TierConfig describes one AI tier taking part in an experiment.
type TierConfig struct {
	Name        string
	RecallMoves int
	Randomness  float64
	TopK        int
}

type GameRecord struct {
	ID          int
	MatchUp     int
	Seed        uint64
	Levels      []string // Profile per seat, in the match up's order
	WinnerLevel string   // Winning profile, "" on a draw
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the experiment files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteTierConfigs(configs []TierConfig) error {
	header := []string{"name", "recall_moves", "randomness", "top_k"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			config.Name,
			strconv.Itoa(config.RecallMoves),
			strconv.FormatFloat(config.Randomness, 'f', -1, 64),
			strconv.Itoa(config.TopK),
		}
	}
	return w.write("tier_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "seed", "levels", "starting_color", "winner_color", "winner",
		"total_moves", "knocks", "eliminated", "start_time", "end_time", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.MatchUp),
			strconv.FormatUint(record.Seed, 10),
			strings.Join(record.Levels, "|"),
			record.StartingColor,
			record.Winner,
			record.WinnerLevel,
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Knocks),
			strconv.Itoa(record.Eliminated),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "color", "level", "knock", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Color,
			record.Level,
			strconv.FormatBool(record.Knock),
			record.Duration.String(),
		}
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
