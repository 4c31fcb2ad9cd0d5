package experiments

import (
	"fmt"
	"sync"

	"knockitoff/agent"
	"knockitoff/engine"
	"knockitoff/experiments/metrics"
	"knockitoff/game"
	"knockitoff/meta"

	"github.com/rs/zerolog/log"
)

// Config controls a self-play experiment.
type Config struct {
	Games    int    // Per match up
	Seed     uint64 // Game i of the experiment is seeded with Seed+i
	Workers  int
	MaxTurns int
	OutDir   string // Root directory for the CSV files; empty skips writing
	Profiles agent.Profiles
}

func DefaultConfig() Config {
	return Config{
		Games:    meta.GAMES_PER_MATCHUP,
		Seed:     meta.DEFAULT_SEED,
		Workers:  meta.WORKERS,
		MaxTurns: meta.MAX_TURNS,
		OutDir:   "experiments",
		Profiles: agent.DefaultProfiles(),
	}
}

// Result holds everything an experiment recorded.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Dir   string // Where the CSV files were written
}

// RunTierExperiment pits every pair of tiers against each other. Each pair
// plays twice as many games as configured, once with each tier seated first.
func RunTierExperiment(config Config) (Result, error) {
	names := config.Profiles.Names()
	matchUps := [][]string{}
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			matchUps = append(matchUps, []string{names[i], names[j]}, []string{names[j], names[i]})
		}
	}
	return runExperiment("tiers", config, matchUps)
}

// RunFreeForAll seats every tier, up to four, in the same game.
func RunFreeForAll(config Config) (Result, error) {
	names := config.Profiles.Names()
	if len(names) > game.MaxColors {
		names = names[:game.MaxColors]
	}
	if len(names) < 2 {
		return Result{}, fmt.Errorf("free for all needs at least two tiers, got %d", len(names))
	}
	return runExperiment("free_for_all", config, [][]string{names})
}

type job struct {
	id      int
	matchUp int
	levels  []string
	seed    uint64
}

func runExperiment(name string, config Config, matchUps [][]string) (Result, error) {
	log.Info().Msgf("starting %s experiment...", name)

	jobs := make(chan job)
	records := make([]metrics.GameRecord, config.Games*len(matchUps))
	moves := make([][]metrics.MoveRecord, len(records))

	workers := config.Workers
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				record, moveMetrics := runGame(config, j)
				records[j.id-1] = record
				for _, mm := range moveMetrics {
					moves[j.id-1] = append(moves[j.id-1], metrics.MoveRecord{Game: j.id, MoveMetric: mm})
				}
				log.Info().Msgf("completed game %d of %d (%v) with winner: %q", j.id, len(records), j.levels, record.WinnerLevel)
			}
		}()
	}

	count := 0
	for mi, levels := range matchUps {
		log.Info().Msgf("queueing matchup %d of %d: %v", mi+1, len(matchUps), levels)
		for i := 0; i < config.Games; i++ {
			count++
			jobs <- job{id: count, matchUp: mi + 1, levels: levels, seed: config.Seed + uint64(count)}
		}
	}
	close(jobs)
	wg.Wait()

	result := Result{Games: records}
	for _, m := range moves {
		result.Moves = append(result.Moves, m...)
	}
	log.Info().Msgf("completed %s experiment", name)

	if config.OutDir == "" {
		return result, nil
	}
	dir, err := store(name, config, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	return result, nil
}

// runGame plays one headless game between AI tiers.
func runGame(config Config, j job) (metrics.GameRecord, []metrics.MoveMetric) {
	players := make([]*game.Player, len(j.levels))
	byColor := make(map[string]string, len(j.levels))
	for i, level := range j.levels {
		color := game.Color(i)
		players[i] = game.NewAIPlayer(fmt.Sprintf("%s-%d", level, i+1), color, level)
		byColor[color.String()] = level
	}

	s := engine.StartGame(players,
		engine.WithSeed(j.seed),
		engine.WithProfiles(config.Profiles),
		engine.WithMaxTurns(config.MaxTurns),
		engine.WithCollector(metrics.NewCollector()),
	)
	s.RevealAIPlacements()

	gameMetric, moveMetrics := s.Metrics()
	return metrics.GameRecord{
		ID:          j.id,
		MatchUp:     j.matchUp,
		Seed:        j.seed,
		Levels:      j.levels,
		WinnerLevel: byColor[gameMetric.Winner],
		GameMetric:  gameMetric,
	}, moveMetrics
}

func store(name string, config Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(config.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	tiers := []metrics.TierConfig{}
	for _, n := range config.Profiles.Names() {
		p := config.Profiles[n]
		tiers = append(tiers, metrics.TierConfig{Name: p.Name, RecallMoves: p.RecallMoves, Randomness: p.Randomness, TopK: p.TopK})
	}
	err = writer.WriteTierConfigs(tiers)
	if err != nil {
		return "", fmt.Errorf("failed to store tier configs: %w", err)
	}
	log.Info().Msg("stored tier configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
