package main

import (
	"flag"
	"os"
	"time"

	"knockitoff/agent"
	"knockitoff/experiments"
	"knockitoff/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "tiers", "Experiment to run: tiers or ffa")
	games := flag.Int("games", meta.GAMES_PER_MATCHUP, "Number of games per matchup")
	seed := flag.Uint64("seed", meta.DEFAULT_SEED, "Seed of the first game")
	workers := flag.Int("workers", meta.WORKERS, "Number of games played in parallel")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "Moves before a game is drawn, 0 for no limit")
	profilesPath := flag.String("profiles", "", "YAML file overriding the AI tiers")
	outDir := flag.String("out", "experiments", "Directory for the CSV results, empty to skip writing")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	config := experiments.DefaultConfig()
	config.Games = *games
	config.Seed = *seed
	config.Workers = *workers
	config.MaxTurns = *maxTurns
	config.OutDir = *outDir

	if *profilesPath != "" {
		f, err := os.Open(*profilesPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open profiles")
		}
		config.Profiles, err = agent.LoadProfiles(f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load profiles")
		}
	}

	var result experiments.Result
	switch *experiment {
	case "tiers":
		result, err = experiments.RunTierExperiment(config)
	case "ffa":
		result, err = experiments.RunFreeForAll(config)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	wins := map[string]int{}
	for _, g := range result.Games {
		wins[g.WinnerLevel]++
	}
	for _, name := range config.Profiles.Names() {
		log.Info().Msgf("%s won %d of %d games", name, wins[name], len(result.Games))
	}
	log.Info().Msgf("%d draws, results in %q", wins[""], result.Dir)
}
