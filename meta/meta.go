// meta/meta.go
package meta

// MAX_TURNS caps the number of moves before a game is declared a draw.
const MAX_TURNS = 300

// DEFAULT_SEED seeds the shared random source when none is given.
const DEFAULT_SEED = 1

// GAMES_PER_MATCHUP is the number of self-play games per tier matchup.
const GAMES_PER_MATCHUP = 30

// WORKERS is the number of goroutines running self-play games.
const WORKERS = 8
