package game

// Rules decides how far pieces travel and when an opposing piece in the way
// can be knocked off. The capture rule was reconstructed from observed play,
// so it stays pluggable.
type Rules interface {
	// MaxSteps is the number of empty cells a piece may cross in one move.
	MaxSteps() int
	// CanKnock reports whether a piece that has already crossed stepsTaken
	// empty cells may knock off the opposing piece directly ahead.
	CanKnock(stepsTaken int) bool
}
