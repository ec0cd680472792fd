package models

// GameSummary is the flat, render-ready record for one game. It is built
// once by a feed parser and never mutated afterwards.
type GameSummary struct {
	AwayTeam  string
	AwayScore int
	HomeTeam  string
	HomeScore int
	Status    string // feed-provided label, e.g. "Final", "Live", "FINAL"
}

// ScoreBoard is the ordered set of games for one polling cycle, in feed
// order. It is created fresh each cycle and discarded after rendering.
// An empty board is the valid "no games" state; a failed fetch or parse
// degrades to an empty board rather than a nil sentinel.
type ScoreBoard []GameSummary
