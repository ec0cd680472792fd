package contracts

import (
	"scorepanel/pkg/models"
)

// FeedModule is the pluggable interface for adding new score feeds.
// A feed owns two things: how its scoreboard URL is built, and how its
// response shape maps onto a ScoreBoard.
type FeedModule interface {
	// Identification
	Key() string         // "nhl_schedule", "live_scoreboard"
	DisplayName() string // "NHL", "Live"

	// ScoreboardURL builds the fetch URL for one cycle. date is a
	// "YYYY-MM-DD" key for date-scoped feeds; live feeds ignore it.
	ScoreboardURL(date string) string

	// Parse converts one raw response into a ScoreBoard. A nil, failed
	// or structurally unexpected response yields an empty board, never
	// an error; a single malformed game record is skipped without
	// aborting the rest of the feed.
	Parse(raw map[string]interface{}) models.ScoreBoard
}
