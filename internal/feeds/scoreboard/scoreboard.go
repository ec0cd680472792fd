// Package scoreboard parses the live scoreboard feed, whose games live in
// a top-level games[] collection instead of the schedule's dates[] nesting.
package scoreboard

import (
	"scorepanel/internal/feeds/feedutil"
	"scorepanel/pkg/models"
)

const scoreboardURL = "https://statsapi.web.nhl.com/api/v1/scoreboard"

// Module implements contracts.FeedModule for the live scoreboard feed.
type Module struct{}

// New creates the live scoreboard feed module.
func New() *Module {
	return &Module{}
}

func (m *Module) Key() string {
	return "live_scoreboard"
}

func (m *Module) DisplayName() string {
	return "Live"
}

// ScoreboardURL ignores the date key; the live feed is always scoped to
// the current scoreboard.
func (m *Module) ScoreboardURL(string) string {
	return scoreboardURL
}

// Parse walks the top-level games[] collection with the same skip-on-
// malformed, default-on-missing policy as the schedule feed.
func (m *Module) Parse(raw map[string]interface{}) models.ScoreBoard {
	board := models.ScoreBoard{}
	for _, gameEntry := range feedutil.Array(raw, "games") {
		game, ok := gameEntry.(map[string]interface{})
		if !ok {
			continue
		}
		summary, ok := parseGame(game)
		if !ok {
			continue
		}
		board = append(board, summary)
	}
	return board
}

func parseGame(game map[string]interface{}) (models.GameSummary, bool) {
	teams := feedutil.Map(game, "teams")
	away := feedutil.Map(teams, "away")
	home := feedutil.Map(teams, "home")
	if away == nil || home == nil {
		return models.GameSummary{}, false
	}

	return models.GameSummary{
		AwayTeam:  feedutil.String(feedutil.Map(away, "team"), "name", "Unknown"),
		AwayScore: feedutil.Int(away, "score"),
		HomeTeam:  feedutil.String(feedutil.Map(home, "team"), "name", "Unknown"),
		HomeScore: feedutil.Int(home, "score"),
		Status:    feedutil.String(feedutil.Map(game, "status"), "abstractGameState", "Unknown"),
	}, true
}
