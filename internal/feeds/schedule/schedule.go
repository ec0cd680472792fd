// Package schedule parses the date-scoped NHL stats API schedule feed,
// whose games live under a dates[].games[] collection.
package schedule

import (
	"fmt"

	"scorepanel/internal/feeds/feedutil"
	"scorepanel/pkg/models"
)

const baseURL = "https://statsapi.web.nhl.com/api/v1"

// Module implements contracts.FeedModule for the NHL schedule feed.
type Module struct{}

// New creates the NHL schedule feed module.
func New() *Module {
	return &Module{}
}

func (m *Module) Key() string {
	return "nhl_schedule"
}

func (m *Module) DisplayName() string {
	return "NHL"
}

// ScoreboardURL scopes the schedule endpoint to a single date.
func (m *Module) ScoreboardURL(date string) string {
	return fmt.Sprintf("%s/schedule?startDate=%s&endDate=%s", baseURL, date, date)
}

// Parse walks the dates[].games[] collection. Missing top-level structure
// yields an empty board; a malformed game record is skipped and the rest
// of the feed still parses, in feed order.
func (m *Module) Parse(raw map[string]interface{}) models.ScoreBoard {
	board := models.ScoreBoard{}
	for _, dateEntry := range feedutil.Array(raw, "dates") {
		date, ok := dateEntry.(map[string]interface{})
		if !ok {
			continue
		}
		for _, gameEntry := range feedutil.Array(date, "games") {
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
	}
	return board
}

// parseGame converts one raw game record. A record without both team
// sub-objects is malformed and reported as such; individual missing leaf
// fields fall back to defaults instead.
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
