package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scorepanel/pkg/models"
)

func decode(t *testing.T, payload string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

func TestParse_SingleGame(t *testing.T) {
	raw := decode(t, `{
		"dates": [{
			"games": [{
				"teams": {
					"away": {"team": {"name": "Bruins"}, "score": 3},
					"home": {"team": {"name": "Rangers"}, "score": 2}
				},
				"status": {"abstractGameState": "Final"}
			}]
		}]
	}`)

	board := New().Parse(raw)

	require.Len(t, board, 1)
	assert.Equal(t, models.GameSummary{
		AwayTeam:  "Bruins",
		AwayScore: 3,
		HomeTeam:  "Rangers",
		HomeScore: 2,
		Status:    "Final",
	}, board[0])
}

func TestParse_DegradesToEmptyBoard(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{name: "nil response", raw: nil},
		{name: "missing dates key", raw: decode(t, `{"copyright": "NHL"}`)},
		{name: "dates not an array", raw: decode(t, `{"dates": "today"}`)},
		{name: "empty dates", raw: decode(t, `{"dates": []}`)},
		{name: "date without games", raw: decode(t, `{"dates": [{"date": "2026-01-01"}]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := New().Parse(tt.raw)
			require.NotNil(t, board)
			assert.Empty(t, board)
		})
	}
}

func TestParse_MalformedRecordSkipped(t *testing.T) {
	raw := decode(t, `{
		"dates": [{
			"games": [
				{
					"teams": {
						"away": {"team": {"name": "Bruins"}, "score": 3},
						"home": {"team": {"name": "Rangers"}, "score": 2}
					},
					"status": {"abstractGameState": "Final"}
				},
				{"gamePk": 2026020001},
				{
					"teams": {
						"away": {"team": {"name": "Maple Leafs"}, "score": 1},
						"home": {"team": {"name": "Canadiens"}, "score": 4}
					},
					"status": {"abstractGameState": "Live"}
				}
			]
		}]
	}`)

	board := New().Parse(raw)

	// The record without a teams structure is dropped; feed order holds.
	require.Len(t, board, 2)
	assert.Equal(t, "Bruins", board[0].AwayTeam)
	assert.Equal(t, "Maple Leafs", board[1].AwayTeam)
	assert.Equal(t, "Live", board[1].Status)
}

func TestParse_MissingFieldsDefault(t *testing.T) {
	raw := decode(t, `{
		"dates": [{
			"games": [{
				"teams": {
					"away": {"score": 5},
					"home": {"team": {"name": "Rangers"}}
				}
			}]
		}]
	}`)

	board := New().Parse(raw)

	require.Len(t, board, 1)
	assert.Equal(t, models.GameSummary{
		AwayTeam:  "Unknown",
		AwayScore: 5,
		HomeTeam:  "Rangers",
		HomeScore: 0,
		Status:    "Unknown",
	}, board[0])
}

func TestScoreboardURL(t *testing.T) {
	url := New().ScoreboardURL("2026-02-14")
	assert.Equal(t,
		"https://statsapi.web.nhl.com/api/v1/schedule?startDate=2026-02-14&endDate=2026-02-14",
		url)
}
