package scoreboard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, payload string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

func TestParse_TopLevelGames(t *testing.T) {
	raw := decode(t, `{
		"games": [
			{
				"teams": {
					"away": {"team": {"name": "Test Away"}, "score": 21},
					"home": {"team": {"name": "Test Home"}, "score": 14}
				},
				"status": {"abstractGameState": "FINAL"}
			},
			{
				"teams": {
					"away": {"team": {"name": "Flames"}, "score": 0},
					"home": {"team": {"name": "Oilers"}, "score": 1}
				},
				"status": {"abstractGameState": "Live"}
			}
		]
	}`)

	board := New().Parse(raw)

	require.Len(t, board, 2)
	assert.Equal(t, "Test Away", board[0].AwayTeam)
	assert.Equal(t, 21, board[0].AwayScore)
	assert.Equal(t, "FINAL", board[0].Status)
	assert.Equal(t, "Oilers", board[1].HomeTeam)
}

func TestParse_DegradesToEmptyBoard(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{name: "nil response", raw: nil},
		{name: "missing games key", raw: decode(t, `{"dates": []}`)},
		{name: "malformed game entries", raw: decode(t, `{"games": [42, "x", {}]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := New().Parse(tt.raw)
			require.NotNil(t, board)
			assert.Empty(t, board)
		})
	}
}

func TestScoreboardURL_IgnoresDate(t *testing.T) {
	m := New()
	assert.Equal(t, m.ScoreboardURL(""), m.ScoreboardURL("2026-02-14"))
}
