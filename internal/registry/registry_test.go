package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownFeed(t *testing.T) {
	r := New()

	module, err := r.Get("nhl_schedule")
	require.NoError(t, err)
	assert.Equal(t, "nhl_schedule", module.Key())

	module, err = r.Get("live_scoreboard")
	require.NoError(t, err)
	assert.Equal(t, "live_scoreboard", module.Key())
}

func TestGet_UnknownFeed(t *testing.T) {
	r := New()

	_, err := r.Get("basketball_nba")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feed module not found")
}

func TestKeys_Sorted(t *testing.T) {
	assert.Equal(t, []string{"live_scoreboard", "nhl_schedule"}, New().Keys())
}
