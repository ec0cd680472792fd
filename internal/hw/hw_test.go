package hw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSPI_UnavailableBus(t *testing.T) {
	err := CheckSPI("nonexistent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
	assert.Contains(t, err.Error(), "raspi-config")
}

func TestPin_UnknownName(t *testing.T) {
	_, err := Pin("NOPE")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"NOPE"`)
}
