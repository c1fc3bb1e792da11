package seed_test

import (
	"testing"

	"github.com/statchomper/statchomper/internal/boxscore"
	"github.com/statchomper/statchomper/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSetIsValid(t *testing.T) {
	require.Len(t, seed.Games, 28)

	players := make(map[string]bool)
	for i, in := range seed.Games {
		assert.NoError(t, boxscore.ValidateInput(in), "seed game %d (%s)", i, in.Player)
		players[in.Player] = true
	}
	assert.Len(t, players, 13)
}

func TestSeedDerivation(t *testing.T) {
	// first seed entry: 8/14, 3/7, 3/4
	bs := boxscore.Derive(seed.Games[0])
	assert.Equal(t, 28, bs.Points)
	assert.Equal(t, "57.1", bs.TwoPoint.Percentage.String())
	assert.Equal(t, "42.9", bs.ThreePoint.Percentage.String())
	assert.Equal(t, "75.0", bs.FreeThrow.Percentage.String())
}
