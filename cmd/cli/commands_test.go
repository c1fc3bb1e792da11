package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/statchomper/statchomper/internal/boxscore"
	"github.com/statchomper/statchomper/internal/games"
	"github.com/statchomper/statchomper/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []boxscore.GameRecord {
	return []boxscore.GameRecord{
		{
			ID:         2,
			Player:     "Stephen Curry",
			DatePlayed: time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC),
			Opponent:   "Lakers",
			BoxScore: boxscore.Derive(boxscore.GameInput{
				TwoPointMade: 5, TwoPointAttempts: 8,
				ThreePointMade: 7, ThreePointAttempts: 15,
				FreeThrowMade: 6, FreeThrowAttempts: 6,
				Rebounds: 4, Assists: 7,
			}),
		},
		{
			ID:         1,
			Player:     "LeBron James",
			DatePlayed: time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
			Opponent:   "Warriors",
			BoxScore: boxscore.Derive(boxscore.GameInput{
				TwoPointMade: 8, TwoPointAttempts: 14,
				ThreePointMade: 3, ThreePointAttempts: 7,
				FreeThrowMade: 3, FreeThrowAttempts: 4,
				Rebounds: 12, Assists: 8,
			}),
		},
	}
}

func TestRenderGames(t *testing.T) {
	store := games.NewMock()
	store.GetAllFunc = func() []boxscore.GameRecord { return sampleRecords() }

	var buf bytes.Buffer
	require.NoError(t, renderGames(&buf, store, "", ""))

	out := buf.String()
	// groups come out alphabetically, LeBron before Curry's S
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("LeBron James")), bytes.Index(buf.Bytes(), []byte("Stephen Curry")))
	assert.Contains(t, out, "Dec 20, 2025 vs Warriors: 28 pts")
	assert.Contains(t, out, "2PT 8 for 14, 57.1%")
	assert.Contains(t, out, "FT 6 for 6, 100.0%")
}

func TestRenderGamesByPlayer(t *testing.T) {
	store := games.NewMock()
	store.GetByPlayerFunc = func(name string) []boxscore.GameRecord {
		return sampleRecords()[1:]
	}

	var buf bytes.Buffer
	require.NoError(t, renderGames(&buf, store, "LeBron James", ""))

	assert.Equal(t, []string{"LeBron James"}, store.GetByPlayerCalls)
	assert.Contains(t, buf.String(), "Warriors")
	assert.NotContains(t, buf.String(), "Lakers")
}

func TestRenderGamesFilter(t *testing.T) {
	store := games.NewMock()
	store.GetAllFunc = func() []boxscore.GameRecord { return sampleRecords() }

	var buf bytes.Buffer
	require.NoError(t, renderGames(&buf, store, "", "lakers"))

	assert.Contains(t, buf.String(), "Stephen Curry")
	assert.NotContains(t, buf.String(), "LeBron James")
}

func TestRenderGamesEmpty(t *testing.T) {
	store := games.NewMock()

	var buf bytes.Buffer
	require.NoError(t, renderGames(&buf, store, "", ""))
	assert.Equal(t, "No games found\n", buf.String())
}

func TestRunSeed(t *testing.T) {
	store := games.NewMock()
	store.SeedIfEmptyFunc = func(seed []boxscore.GameInput) (int, error) {
		return len(seed), nil
	}
	counters := metrics.NewMock()

	var buf bytes.Buffer
	require.NoError(t, runSeed(&buf, store, counters))

	require.Len(t, store.SeedIfEmptyCalls, 1)
	assert.Equal(t, 1, counters.Count("seed_runs"))
	assert.Contains(t, buf.String(), "Seeded 28 of 28 games")

	t.Run("already seeded does not count a run", func(t *testing.T) {
		store := games.NewMock()
		counters := metrics.NewMock()

		var buf bytes.Buffer
		require.NoError(t, runSeed(&buf, store, counters))
		assert.Equal(t, 0, counters.Count("seed_runs"))
		assert.Contains(t, buf.String(), "Seeded 0 of 28 games")
	})
}

func TestGameFlagsValidation(t *testing.T) {
	flags := gameFlagSet{
		player:   "LeBron James",
		date:     "2025-12-20",
		opponent: "Warriors",
		twoMade:  8, twoAtt: 14,
	}
	in, err := flags.input()
	require.NoError(t, err)
	assert.Equal(t, "LeBron James", in.Player)
	assert.Equal(t, time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), in.DatePlayed)

	t.Run("rejects bad date", func(t *testing.T) {
		bad := flags
		bad.date = "12/20/2025"
		_, err := bad.input()
		assert.Error(t, err)
	})

	t.Run("rejects made over attempts", func(t *testing.T) {
		bad := flags
		bad.twoMade = 20
		_, err := bad.input()
		var verr *boxscore.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "twoPointMade", verr.Field)
	})
}
