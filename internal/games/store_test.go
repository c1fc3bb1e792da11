package games_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/statchomper/statchomper/internal/boxscore"
	"github.com/statchomper/statchomper/internal/database"
	"github.com/statchomper/statchomper/internal/games"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (games.GameStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := games.New(db)
	return store, db, dbTeardown
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func input(player, played, opponent string) boxscore.GameInput {
	return boxscore.GameInput{
		Player:             player,
		DatePlayed:         date(played),
		Opponent:           opponent,
		TwoPointMade:       8,
		TwoPointAttempts:   14,
		ThreePointMade:     3,
		ThreePointAttempts: 7,
		FreeThrowMade:      3,
		FreeThrowAttempts:  4,
		Rebounds:           12,
		Assists:            8,
		Steals:             2,
		Blocks:             1,
		Turnovers:          3,
		Fouls:              2,
	}
}

func TestCreateRoundTrip(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	id, err := store.Create(input("LeBron James", "2025-12-20", "Warriors"))
	require.NoError(t, err)
	assert.Positive(t, id)

	all := store.GetAll()
	require.Len(t, all, 1)

	rec := all[0]
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "LeBron James", rec.Player)
	assert.Equal(t, "Warriors", rec.Opponent)
	assert.Equal(t, date("2025-12-20"), rec.DatePlayed)
	assert.False(t, rec.CreatedAt.IsZero())

	// derived fields were computed, not taken from input
	assert.Equal(t, 28, rec.BoxScore.Points)
	assert.Equal(t, "57.1", rec.BoxScore.TwoPoint.Percentage.String())
	assert.Equal(t, "42.9", rec.BoxScore.ThreePoint.Percentage.String())
	assert.Equal(t, "75.0", rec.BoxScore.FreeThrow.Percentage.String())
}

func TestPercentageStoredAsText(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	in := input("LeBron James", "2025-12-20", "Warriors")
	in.FreeThrowMade = 0
	in.FreeThrowAttempts = 0
	id, err := store.Create(in)
	require.NoError(t, err)

	var twoPct, ftPct string
	err = db.QueryRow("SELECT twoPointPercentage, freeThrowPercentage FROM games WHERE id = ?", id).Scan(&twoPct, &ftPct)
	require.NoError(t, err)
	assert.Equal(t, "57.1", twoPct)
	assert.Equal(t, "n/a", ftPct)
}

func TestGetAllOrdering(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.Create(input("A", "2025-12-15", "Nets"))
	require.NoError(t, err)
	_, err = store.Create(input("B", "2025-12-22", "Lakers"))
	require.NoError(t, err)
	_, err = store.Create(input("C", "2025-12-18", "Celtics"))
	require.NoError(t, err)

	all := store.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "B", all[0].Player)
	assert.Equal(t, "C", all[1].Player)
	assert.Equal(t, "A", all[2].Player)
}

func TestGetByPlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.Create(input("LeBron James", "2025-12-20", "Warriors"))
	require.NoError(t, err)
	_, err = store.Create(input("LeBron James", "2025-12-22", "Celtics"))
	require.NoError(t, err)
	_, err = store.Create(input("Stephen Curry", "2025-12-21", "Lakers"))
	require.NoError(t, err)

	lebron := store.GetByPlayer("LeBron James")
	require.Len(t, lebron, 2)
	assert.Equal(t, "Celtics", lebron[0].Opponent)
	assert.Equal(t, "Warriors", lebron[1].Opponent)

	// exact, case-sensitive match only
	assert.Empty(t, store.GetByPlayer("lebron james"))
	assert.Empty(t, store.GetByPlayer("LeBron"))
}

func TestGetDistinctPlayers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.Create(input("Stephen Curry", "2025-12-22", "Lakers"))
	require.NoError(t, err)
	_, err = store.Create(input("LeBron James", "2025-12-20", "Warriors"))
	require.NoError(t, err)
	_, err = store.Create(input("LeBron James", "2025-12-18", "Celtics"))
	require.NoError(t, err)

	players := store.GetDistinctPlayers()
	assert.Equal(t, []string{"LeBron James", "Stephen Curry"}, players)
}

func TestSeedIfEmptyIdempotent(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seed := []boxscore.GameInput{
		input("LeBron James", "2025-12-20", "Warriors"),
		input("Stephen Curry", "2025-12-22", "Lakers"),
	}

	inserted, err := store.SeedIfEmpty(seed)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	require.Len(t, store.GetAll(), 2)

	// second call is a no-op
	inserted, err = store.SeedIfEmpty(seed)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Len(t, store.GetAll(), 2)
}

func TestUpdate(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	id, err := store.Create(input("LeBron James", "2025-12-20", "Warriors"))
	require.NoError(t, err)

	updated := input("LeBron James", "2025-12-20", "Warriors")
	updated.TwoPointMade = 10
	updated.TwoPointAttempts = 16
	updated.ThreePointMade = 4
	updated.ThreePointAttempts = 9
	updated.FreeThrowMade = 0
	updated.FreeThrowAttempts = 0
	require.NoError(t, store.Update(id, updated))

	all := store.GetAll()
	require.Len(t, all, 1)
	rec := all[0]
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, 32, rec.BoxScore.Points)
	assert.Equal(t, "62.5", rec.BoxScore.TwoPoint.Percentage.String())
	assert.Equal(t, "n/a", rec.BoxScore.FreeThrow.Percentage.String())
}

func TestUpdateMissingID(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.Update(9999, input("LeBron James", "2025-12-20", "Warriors"))
	assert.ErrorIs(t, err, games.ErrNotFound)
}

func TestDelete(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	id, err := store.Create(input("LeBron James", "2025-12-20", "Warriors"))
	require.NoError(t, err)
	_, err = store.Create(input("Stephen Curry", "2025-12-22", "Lakers"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(id))

	all := store.GetAll()
	require.Len(t, all, 1)
	assert.NotEqual(t, id, all[0].ID)

	// deleting a missing id is a no-op, not an error
	require.NoError(t, store.Delete(9999))
	assert.Len(t, store.GetAll(), 1)
}

func TestDeleteByPlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.Create(input("LeBron James", "2025-12-20", "Warriors"))
	require.NoError(t, err)
	_, err = store.Create(input("LeBron James", "2025-12-18", "Celtics"))
	require.NoError(t, err)
	_, err = store.Create(input("Stephen Curry", "2025-12-22", "Lakers"))
	require.NoError(t, err)

	removed, err := store.DeleteByPlayer("LeBron James")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	all := store.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "Stephen Curry", all[0].Player)

	removed, err = store.DeleteByPlayer("Nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestDegradedStore(t *testing.T) {
	store := games.New(nil)

	assert.Empty(t, store.GetAll())
	assert.Empty(t, store.GetByPlayer("LeBron James"))
	assert.Empty(t, store.GetDistinctPlayers())

	_, err := store.Create(input("LeBron James", "2025-12-20", "Warriors"))
	require.Error(t, err)
	var perr *games.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, games.ErrUnavailable)

	assert.Error(t, store.Update(1, input("A", "2025-12-20", "B")))
	assert.Error(t, store.Delete(1))
	_, err = store.DeleteByPlayer("A")
	assert.Error(t, err)
	_, err = store.SeedIfEmpty(nil)
	assert.Error(t, err)
}
