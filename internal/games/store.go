package games

import (
	"database/sql"
	"time"

	"github.com/charmbracelet/log"
	"github.com/statchomper/statchomper/internal/boxscore"
)

// New creates a new GameStore. A nil db yields a degraded store: reads
// return empty results and every write fails with a PersistenceError, which
// lets the application keep running after a failed storage init.
func New(db *sql.DB) GameStore {
	return &store{
		db: db,
	}
}

const gameColumns = `id, player, datePlayed, opponent, points,
	twoPointMade, twoPointAttempts, twoPointPercentage,
	threePointMade, threePointAttempts, threePointPercentage,
	freeThrowMade, freeThrowAttempts, freeThrowPercentage,
	rebounds, assists, steals, blocks, turnovers, fouls, createdAt`

const insertGameSQL = `
	INSERT INTO games (
		player, datePlayed, opponent, points,
		twoPointMade, twoPointAttempts, twoPointPercentage,
		threePointMade, threePointAttempts, threePointPercentage,
		freeThrowMade, freeThrowAttempts, freeThrowPercentage,
		rebounds, assists, steals, blocks, turnovers, fouls, createdAt
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// writeArgs flattens an input plus its derived box score into the insert or
// update parameter order. Derived fields always come from bs, never from the
// caller, so points and percentages cannot drift from the makes.
func writeArgs(in boxscore.GameInput, bs boxscore.BoxScore) []any {
	return []any{
		in.Player, in.DatePlayed.Format(dateLayout), in.Opponent, bs.Points,
		bs.TwoPoint.Made, bs.TwoPoint.Attempts, bs.TwoPoint.Percentage.String(),
		bs.ThreePoint.Made, bs.ThreePoint.Attempts, bs.ThreePoint.Percentage.String(),
		bs.FreeThrow.Made, bs.FreeThrow.Attempts, bs.FreeThrow.Percentage.String(),
		bs.Rebounds, bs.Assists, bs.Steals, bs.Blocks, bs.Turnovers, bs.Fouls,
	}
}

// SeedIfEmpty inserts the seed set only when the games table holds zero
// records. Individual insert failures are logged and skipped; the returned
// count is how many of the seed set made it in.
func (s *store) SeedIfEmpty(seed []boxscore.GameInput) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return 0, &PersistenceError{Op: "seed", Err: ErrUnavailable}
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM games").Scan(&count); err != nil {
		return 0, &PersistenceError{Op: "seed", Err: err}
	}
	if count > 0 {
		log.Info("Database already seeded", "games", count)
		return 0, nil
	}

	log.Info("Seeding database", "games", len(seed))
	stmt, err := s.db.Prepare(insertGameSQL)
	if err != nil {
		return 0, &PersistenceError{Op: "seed", Err: err}
	}
	defer stmt.Close()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	inserted := 0
	for i, in := range seed {
		args := append(writeArgs(in, boxscore.Derive(in)), createdAt)
		if _, err := stmt.Exec(args...); err != nil {
			log.Error("Failed to insert seed game", "error", err, "index", i, "player", in.Player)
			continue
		}
		inserted++
	}
	log.Info("Database seeded", "inserted", inserted, "total", len(seed))
	return inserted, nil
}

// GetAll returns every game, most recent first. Errors are logged and an
// empty result is returned.
func (s *store) GetAll() []boxscore.GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil
	}

	rows, err := s.db.Query("SELECT " + gameColumns + " FROM games ORDER BY datePlayed DESC")
	if err != nil {
		log.Error("Failed to query all games", "error", err)
		return nil
	}
	defer rows.Close()

	return s.collectGames(rows)
}

// GetByPlayer returns the games whose player name matches exactly, most
// recent first. Matching is case-sensitive with no trimming.
func (s *store) GetByPlayer(name string) []boxscore.GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil
	}

	rows, err := s.db.Query("SELECT "+gameColumns+" FROM games WHERE player = ? ORDER BY datePlayed DESC", name)
	if err != nil {
		log.Error("Failed to query games by player", "error", err, "player", name)
		return nil
	}
	defer rows.Close()

	return s.collectGames(rows)
}

// GetDistinctPlayers returns the distinct player names present, sorted
// alphabetically ascending.
func (s *store) GetDistinctPlayers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil
	}

	rows, err := s.db.Query("SELECT DISTINCT player FROM games ORDER BY player ASC")
	if err != nil {
		log.Error("Failed to query distinct players", "error", err)
		return nil
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			log.Error("Failed to scan player name", "error", err)
			continue
		}
		players = append(players, p)
	}
	return players
}

// Create recomputes the derived fields from in, persists a new record and
// returns its id.
func (s *store) Create(in boxscore.GameInput) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return 0, &PersistenceError{Op: "create", Err: ErrUnavailable}
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	args := append(writeArgs(in, boxscore.Derive(in)), createdAt)
	res, err := s.db.Exec(insertGameSQL, args...)
	if err != nil {
		log.Error("Failed to insert game", "error", err, "player", in.Player)
		return 0, &PersistenceError{Op: "create", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &PersistenceError{Op: "create", Err: err}
	}
	log.Info("Game created", "id", id, "player", in.Player)
	return id, nil
}

// Update recomputes the derived fields from in and replaces every mutable
// field of the record with that id. The id itself and createdAt never
// change. Updating a missing id returns ErrNotFound.
func (s *store) Update(id int64, in boxscore.GameInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return &PersistenceError{Op: "update", Err: ErrUnavailable}
	}

	args := append(writeArgs(in, boxscore.Derive(in)), id)
	res, err := s.db.Exec(`
		UPDATE games SET
			player = ?, datePlayed = ?, opponent = ?, points = ?,
			twoPointMade = ?, twoPointAttempts = ?, twoPointPercentage = ?,
			threePointMade = ?, threePointAttempts = ?, threePointPercentage = ?,
			freeThrowMade = ?, freeThrowAttempts = ?, freeThrowPercentage = ?,
			rebounds = ?, assists = ?, steals = ?, blocks = ?, turnovers = ?, fouls = ?
		WHERE id = ?`, args...)
	if err != nil {
		log.Error("Failed to update game", "error", err, "id", id)
		return &PersistenceError{Op: "update", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &PersistenceError{Op: "update", Err: err}
	}
	if affected == 0 {
		return ErrNotFound
	}
	log.Info("Game updated", "id", id, "player", in.Player)
	return nil
}

// Delete removes the record with that id. Deleting an id that does not
// exist is not an error.
func (s *store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return &PersistenceError{Op: "delete", Err: ErrUnavailable}
	}

	if _, err := s.db.Exec("DELETE FROM games WHERE id = ?", id); err != nil {
		log.Error("Failed to delete game", "error", err, "id", id)
		return &PersistenceError{Op: "delete", Err: err}
	}
	log.Info("Game deleted", "id", id)
	return nil
}

// DeleteByPlayer removes every game whose player name matches exactly and
// returns how many were removed.
func (s *store) DeleteByPlayer(name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return 0, &PersistenceError{Op: "deleteByPlayer", Err: ErrUnavailable}
	}

	res, err := s.db.Exec("DELETE FROM games WHERE player = ?", name)
	if err != nil {
		log.Error("Failed to delete games for player", "error", err, "player", name)
		return 0, &PersistenceError{Op: "deleteByPlayer", Err: err}
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, &PersistenceError{Op: "deleteByPlayer", Err: err}
	}
	log.Info("Deleted games for player", "player", name, "removed", removed)
	return removed, nil
}

// collectGames drains a result set, logging and skipping rows that fail to
// scan.
func (s *store) collectGames(rows *sql.Rows) []boxscore.GameRecord {
	var games []boxscore.GameRecord
	for rows.Next() {
		rec, err := s.scanGame(rows)
		if err != nil {
			log.Error("Failed to scan game row", "error", err)
			continue
		}
		games = append(games, rec)
	}
	return games
}

// scanGame is a helper to scan a single game row into an independent record
// value.
func (s *store) scanGame(scanner interface{ Scan(...any) error }) (boxscore.GameRecord, error) {
	var rec boxscore.GameRecord
	var datePlayed, twoPct, threePct, ftPct string
	var createdAt sql.NullString

	err := scanner.Scan(
		&rec.ID, &rec.Player, &datePlayed, &rec.Opponent, &rec.BoxScore.Points,
		&rec.BoxScore.TwoPoint.Made, &rec.BoxScore.TwoPoint.Attempts, &twoPct,
		&rec.BoxScore.ThreePoint.Made, &rec.BoxScore.ThreePoint.Attempts, &threePct,
		&rec.BoxScore.FreeThrow.Made, &rec.BoxScore.FreeThrow.Attempts, &ftPct,
		&rec.BoxScore.Rebounds, &rec.BoxScore.Assists, &rec.BoxScore.Steals,
		&rec.BoxScore.Blocks, &rec.BoxScore.Turnovers, &rec.BoxScore.Fouls,
		&createdAt,
	)
	if err != nil {
		return boxscore.GameRecord{}, err
	}

	rec.DatePlayed, err = time.Parse(dateLayout, datePlayed)
	if err != nil {
		return boxscore.GameRecord{}, err
	}
	rec.BoxScore.TwoPoint.Percentage = boxscore.ParsePercentage(twoPct)
	rec.BoxScore.ThreePoint.Percentage = boxscore.ParsePercentage(threePct)
	rec.BoxScore.FreeThrow.Percentage = boxscore.ParsePercentage(ftPct)

	if createdAt.Valid && createdAt.String != "" {
		if ts, err := time.Parse(time.RFC3339, createdAt.String); err == nil {
			rec.CreatedAt = ts
		}
	}
	return rec, nil
}
