package games

import "github.com/statchomper/statchomper/internal/boxscore"

// GameStore defines the interface for the persisted set of game records.
//
// Read methods never return errors: failures are logged and an empty result
// comes back, so the caller degrades to an empty list. Mutating methods
// always surface failures, because the caller needs to know whether the
// record exists.
type GameStore interface {
	SeedIfEmpty(seed []boxscore.GameInput) (int, error)
	GetAll() []boxscore.GameRecord
	GetByPlayer(name string) []boxscore.GameRecord
	GetDistinctPlayers() []string
	Create(in boxscore.GameInput) (int64, error)
	Update(id int64, in boxscore.GameInput) error
	Delete(id int64) error
	DeleteByPlayer(name string) (int64, error)
}
