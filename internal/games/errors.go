package games

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Update when no record has the given id.
var ErrNotFound = errors.New("games: record not found")

// ErrUnavailable is the cause recorded when the store was constructed
// without a usable database handle.
var ErrUnavailable = errors.New("games: store unavailable")

// PersistenceError wraps a failed write against the games table. Reads never
// produce it; they degrade to empty results instead.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("games: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
