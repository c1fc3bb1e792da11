package games

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the games table.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// dateLayout is the unambiguous calendar form games are stored under.
const dateLayout = "2006-01-02"
