package database

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pressly/goose/v3"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// InitError means the underlying storage could not be opened or the schema
// could not be created. It is non-fatal: callers are expected to continue
// with a degraded store (empty reads, failing writes) rather than crash.
type InitError struct {
	Path string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("database init %s: %v", e.Path, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// InitDB opens the database and brings the schema up to date. It is safe to
// call repeatedly; migrations already applied are skipped and existing data
// is untouched.
//
// For local-only databases, dbPath is the filename. When primaryUrl is set,
// the remote Turso database is opened instead and dbPath is ignored.
func InitDB(dbPath string, primaryUrl string, authToken string, migrationsDir string) (*sql.DB, func(), error) {
	var db *sql.DB
	var err error
	if primaryUrl == "" {
		log.Info("Initializing local-only SQLite database", "path", dbPath)
		db, err = sql.Open("libsql", "file:"+dbPath)
	} else {
		log.Info("Initializing Turso database", "url", primaryUrl)
		db, err = sql.Open("libsql", primaryUrl+"?authToken="+authToken)
	}
	if err != nil {
		return nil, nil, &InitError{Path: dbPath, Err: err}
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, nil, &InitError{Path: dbPath, Err: err}
	}

	if err = migrate(db, migrationsDir); err != nil {
		db.Close()
		return nil, nil, &InitError{Path: dbPath, Err: err}
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	return db, teardown, nil
}

func migrate(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Database initialized successfully")
	return nil
}
