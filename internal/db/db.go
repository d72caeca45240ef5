// Package db opens and migrates the task store. Two drivers are supported:
// sqlite (the default, pure Go) and postgres.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Connect opens the database for the given driver and verifies the
// connection. dsn is a file path for sqlite or a lib/pq conn string
// for postgres.
func Connect(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case "postgres":
		return connectPostgres(dsn)
	case "sqlite":
		return connectSQLite(dsn)
	default:
		return nil, fmt.Errorf("unknown db driver %q", driver)
	}
}

func connectPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func connectSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	// single writer connection; also keeps :memory: databases coherent
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
