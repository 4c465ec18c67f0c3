package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

// MustOpen connects to Postgres and verifies the connection with a ping.
// It is called once at boot; a bad DSN is fatal.
func MustOpen(dsn string) *sql.DB {
	database, err := openDB(dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return database
}

func openDB(dsn string) (*sql.DB, error) {
	database, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return database, nil
}
