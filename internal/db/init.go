// Package db handles PostgreSQL connection setup and schema migrations.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// InitPostgres opens a PostgreSQL connection for the given DSN and verifies
// it with a ping. The schema itself is applied by RunMigrations.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
