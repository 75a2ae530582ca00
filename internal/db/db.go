package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	inksql "inkwell/sql"
)

// Init opens the SQLite database at path and brings the schema up to date.
func Init(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := database.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		database.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := ApplyMigrations(database, inksql.MigrationsFS); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}
