package testutil

import (
	"database/sql"
	"testing"

	"inkwell/internal/db"
	"inkwell/internal/db/sqlc"
	inksql "inkwell/sql"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates a temporary in-memory SQLite database with migrations
// applied. Returns the database connection, the query layer and a cleanup
// function that should be deferred.
func SetupTestDB(t *testing.T) (*sql.DB, *sqlc.Queries, func()) {
	t.Helper()

	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// In-memory DBs need a single connection to avoid per-connection isolation
	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(1)

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := db.ApplyMigrations(database, inksql.MigrationsFS); err != nil {
		database.Close()
		t.Fatalf("failed to apply migrations: %v", err)
	}

	var count int
	err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('users', 'sessions', 'posts', 'images')").Scan(&count)
	if err != nil {
		database.Close()
		t.Fatalf("failed to verify tables: %v", err)
	}
	if count != 4 {
		database.Close()
		t.Fatalf("expected 4 critical tables, found %d", count)
	}

	queries := sqlc.New(database)

	cleanup := func() {
		database.Close()
	}

	return database, queries, cleanup
}
