package janitor

import (
	"context"
	"database/sql"
	"log"
	"time"

	"inkwell/internal/db/sqlc"
	"inkwell/internal/storage"
)

// Janitor handles periodic cleanup of expired sessions and orphaned temp files
type Janitor struct {
	db       *sql.DB
	queries  *sqlc.Queries
	store    *storage.Storage
	interval time.Duration
	stopChan chan struct{}
	doneChan chan struct{}
}

// Config holds janitor configuration
type Config struct {
	DB       *sql.DB
	Storage  *storage.Storage
	Interval time.Duration
}

// New creates a new Janitor instance
func New(cfg Config) *Janitor {
	if cfg.Interval == 0 {
		cfg.Interval = 6 * time.Hour
	}

	return &Janitor{
		db:       cfg.DB,
		queries:  sqlc.New(cfg.DB),
		store:    cfg.Storage,
		interval: cfg.Interval,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start begins the cleanup scheduler in a goroutine
func (j *Janitor) Start(ctx context.Context) {
	go j.run(ctx)
}

// Stop gracefully stops the janitor
func (j *Janitor) Stop() {
	close(j.stopChan)
	<-j.doneChan // wait for cleanup to finish
}

// run is the main loop that runs cleanup tasks
func (j *Janitor) run(ctx context.Context) {
	defer close(j.doneChan)

	// Run cleanup immediately on startup
	j.runCleanup(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.runCleanup(ctx)
		case <-j.stopChan:
			log.Println("Janitor: received stop signal, shutting down...")
			return
		case <-ctx.Done():
			log.Println("Janitor: context cancelled, shutting down...")
			return
		}
	}
}

// runCleanup executes all cleanup tasks
func (j *Janitor) runCleanup(ctx context.Context) {
	log.Println("Janitor: starting cleanup cycle...")
	start := time.Now().UTC()

	j.deleteExpiredSessions(ctx)
	j.cleanupTempFiles()

	log.Printf("Janitor: cleanup cycle completed in %v", time.Since(start))
}

// deleteExpiredSessions removes expired sessions from the database
func (j *Janitor) deleteExpiredSessions(ctx context.Context) {
	deleted, err := j.queries.DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("Janitor: failed to delete expired sessions: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Janitor: deleted %d expired sessions", deleted)
	}
}

// cleanupTempFiles removes crash leftovers from the image area older than 24 hours
func (j *Janitor) cleanupTempFiles() {
	if j.store == nil {
		return
	}
	if err := j.store.CleanOrphanedTempFiles(24 * time.Hour); err != nil {
		log.Printf("Janitor: failed to cleanup temp files: %v", err)
	}
}
