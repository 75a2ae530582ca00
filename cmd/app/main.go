package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/db/sqlc"
	"inkwell/internal/handler"
	"inkwell/internal/janitor"
	"inkwell/internal/security"
	"inkwell/internal/storage"
)

func main() {
	cfg := config.Load()

	database, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := seedAdminUser(context.Background(), database, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	h := handler.New(database, store, cfg)
	h.RegisterRoutes(r)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	j := janitor.New(janitor.Config{DB: database, Storage: store})
	j.Start(ctx)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	case sig := <-sigChan:
		log.Printf("Received %v, shutting down...", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}

	cancel()
	j.Stop()
	log.Println("Shutdown complete")
}

// seedAdminUser creates the configured admin account on first run.
func seedAdminUser(ctx context.Context, database *sql.DB, cfg *config.Config) error {
	queries := sqlc.New(database)

	count, err := queries.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set; no admin user seeded, admin API is unreachable")
		return nil
	}

	hash, err := security.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	if _, err := queries.CreateUser(ctx, sqlc.CreateUserParams{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
	}); err != nil {
		return err
	}

	log.Printf("Seeded admin user %q", cfg.AdminUsername)
	return nil
}
