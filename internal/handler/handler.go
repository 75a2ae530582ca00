// Package handler exposes the public read API, the admin API and image
// serving over a chi router.
package handler

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	"inkwell/internal/config"
	"inkwell/internal/db/sqlc"
	"inkwell/internal/storage"
)

type Handler struct {
	db      *sql.DB
	queries *sqlc.Queries
	storage *storage.Storage
	config  *config.Config
}

func New(database *sql.DB, store *storage.Storage, cfg *config.Config) *Handler {
	return &Handler{
		db:      database,
		queries: sqlc.New(database),
		storage: store,
		config:  cfg,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json response: %v", err)
	}
}

// writeError sends the generic client-facing failure shape. Detailed causes
// are logged at the call site, never returned to the client.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) secureCookies(r *http.Request) bool {
	return r.TLS != nil
}
