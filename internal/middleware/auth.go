package middleware

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"inkwell/internal/db/sqlc"
)

const SessionCookieName = "session_id"

// RequireAuth guards the admin API with the session cookie. Missing or
// expired sessions get a JSON 401; expired rows are removed on sight.
func RequireAuth(database *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			q := sqlc.New(database)
			session, err := q.GetSession(r.Context(), cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			if time.Now().UTC().After(session.ExpiresAt) {
				q.DeleteSession(r.Context(), cookie.Value)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
}
