package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"inkwell/internal/db/sqlc"
	"inkwell/internal/middleware"
	"inkwell/internal/security"
)

const sessionDuration = 24 * time.Hour

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a session cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Username == "" || in.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.queries.GetUserByUsername(r.Context(), in.Username)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("login lookup for %q: %v", in.Username, err)
		}
		log.Printf("Failed login attempt for %q from %s", in.Username, r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if !security.VerifyPassword(user.PasswordHash, in.Password) {
		log.Printf("Failed login attempt for %q from %s", in.Username, r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	sessionID, err := security.GenerateSecureToken()
	if err != nil {
		log.Printf("generate session token: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	expiresAt := time.Now().UTC().Add(sessionDuration)
	if _, err := h.queries.CreateSession(r.Context(), sqlc.CreateSessionParams{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		log.Printf("create session: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies(r),
		SameSite: http.SameSiteLaxMode,
	})

	log.Printf("Successful login for %q from %s", in.Username, r.RemoteAddr)
	writeJSON(w, http.StatusOK, map[string]string{"username": user.Username})
}

// Logout deletes the current session and clears the cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.queries.DeleteSession(r.Context(), cookie.Value); err != nil {
			log.Printf("delete session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies(r),
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}
