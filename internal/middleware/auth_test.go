package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/internal/testutil"
)

func protectedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
}

func TestRequireAuthValidSession(t *testing.T) {
	database, queries, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	user := testutil.CreateTestUser(t, queries, "admin", "test-password-123")
	token := testutil.CreateTestSession(t, queries, user.ID)

	handler := RequireAuth(database)(protectedHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireAuthMissingCookie(t *testing.T) {
	database, _, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	handler := RequireAuth(database)(protectedHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("body %q should contain an error field", rec.Body.String())
	}
}

func TestRequireAuthUnknownSession(t *testing.T) {
	database, _, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	handler := RequireAuth(database)(protectedHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "no-such-session"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthExpiredSessionDeleted(t *testing.T) {
	database, queries, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	user := testutil.CreateTestUser(t, queries, "admin", "test-password-123")
	token := testutil.CreateExpiredSession(t, queries, user.ID)

	handler := RequireAuth(database)(protectedHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	// The expired row should be gone
	if _, err := queries.GetSession(context.Background(), token); err == nil {
		t.Error("expired session should have been deleted")
	}
}
