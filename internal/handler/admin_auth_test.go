package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/testutil"
)

func TestLoginSuccess(t *testing.T) {
	env := setupTestEnv(t)
	testutil.CreateTestUser(t, env.queries, "admin", "correct-horse-battery")

	req := jsonRequest(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "correct-horse-battery",
	})
	rec := env.do(t, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_id" {
			sessionCookie = c
			break
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if sessionCookie.Value == "" {
		t.Error("session cookie should have a value")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}
	if sessionCookie.SameSite != http.SameSiteLaxMode {
		t.Error("session cookie should have SameSite=Lax")
	}

	// The cookie must unlock the admin API
	adminReq := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	adminReq.AddCookie(sessionCookie)
	if rec := env.do(t, adminReq); rec.Code != http.StatusOK {
		t.Errorf("admin request with fresh session = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	testutil.CreateTestUser(t, env.queries, "admin", "correct-horse-battery")

	req := jsonRequest(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "wrong-password",
	})
	rec := env.do(t, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_id" && c.Value != "" {
			t.Error("no session cookie should be issued on failed login")
		}
	}
}

func TestLoginUnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "ghost",
		"password": "anything",
	})
	rec := env.do(t, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestLoginMissingFields(t *testing.T) {
	env := setupTestEnv(t)

	req := jsonRequest(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
	})
	rec := env.do(t, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAdminAPIRequiresSession(t *testing.T) {
	env := setupTestEnv(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/posts"},
		{http.MethodPost, "/api/admin/posts"},
		{http.MethodPost, "/api/admin/images"},
		{http.MethodGet, "/api/admin/stats"},
	}
	for _, p := range paths {
		rec := env.do(t, httptest.NewRequest(p.method, p.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s = %d, want %d", p.method, p.path, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.login(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	req.AddCookie(cookie)
	rec := env.do(t, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	if _, err := env.queries.GetSession(context.Background(), cookie.Value); err == nil {
		t.Error("session should have been deleted on logout")
	}

	// The old cookie no longer grants access
	adminReq := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	adminReq.AddCookie(cookie)
	if rec := env.do(t, adminReq); rec.Code != http.StatusUnauthorized {
		t.Errorf("admin request after logout = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
