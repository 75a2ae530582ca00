package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/testutil"
)

type adminPost struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Content     string  `json:"content"`
	Published   bool    `json:"published"`
	PublishedAt *string `json:"publishedAt"`
}

func TestAdminCreatePost(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.login(t)

	req := jsonRequest(t, http.MethodPost, "/api/admin/posts", map[string]string{
		"title":   "My First Post!",
		"content": "Some markdown here.",
	})
	req.AddCookie(cookie)
	rec := env.do(t, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var post adminPost
	decodeJSON(t, rec, &post)

	if post.Slug != "my-first-post" {
		t.Errorf("slug = %q, want %q", post.Slug, "my-first-post")
	}
	if post.Published {
		t.Error("new posts should start as drafts")
	}
	if post.PublishedAt != nil {
		t.Error("draft should have no publishedAt")
	}
}

func TestAdminCreatePostDuplicateTitleGetsSuffixedSlug(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.login(t)

	slugs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		req := jsonRequest(t, http.MethodPost, "/api/admin/posts", map[string]string{
			"title":   "Same Title",
			"content": "body",
		})
		req.AddCookie(cookie)
		rec := env.do(t, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %d: status = %d, want %d", i, rec.Code, http.StatusCreated)
		}
		var post adminPost
		decodeJSON(t, rec, &post)
		slugs = append(slugs, post.Slug)
	}

	want := []string{"same-title", "same-title-2", "same-title-3"}
	for i, s := range slugs {
		if s != want[i] {
			t.Errorf("slug[%d] = %q, want %q", i, s, want[i])
		}
	}
}

func TestAdminCreatePostEmptyTitle(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.login(t)

	req := jsonRequest(t, http.MethodPost, "/api/admin/posts", map[string]string{
		"title":   "   ",
		"content": "body",
	})
	req.AddCookie(cookie)
	rec := env.do(t, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAdminListPostsIncludesDrafts(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.login(t)

	testutil.CreateTestPost(t, env.db, env.queries, "Published", "published", true)
	testutil.CreateTestPost(t, env.db, env.queries, "Draft", "draft", false)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	req.AddCookie(cookie)
	rec := env.do(t, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var posts []adminPost
	decodeJSON(t, rec, &posts)
	if len(posts) != 2 {
		t.Errorf("got %d posts, want 2", len(posts))
	}
}

func TestAdminUpdatePost(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.login(t)

	post := testutil.CreateTestPost(t, env.db, env.queries, "Before", "before", false)

	req := jsonRequest(t, http.MethodPut, fmt.Sprintf("/api/admin/posts/%d", post.ID), map[string]string{
		"title":   "After",
		"content": "updated body",
	})
	req.AddCookie(cookie)
	rec := env.do(t, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var updated adminPost
	decodeJSON(t, rec, &updated)
	if updated.Title != "After" {
		t.Errorf("title = %q, want %q", updated.Title, "After")
	}
	if updated.Content != "updated body" {
		t.Errorf("content = %q, want %q", updated.Content, "updated body")
	}
	// Editing does not touch the slug
	if updated.Slug != "before" {
		t.Errorf("slug = %q, want %q", updated.Slug, "before")
	}
}

func TestAdminPublishLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.login(t)

	post := testutil.CreateTestPost(t, env.db, env.queries, "Lifecycle", "lifecycle", false)

	// Draft is invisible publicly
	if rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/posts/lifecycle", nil)); rec.Code != http.StatusNotFound {
		t.Fatalf("draft public fetch = %d, want %d", rec.Code, http.StatusNotFound)
	}

	// Publish
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/admin/posts/%d/publish", post.ID), nil)
	req.AddCookie(cookie)
	rec := env.do(t, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("publish = %d, want %d", rec.Code, http.StatusOK)
	}
	var published adminPost
	decodeJSON(t, rec, &published)
	if !published.Published {
		t.Error("post should be marked published")
	}
	if published.PublishedAt == nil {
		t.Error("publish should set publishedAt")
	}

	// Now visible publicly
	if rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/posts/lifecycle", nil)); rec.Code != http.StatusOK {
		t.Errorf("published public fetch = %d, want %d", rec.Code, http.StatusOK)
	}

	// Unpublish hides it again
	req = httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/admin/posts/%d/unpublish", post.ID), nil)
	req.AddCookie(cookie)
	rec = env.do(t, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("unpublish = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/posts/lifecycle", nil)); rec.Code != http.StatusNotFound {
		t.Errorf("unpublished public fetch = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestAdminDeletePost(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.login(t)

	post := testutil.CreateTestPost(t, env.db, env.queries, "Doomed", "doomed", true)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/admin/posts/%d", post.ID), nil)
	req.AddCookie(cookie)
	rec := env.do(t, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete = %d, want %d", rec.Code, http.StatusNoContent)
	}

	// Second delete finds nothing
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/admin/posts/%d", post.ID), nil)
	req.AddCookie(cookie)
	rec = env.do(t, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("repeat delete = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestAdminGetPostInvalidID(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.login(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts/not-a-number", nil)
	req.AddCookie(cookie)
	rec := env.do(t, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
