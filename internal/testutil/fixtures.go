package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"inkwell/internal/db/sqlc"
	"inkwell/internal/security"
)

// CreateTestUser inserts a user with the given credentials and returns it.
func CreateTestUser(t *testing.T, q *sqlc.Queries, username, password string) sqlc.User {
	t.Helper()

	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := q.CreateUser(context.Background(), sqlc.CreateUserParams{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

// CreateTestSession inserts a session for userID expiring in 24 hours and
// returns its token.
func CreateTestSession(t *testing.T, q *sqlc.Queries, userID int64) string {
	t.Helper()

	token, err := security.GenerateSecureToken()
	if err != nil {
		t.Fatalf("generate session token: %v", err)
	}
	_, err = q.CreateSession(context.Background(), sqlc.CreateSessionParams{
		ID:        token,
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create test session: %v", err)
	}
	return token
}

// CreateExpiredSession inserts a session that expired an hour ago.
func CreateExpiredSession(t *testing.T, q *sqlc.Queries, userID int64) string {
	t.Helper()

	token, err := security.GenerateSecureToken()
	if err != nil {
		t.Fatalf("generate session token: %v", err)
	}
	_, err = q.CreateSession(context.Background(), sqlc.CreateSessionParams{
		ID:        token,
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("create expired session: %v", err)
	}
	return token
}

// CreateTestPost inserts a post, optionally published.
func CreateTestPost(t *testing.T, database *sql.DB, q *sqlc.Queries, title, slugVal string, published bool) sqlc.Post {
	t.Helper()

	post, err := q.CreatePost(context.Background(), sqlc.CreatePostParams{
		Title:   title,
		Slug:    slugVal,
		Content: "content for " + title,
	})
	if err != nil {
		t.Fatalf("create test post: %v", err)
	}
	if published {
		now := time.Now().UTC()
		post, err = q.PublishPost(context.Background(), sqlc.PublishPostParams{
			PublishedAt: sql.NullTime{Time: now, Valid: true},
			UpdatedAt:   now,
			ID:          post.ID,
		})
		if err != nil {
			t.Fatalf("publish test post: %v", err)
		}
	}
	return post
}
