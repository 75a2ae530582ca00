package handler

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/db/sqlc"
)

const excerptRunes = 200

// PostSummary is the public list shape: no full content, just enough to
// render an index page.
type PostSummary struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type PostDetail struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func (h *Handler) ListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListPublishedPosts(r.Context())
	if err != nil {
		log.Printf("list published posts: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load posts")
		return
	}

	summaries := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, PostSummary{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Excerpt:     excerpt(p.Content),
			PublishedAt: nullableTime(p.PublishedAt),
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *Handler) GetPublishedPost(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	post, err := h.queries.GetPublishedPostBySlug(r.Context(), slugParam)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		log.Printf("get post %q: %v", slugParam, err)
		writeError(w, http.StatusInternalServerError, "failed to load post")
		return
	}

	writeJSON(w, http.StatusOK, PostDetail{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Content:     post.Content,
		PublishedAt: nullableTime(post.PublishedAt),
	})
}

func excerpt(content string) string {
	if utf8.RuneCountInString(content) <= excerptRunes {
		return content
	}
	runes := []rune(content)
	return string(runes[:excerptRunes]) + "…"
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	utc := t.Time.UTC()
	return &utc
}

func adminPostView(p sqlc.Post) map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"title":       p.Title,
		"slug":        p.Slug,
		"content":     p.Content,
		"published":   p.Published,
		"createdAt":   p.CreatedAt.UTC(),
		"updatedAt":   p.UpdatedAt.UTC(),
		"publishedAt": nullableTime(p.PublishedAt),
	}
}
