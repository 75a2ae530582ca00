package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/db/sqlc"
	"inkwell/internal/slug"
)

type postInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) AdminListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListPosts(r.Context())
	if err != nil {
		log.Printf("admin list posts: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load posts")
		return
	}
	views := make([]map[string]interface{}, 0, len(posts))
	for _, p := range posts {
		views = append(views, adminPostView(p))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) AdminCreatePost(w http.ResponseWriter, r *http.Request) {
	var in postInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	slugVal, err := h.uniqueSlug(r, in.Title)
	if err != nil {
		log.Printf("allocate slug for %q: %v", in.Title, err)
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	post, err := h.queries.CreatePost(r.Context(), sqlc.CreatePostParams{
		Title:   in.Title,
		Slug:    slugVal,
		Content: in.Content,
	})
	if err != nil {
		log.Printf("create post: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	writeJSON(w, http.StatusCreated, adminPostView(post))
}

func (h *Handler) AdminGetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	post, err := h.queries.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		log.Printf("admin get post %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load post")
		return
	}
	writeJSON(w, http.StatusOK, adminPostView(post))
}

func (h *Handler) AdminUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	var in postInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	post, err := h.queries.UpdatePost(r.Context(), sqlc.UpdatePostParams{
		Title:     in.Title,
		Content:   in.Content,
		UpdatedAt: time.Now().UTC(),
		ID:        id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		log.Printf("update post %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to update post")
		return
	}
	writeJSON(w, http.StatusOK, adminPostView(post))
}

func (h *Handler) AdminPublishPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	now := time.Now().UTC()
	post, err := h.queries.PublishPost(r.Context(), sqlc.PublishPostParams{
		PublishedAt: sql.NullTime{Time: now, Valid: true},
		UpdatedAt:   now,
		ID:          id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		log.Printf("publish post %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to publish post")
		return
	}
	writeJSON(w, http.StatusOK, adminPostView(post))
}

func (h *Handler) AdminUnpublishPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	post, err := h.queries.UnpublishPost(r.Context(), sqlc.UnpublishPostParams{
		UpdatedAt: time.Now().UTC(),
		ID:        id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		log.Printf("unpublish post %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to unpublish post")
		return
	}
	writeJSON(w, http.StatusOK, adminPostView(post))
}

func (h *Handler) AdminDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	affected, err := h.queries.DeletePost(r.Context(), id)
	if err != nil {
		log.Printf("delete post %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to delete post")
		return
	}
	if affected == 0 {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// uniqueSlug derives a slug from the title and suffixes -2, -3, ... until it
// is free. Good enough for a single-admin CMS; the UNIQUE constraint backs
// it up if two creations ever race.
func (h *Handler) uniqueSlug(r *http.Request, title string) (string, error) {
	base := slug.Make(title)
	candidate := base
	for i := 2; ; i++ {
		count, err := h.queries.PostSlugExists(r.Context(), candidate)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return 0, false
	}
	return id, true
}
