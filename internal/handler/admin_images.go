package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/db/sqlc"
)

type ImageView struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	Dimensions   string    `json:"dimensions"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (h *Handler) AdminListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.queries.ListImages(r.Context())
	if err != nil {
		log.Printf("list images: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load images")
		return
	}
	views := make([]ImageView, 0, len(images))
	for _, img := range images {
		views = append(views, h.imageView(img))
	}
	writeJSON(w, http.StatusOK, views)
}

// AdminDeleteImage removes the registry row first, then the file. A file left
// behind after a failed remove is picked up by nothing and is harmless; a
// dangling registry row would 404 on every serve.
func (h *Handler) AdminDeleteImage(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if filename == "" || filename != filepath.Base(filename) {
		writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}

	if _, err := h.queries.GetImageByFilename(r.Context(), filename); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "image not found")
			return
		}
		log.Printf("lookup image %q: %v", filename, err)
		writeError(w, http.StatusInternalServerError, "failed to delete image")
		return
	}

	if err := h.queries.DeleteImage(r.Context(), filename); err != nil {
		log.Printf("delete image row %q: %v", filename, err)
		writeError(w, http.StatusInternalServerError, "failed to delete image")
		return
	}
	if err := h.storage.Remove(filename); err != nil {
		log.Printf("delete image file %q: %v", filename, err)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) imageView(img sqlc.Image) ImageView {
	return ImageView{
		Filename:     img.Filename,
		OriginalName: img.OriginalName,
		Size:         img.SizeBytes,
		Dimensions:   fmt.Sprintf("%dx%d", img.Width, img.Height),
		URL:          h.config.PublicBaseURL + "/images/" + img.Filename,
		CreatedAt:    img.CreatedAt,
	}
}
