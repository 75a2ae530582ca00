package handler

import (
	"log"
	"net/http"
)

type StatsResponse struct {
	PostCount    int64 `json:"postCount"`
	ImageCount   int64 `json:"imageCount"`
	StorageBytes int64 `json:"storageBytes"`
}

// AdminStats summarizes content volume for the admin dashboard.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	postCount, err := h.queries.CountPosts(r.Context())
	if err != nil {
		log.Printf("count posts: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}
	imageCount, err := h.queries.CountImages(r.Context())
	if err != nil {
		log.Printf("count images: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	var storageBytes int64
	total, err := h.queries.GetTotalImageBytes(r.Context())
	if err != nil {
		log.Printf("total image bytes: %v", err)
	} else if v, ok := total.(int64); ok {
		storageBytes = v
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		PostCount:    postCount,
		ImageCount:   imageCount,
		StorageBytes: storageBytes,
	})
}
