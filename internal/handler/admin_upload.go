package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"inkwell/internal/db/sqlc"
	"inkwell/internal/pipeline"
)

// multipart envelope overhead allowed on top of the payload cap
const uploadBodySlack = 1 << 20

// UploadResponse is the shape API consumers depend on.
type UploadResponse struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Dimensions   string `json:"dimensions"`
}

// AdminUploadImage accepts a single multipart file field named "image",
// runs it through the ingestion pipeline and records the stored image.
func (h *Handler) AdminUploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, pipeline.MaxUploadBytes+uploadBodySlack)

	file, header, err := r.FormFile("image")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "image is too large")
			return
		}
		writeError(w, http.StatusBadRequest, "no image file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("read upload %q: %v", header.Filename, err)
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = mediaTypeFromExtension(header.Filename)
	}

	result, err := pipeline.Ingest(r.Context(), h.storage, pipeline.UploadRequest{
		Data:             data,
		OriginalFilename: header.Filename,
		MediaType:        mediaType,
	})
	if err != nil {
		status, message := uploadFailure(err)
		log.Printf("ingest %q: %v", header.Filename, err)
		writeError(w, status, message)
		return
	}

	if _, err := h.queries.CreateImage(r.Context(), sqlc.CreateImageParams{
		Filename:     result.StoredFilename,
		OriginalName: result.OriginalFilename,
		SizeBytes:    result.ByteSize,
		Width:        int64(result.Width),
		Height:       int64(result.Height),
	}); err != nil {
		// keep storage and the registry consistent
		_ = h.storage.Remove(result.StoredFilename)
		log.Printf("record image %q: %v", result.StoredFilename, err)
		writeError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	writeJSON(w, http.StatusCreated, UploadResponse{
		URL:          h.config.PublicBaseURL + "/images/" + result.StoredFilename,
		Filename:     result.StoredFilename,
		OriginalName: result.OriginalFilename,
		Size:         result.ByteSize,
		Dimensions:   fmt.Sprintf("%dx%d", result.Width, result.Height),
	})
}

// uploadFailure maps pipeline sentinels to a status code and the generic
// message returned to the client.
func uploadFailure(err error) (int, string) {
	switch {
	case errors.Is(err, pipeline.ErrNotAnImage):
		return http.StatusBadRequest, "uploaded file is not an image"
	case errors.Is(err, pipeline.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, "image is too large"
	case errors.Is(err, pipeline.ErrUnsupportedFormat):
		return http.StatusBadRequest, "unsupported image format"
	case errors.Is(err, pipeline.ErrCorruptImage):
		return http.StatusBadRequest, "image could not be decoded"
	case errors.Is(err, pipeline.ErrInvalidDimensions):
		return http.StatusBadRequest, "image dimensions out of range"
	default:
		return http.StatusInternalServerError, "failed to process image"
	}
}

func mediaTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".avif":
		return "image/avif"
	default:
		return "application/octet-stream"
	}
}
