package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/videoparty/clips-ms-go/internal/port"
	"github.com/videoparty/clips-ms-go/internal/usecase/clip"
)

// GetVideoHandler streams a stored video by filename. Serving goes through
// http.ServeContent over the storage object's seekable reader, so Range
// requests are honoured for real (scrubbing gets 206 slices).
func GetVideoHandler(strg port.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")
		if filename == "" {
			WriteError(w, http.StatusBadRequest, "filename is required", nil)
			return
		}
		key := "videos/" + filename

		info, err := strg.StatFile(r.Context(), key)
		if err != nil {
			if errors.Is(err, clip.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "Video not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not fetch video", err)
			return
		}

		file, err := strg.GetFile(r.Context(), key)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not fetch video", err)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("failed to close reader for %q: %v", key, err)
			}
		}()

		// Permissive CORS so the player can be embedded anywhere.
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD")
		w.Header().Set("Content-Type", info.ContentType)

		http.ServeContent(w, r, filename, info.LastModified, file)
		log.Printf("✅  Served video %q (%d bytes)", filename, info.SizeBytes)
	}
}
