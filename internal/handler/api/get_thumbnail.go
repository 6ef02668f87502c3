package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/videoparty/clips-ms-go/internal/port"
	"github.com/videoparty/clips-ms-go/internal/usecase/clip"
)

// GetThumbnailHandler streams a stored thumbnail by filename. Thumbnails are
// immutable once written, hence the year-long cache.
func GetThumbnailHandler(strg port.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")
		if filename == "" {
			WriteError(w, http.StatusBadRequest, "filename is required", nil)
			return
		}
		key := "thumbnails/" + filename

		info, err := strg.StatFile(r.Context(), key)
		if err != nil {
			if errors.Is(err, clip.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "Thumbnail not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not fetch thumbnail", err)
			return
		}

		file, err := strg.GetFile(r.Context(), key)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not fetch thumbnail", err)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("failed to close reader for %q: %v", key, err)
			}
		}()

		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", info.ContentType)
		w.Header().Set("Cache-Control", "public, max-age=31536000")

		http.ServeContent(w, r, filename, info.LastModified, file)
		log.Printf("✅  Served thumbnail %q", filename)
	}
}
