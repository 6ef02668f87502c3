package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/videoparty/clips-ms-go/internal/port"
	"github.com/videoparty/clips-ms-go/internal/usecase/clip"
)

func GetClipHandler(renderer port.HTTPRenderer, svc port.ClipGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, etag, err := renderer.RenderGetClip(r.Context(), svc, id)
		if err != nil {
			if errors.Is(err, clip.ErrClipNotFound) {
				WriteError(w, http.StatusNotFound, "Clip not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get clip details", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached clip #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for clip #%s", id)
	}
}
