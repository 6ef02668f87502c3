package api

import (
	"log"
	"net/http"

	"github.com/videoparty/clips-ms-go/internal/port"
)

func ListClipsHandler(renderer port.HTTPRenderer, svc port.ClipLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, etag, err := renderer.RenderListClips(r.Context(), svc)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list clips", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Print("✅  Returning cached clip list")
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Print("✅  Successfully returned the clip list")
	}
}
