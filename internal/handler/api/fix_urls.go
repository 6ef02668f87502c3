package api

import (
	"log"
	"net/http"

	"github.com/videoparty/clips-ms-go/internal/port"
)

type FixURLsResponse struct {
	Success bool `json:"success"`
	Updated int  `json:"updated"`
}

// FixURLsHandler is the maintenance endpoint that rewrites every clip's
// video_url to the canonical form derived from the configured base URL.
func FixURLsHandler(svc port.URLRepairer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, err := svc.RepairURLs(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to fix video URLs", err)
			return
		}

		RespondJSON(w, http.StatusOK, FixURLsResponse{Success: true, Updated: updated})
		log.Printf("✅  Rewrote video_url on %d clips", updated)
	}
}
