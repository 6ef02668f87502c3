package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/videoparty/clips-ms-go/internal/model"
	"github.com/videoparty/clips-ms-go/internal/port"
	"github.com/videoparty/clips-ms-go/internal/usecase/clip"
)

type DeleteClipResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	DeletedClip *model.Clip `json:"deletedClip"`
}

// DeleteClipHandler deletes a clip by ID: stored objects first, then the row.
func DeleteClipHandler(svc port.ClipDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		deleted, err := svc.DeleteClip(r.Context(), id)
		if err != nil {
			if errors.Is(err, clip.ErrClipNotFound) {
				WriteError(w, http.StatusNotFound, "Clip not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to delete clip", err)
			return
		}

		RespondJSON(w, http.StatusOK, DeleteClipResponse{
			Success:     true,
			Message:     "Video deleted successfully!",
			DeletedClip: deleted,
		})
		log.Printf("✅  Successfully deleted clip #%s", id)
	}
}
