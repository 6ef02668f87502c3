package api

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/videoparty/clips-ms-go/internal/port"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Storage   string    `json:"storage"`
	Database  string    `json:"database"`
}

// HealthHandler is the liveness probe: it pings the metadata store and the
// object-store bucket and reports each one separately.
func HealthHandler(database *sql.DB, strg port.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, storageStatus, dbStatus := "ok", "ok", "ok"

		if err := database.PingContext(r.Context()); err != nil {
			log.Printf("health: database ping failed: %v", err)
			dbStatus, status = "error", "degraded"
		}
		if err := strg.Ping(r.Context()); err != nil {
			log.Printf("health: storage ping failed: %v", err)
			storageStatus, status = "error", "degraded"
		}

		RespondJSON(w, http.StatusOK, HealthResponse{
			Status:    status,
			Timestamp: time.Now().UTC(),
			Storage:   storageStatus,
			Database:  dbStatus,
		})
	}
}
