package worker

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/port"
	"github.com/videoparty/clips-ms-go/internal/task"
)

// RegenerateThumbnailHandler handles a regenerate-thumbnail task.
// It converts the incoming task payload to the input expected by
// the ThumbnailRegenerator service and delegates the call.
func RegenerateThumbnailHandler(ctx context.Context, p task.RegenerateThumbnailPayload, svc port.ThumbnailRegenerator) error {
	id, err := uuid.Parse(p.ClipID)
	if err != nil {
		log.Printf("❌  Invalid clip ID %q: %v", p.ClipID, err)
		return err
	}

	if err := svc.RegenerateThumbnail(ctx, db.UUID(id)); err != nil {
		log.Printf("❌  Failed to regenerate thumbnail for clip #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully regenerated thumbnail for clip #%s", id)
	return nil
}
