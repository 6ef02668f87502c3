package port

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
)

// TaskDispatcher enqueues background jobs.
type TaskDispatcher interface {
	EnqueueRegenerateThumbnail(ctx context.Context, id db.UUID) error
}
