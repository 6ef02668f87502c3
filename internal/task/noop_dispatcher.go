package task

import (
	"context"
	"log"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/port"
)

// NoopDispatcher is used when Redis is not configured; tasks are dropped.
type NoopDispatcher struct{}

// compile-time check
var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueRegenerateThumbnail(ctx context.Context, id db.UUID) error {
	log.Printf("no task queue configured, dropping thumbnail regeneration for clip #%s", id)
	return nil
}
