package port

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
)

// Cache provides caching capabilities for rendered clip payloads.
type Cache interface {
	GetClipDetails(ctx context.Context, id db.UUID) ([]byte, error)
	GetEtagClipDetails(ctx context.Context, id db.UUID) (string, error)
	SetClipDetails(ctx context.Context, id db.UUID, data []byte)
	SetEtagClipDetails(ctx context.Context, id db.UUID, etag string)
	DeleteClipDetails(ctx context.Context, id db.UUID) error
	GetClipList(ctx context.Context) ([]byte, error)
	GetEtagClipList(ctx context.Context) (string, error)
	SetClipList(ctx context.Context, data []byte)
	SetEtagClipList(ctx context.Context, etag string)
	DeleteClipList(ctx context.Context) error
}
