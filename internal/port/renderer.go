package port

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
)

// HTTPRenderer mediates between HTTP handlers and the read use cases. It
// returns the JSON representation of the result along with an ETag derived
// from it, serving from cache when possible.
type HTTPRenderer interface {
	RenderGetClip(ctx context.Context, getter ClipGetter, id db.UUID) ([]byte, string, error)
	RenderListClips(ctx context.Context, lister ClipLister) ([]byte, string, error)
}
