package port

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/model"
)

type UUIDGen func() db.UUID

// FilenameGen derives a unique server-side filename from the user-supplied one.
type FilenameGen func(originalName string) string

// ClipUploader runs the upload ingestion pipeline for one request.
type ClipUploader interface {
	Upload(ctx context.Context, in UploadInput) (*model.Clip, error)
}
type UploadInput struct {
	OriginalName string
	MimeType     string
	Data         []byte
	Title        string
	Description  string
	Game         string
	Tags         []string
	IsPrivate    bool
}

// ClipGetter retrieves one clip record.
type ClipGetter interface {
	GetClip(ctx context.Context, id db.UUID) (*model.Clip, error)
}

// ClipLister returns every clip, newest first.
type ClipLister interface {
	ListClips(ctx context.Context) ([]*model.Clip, error)
}

// ClipDeleter removes a clip's stored objects and its metadata row.
type ClipDeleter interface {
	DeleteClip(ctx context.Context, id db.UUID) (*model.Clip, error)
}

// URLRepairer rewrites persisted video URLs to the canonical derived form.
type URLRepairer interface {
	RepairURLs(ctx context.Context) (int, error)
}

// ThumbnailRegenerator retries thumbnail extraction for a stored clip.
type ThumbnailRegenerator interface {
	RegenerateThumbnail(ctx context.Context, id db.UUID) error
}
