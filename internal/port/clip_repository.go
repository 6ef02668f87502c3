package port

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/model"
)

// ClipRepository defines persistence operations for clips.
type ClipRepository interface {
	Create(ctx context.Context, clip *model.Clip) error
	GetByID(ctx context.Context, ID db.UUID) (*model.Clip, error)
	// List returns every clip, newest first by uploaded_at.
	List(ctx context.Context) ([]*model.Clip, error)
	Update(ctx context.Context, clip *model.Clip) error
	UpdateVideoURL(ctx context.Context, ID db.UUID, videoURL string) error
	Delete(ctx context.Context, ID db.UUID) error
}
