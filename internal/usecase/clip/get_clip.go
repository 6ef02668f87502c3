package clip

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/model"
	"github.com/videoparty/clips-ms-go/internal/port"
)

type clipGetterSrv struct {
	repo port.ClipRepository
}

func NewClipGetter(repo port.ClipRepository) port.ClipGetter {
	return &clipGetterSrv{repo: repo}
}

func (s *clipGetterSrv) GetClip(ctx context.Context, id db.UUID) (*model.Clip, error) {
	return s.repo.GetByID(ctx, id)
}
