package clip

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/model"
	"github.com/videoparty/clips-ms-go/internal/port"
)

type clipListerSrv struct {
	repo port.ClipRepository
}

func NewClipLister(repo port.ClipRepository) port.ClipLister {
	return &clipListerSrv{repo: repo}
}

// ListClips returns every clip, newest first. Ordering is owned by the
// repository query.
func (s *clipListerSrv) ListClips(ctx context.Context) ([]*model.Clip, error) {
	clips, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if clips == nil {
		clips = []*model.Clip{}
	}
	return clips, nil
}
