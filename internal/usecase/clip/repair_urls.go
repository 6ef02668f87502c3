package clip

import (
	"log"
	"strings"

	"golang.org/x/net/context"

	"github.com/videoparty/clips-ms-go/internal/port"
)

type urlRepairerSrv struct {
	repo    port.ClipRepository
	cache   port.Cache
	baseURL string
}

// NewURLRepairer constructs the maintenance use case that rewrites every
// clip's video_url to the canonical form derived from the configured base URL.
// Needed for rows persisted under an older PUBLIC_BASE_URL.
func NewURLRepairer(repo port.ClipRepository, cache port.Cache, baseURL string) port.URLRepairer {
	return &urlRepairerSrv{repo: repo, cache: cache, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *urlRepairerSrv) RepairURLs(ctx context.Context) (int, error) {
	clips, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, c := range clips {
		canonical := s.baseURL + "/api/video/" + c.Filename
		if c.VideoURL == canonical {
			continue
		}
		if err := s.repo.UpdateVideoURL(ctx, c.ID, canonical); err != nil {
			return updated, err
		}
		if err := s.cache.DeleteClipDetails(ctx, c.ID); err != nil {
			log.Printf("failed deleting cache for clip #%s: %v", c.ID, err)
		}
		updated++
	}

	if updated > 0 {
		if err := s.cache.DeleteClipList(ctx); err != nil {
			log.Printf("failed deleting clip list cache: %v", err)
		}
	}

	log.Printf("repaired video_url on %d of %d clips", updated, len(clips))
	return updated, nil
}
