package clip

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/port"
)

type thumbnailRegeneratorSrv struct {
	repo    port.ClipRepository
	strg    port.Storage
	thumb   port.Thumbnailer
	cache   port.Cache
	baseURL string
}

// NewThumbnailRegenerator constructs the background use case that retries
// frame extraction for a clip whose upload-time thumbnail attempt failed.
func NewThumbnailRegenerator(
	repo port.ClipRepository,
	strg port.Storage,
	thumb port.Thumbnailer,
	cache port.Cache,
	baseURL string,
) port.ThumbnailRegenerator {
	return &thumbnailRegeneratorSrv{repo: repo, strg: strg, thumb: thumb, cache: cache, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *thumbnailRegeneratorSrv) RegenerateThumbnail(ctx context.Context, id db.UUID) error {
	clip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if clip.ThumbnailKey != nil {
		// Someone beat us to it; nothing to do.
		return nil
	}

	file, err := s.strg.GetFile(ctx, clip.StorageKey)
	if err != nil {
		return fmt.Errorf("fetch video %q: %w", clip.StorageKey, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close reader for %q: %v", clip.StorageKey, err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read video %q: %w", clip.StorageKey, err)
	}

	key, err := s.thumb.Generate(ctx, data, clip.Filename)
	if err != nil {
		return err
	}

	url := s.baseURL + "/api/thumbnail/" + path.Base(key)
	clip.ThumbnailKey = &key
	clip.ThumbnailURL = &url
	if err := s.repo.Update(ctx, clip); err != nil {
		return fmt.Errorf("update clip #%s: %w", clip.ID, err)
	}

	if err := s.cache.DeleteClipDetails(ctx, clip.ID); err != nil {
		log.Printf("failed deleting cache for clip #%s: %v", clip.ID, err)
	}
	if err := s.cache.DeleteClipList(ctx); err != nil {
		log.Printf("failed deleting clip list cache: %v", err)
	}

	return nil
}
