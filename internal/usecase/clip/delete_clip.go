package clip

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/model"
	"github.com/videoparty/clips-ms-go/internal/port"
)

type deleterSrv struct {
	repo  port.ClipRepository
	cache port.Cache
	strg  port.Storage
}

// NewClipDeleter constructs a ClipDeleter implementation.
func NewClipDeleter(repo port.ClipRepository, cache port.Cache, strg port.Storage) port.ClipDeleter {
	return &deleterSrv{repo: repo, cache: cache, strg: strg}
}

// DeleteClip removes the stored video and thumbnail, deletes the DB record and
// clears caches. A missing object is tolerated: the row is the source of truth
// and readers already treat the object-absent window as not-found.
func (s *deleterSrv) DeleteClip(ctx context.Context, id db.UUID) (*model.Clip, error) {
	clip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.strg.RemoveFile(ctx, clip.StorageKey); err != nil && !errors.Is(err, ErrObjectNotFound) {
		return nil, fmt.Errorf("remove video %q: %w", clip.StorageKey, err)
	}

	if clip.ThumbnailKey != nil {
		if err := s.strg.RemoveFile(ctx, *clip.ThumbnailKey); err != nil && !errors.Is(err, ErrObjectNotFound) {
			log.Printf("failed to remove thumbnail %q: %v", *clip.ThumbnailKey, err)
		}
	}

	if err := s.repo.Delete(ctx, clip.ID); err != nil {
		return nil, err
	}

	if err := s.cache.DeleteClipDetails(ctx, clip.ID); err != nil {
		log.Printf("failed deleting cache for clip #%s: %v", clip.ID, err)
	}
	if err := s.cache.DeleteClipList(ctx); err != nil {
		log.Printf("failed deleting clip list cache: %v", err)
	}

	return clip, nil
}
