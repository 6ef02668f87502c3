package clip

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/videoparty/clips-ms-go/internal/model"
	"github.com/videoparty/clips-ms-go/internal/port"
)

type uploaderSrv struct {
	repo        port.ClipRepository
	strg        port.Storage
	thumb       port.Thumbnailer
	dispatcher  port.TaskDispatcher
	cache       port.Cache
	genID       port.UUIDGen
	genFilename port.FilenameGen
	baseURL     string
	now         func() time.Time
}

// NewUploader constructs the upload pipeline: object-store write, thumbnail
// attempt, metadata commit, compensating delete on metadata failure.
func NewUploader(
	repo port.ClipRepository,
	strg port.Storage,
	thumb port.Thumbnailer,
	dispatcher port.TaskDispatcher,
	cache port.Cache,
	genID port.UUIDGen,
	genFilename port.FilenameGen,
	baseURL string,
) port.ClipUploader {
	return &uploaderSrv{
		repo:        repo,
		strg:        strg,
		thumb:       thumb,
		dispatcher:  dispatcher,
		cache:       cache,
		genID:       genID,
		genFilename: genFilename,
		baseURL:     strings.TrimRight(baseURL, "/"),
		now:         time.Now,
	}
}

func (s *uploaderSrv) Upload(ctx context.Context, in port.UploadInput) (*model.Clip, error) {
	// Preconditions run before any side effect.
	if !strings.HasPrefix(in.MimeType, "video/") {
		return nil, ErrNotAVideo
	}

	filename := s.genFilename(in.OriginalName)
	videoKey := "videos/" + filename

	if err := s.strg.SaveFile(ctx, videoKey, bytes.NewReader(in.Data), int64(len(in.Data)), map[string]string{
		"Content-Type": in.MimeType,
	}); err != nil {
		// Nothing was written; clean failure, no compensation needed.
		return nil, fmt.Errorf("store video %q: %w", videoKey, err)
	}

	// Thumbnail failure must never fail the upload.
	var thumbKey, thumbURL *string
	key, thumbErr := s.thumb.Generate(ctx, in.Data, filename)
	if thumbErr != nil {
		log.Printf("thumbnail generation failed for %q, continuing without one: %v", filename, thumbErr)
	} else {
		url := s.baseURL + "/api/thumbnail/" + path.Base(key)
		thumbKey, thumbURL = &key, &url
	}

	title := in.Title
	if title == "" {
		title = model.DefaultTitle
	}
	game := in.Game
	if game == "" {
		game = model.DefaultGame
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	c := &model.Clip{
		ID:           s.genID(),
		Filename:     filename,
		OriginalName: in.OriginalName,
		SizeBytes:    int64(len(in.Data)),
		MimeType:     in.MimeType,
		Title:        title,
		Description:  in.Description,
		Game:         game,
		Tags:         model.Tags(tags),
		IsPrivate:    in.IsPrivate,
		UploadedAt:   s.now().UTC(),
		VideoURL:     s.baseURL + "/api/video/" + filename,
		StorageKey:   videoKey,
		ThumbnailURL: thumbURL,
		ThumbnailKey: thumbKey,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.rollbackObjects(ctx, videoKey, thumbKey)
		return nil, fmt.Errorf("%w: %v", ErrMetadata, err)
	}

	// Retry the thumbnail in the background now that the row exists.
	if thumbErr != nil {
		if err := s.dispatcher.EnqueueRegenerateThumbnail(ctx, c.ID); err != nil {
			log.Printf("could not enqueue thumbnail regeneration for clip #%s: %v", c.ID, err)
		}
	}

	if err := s.cache.DeleteClipList(ctx); err != nil {
		log.Printf("failed to invalidate clip list cache: %v", err)
	}

	return c, nil
}

// rollbackObjects is the best-effort compensating delete: the metadata failure
// is what surfaces to the caller, these failures are logged only.
func (s *uploaderSrv) rollbackObjects(ctx context.Context, videoKey string, thumbKey *string) {
	if err := s.strg.RemoveFile(ctx, videoKey); err != nil {
		log.Printf("compensating delete of %q failed: %v", videoKey, err)
	}
	if thumbKey != nil {
		if err := s.strg.RemoveFile(ctx, *thumbKey); err != nil {
			log.Printf("compensating delete of %q failed: %v", *thumbKey, err)
		}
	}
}
