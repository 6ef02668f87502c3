package clip

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/mock"
	"github.com/videoparty/clips-ms-go/internal/model"
)

func clipWithoutThumbnail() *model.Clip {
	return &model.Clip{
		ID:         db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")),
		Filename:   "video-1.mp4",
		StorageKey: "videos/video-1.mp4",
	}
}

func TestRegenerateThumbnail_NotFound(t *testing.T) {
	repo := &mock.MockClipRepo{GetErr: ErrClipNotFound}
	svc := NewThumbnailRegenerator(repo, &mock.Storage{}, &mock.Thumbnailer{}, &mock.Cache{}, "http://localhost:3001")

	err := svc.RegenerateThumbnail(context.Background(), clipWithoutThumbnail().ID)
	if !errors.Is(err, ErrClipNotFound) {
		t.Fatalf("expected ErrClipNotFound, got %v", err)
	}
}

func TestRegenerateThumbnail_SkipsWhenAlreadySet(t *testing.T) {
	c := clipWithoutThumbnail()
	key := "thumbnails/video-1_thumb.jpg"
	c.ThumbnailKey = &key
	repo := &mock.MockClipRepo{ClipRecord: c}
	strg := &mock.Storage{}
	thumb := &mock.Thumbnailer{}
	svc := NewThumbnailRegenerator(repo, strg, thumb, &mock.Cache{}, "http://localhost:3001")

	if err := svc.RegenerateThumbnail(context.Background(), c.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strg.GetCalled || thumb.Called {
		t.Error("nothing should run when the thumbnail already exists")
	}
}

func TestRegenerateThumbnail_FetchError(t *testing.T) {
	repo := &mock.MockClipRepo{ClipRecord: clipWithoutThumbnail()}
	strg := &mock.Storage{GetErr: errors.New("fetch fail")}
	svc := NewThumbnailRegenerator(repo, strg, &mock.Thumbnailer{}, &mock.Cache{}, "http://localhost:3001")

	if err := svc.RegenerateThumbnail(context.Background(), repo.ClipRecord.ID); err == nil {
		t.Fatal("expected an error when the video cannot be fetched")
	}
}

func TestRegenerateThumbnail_GenerateError(t *testing.T) {
	repo := &mock.MockClipRepo{ClipRecord: clipWithoutThumbnail()}
	thumb := &mock.Thumbnailer{Err: errors.New("ffmpeg fail")}
	svc := NewThumbnailRegenerator(repo, &mock.Storage{}, thumb, &mock.Cache{}, "http://localhost:3001")

	if err := svc.RegenerateThumbnail(context.Background(), repo.ClipRecord.ID); err == nil {
		t.Fatal("expected the extraction error to surface")
	}
	if repo.Updated != nil {
		t.Error("no row update expected after a failed extraction")
	}
}

func TestRegenerateThumbnail_Success(t *testing.T) {
	c := clipWithoutThumbnail()
	repo := &mock.MockClipRepo{ClipRecord: c}
	strg := &mock.Storage{GetOut: bytes.NewReader([]byte("video bytes"))}
	thumb := &mock.Thumbnailer{KeyOut: "thumbnails/video-1_thumb.jpg"}
	cache := &mock.Cache{}
	svc := NewThumbnailRegenerator(repo, strg, thumb, cache, "http://localhost:3001")

	if err := svc.RegenerateThumbnail(context.Background(), c.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(thumb.GotVideo) != "video bytes" {
		t.Errorf("thumbnailer got %q", thumb.GotVideo)
	}
	if repo.Updated == nil {
		t.Fatal("expected the row to be updated")
	}
	if repo.Updated.ThumbnailKey == nil || *repo.Updated.ThumbnailKey != thumb.KeyOut {
		t.Errorf("thumbnail key = %v", repo.Updated.ThumbnailKey)
	}
	if repo.Updated.ThumbnailURL == nil || *repo.Updated.ThumbnailURL != "http://localhost:3001/api/thumbnail/video-1_thumb.jpg" {
		t.Errorf("thumbnail URL = %v", repo.Updated.ThumbnailURL)
	}
	if !cache.DelClipCalled || !cache.DelListCalled {
		t.Error("expected cache invalidation after the update")
	}
}
