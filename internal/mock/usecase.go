package mock

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/model"
	"github.com/videoparty/clips-ms-go/internal/port"
)

// MockClipUploader implements port.ClipUploader for tests.
type MockClipUploader struct {
	Out    *model.Clip
	Err    error
	Called bool
	GotIn  port.UploadInput
}

func (m *MockClipUploader) Upload(ctx context.Context, in port.UploadInput) (*model.Clip, error) {
	m.Called = true
	m.GotIn = in
	return m.Out, m.Err
}

// MockClipGetter implements port.ClipGetter for tests.
type MockClipGetter struct {
	Out    *model.Clip
	Err    error
	Called bool
	GotID  db.UUID
}

func (m *MockClipGetter) GetClip(ctx context.Context, id db.UUID) (*model.Clip, error) {
	m.Called = true
	m.GotID = id
	return m.Out, m.Err
}

// MockClipLister implements port.ClipLister for tests.
type MockClipLister struct {
	Out    []*model.Clip
	Err    error
	Called bool
}

func (m *MockClipLister) ListClips(ctx context.Context) ([]*model.Clip, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockClipDeleter implements port.ClipDeleter for tests.
type MockClipDeleter struct {
	Out    *model.Clip
	Err    error
	Called bool
	GotID  db.UUID
}

func (m *MockClipDeleter) DeleteClip(ctx context.Context, id db.UUID) (*model.Clip, error) {
	m.Called = true
	m.GotID = id
	return m.Out, m.Err
}

// MockURLRepairer implements port.URLRepairer for tests.
type MockURLRepairer struct {
	Out    int
	Err    error
	Called bool
}

func (m *MockURLRepairer) RepairURLs(ctx context.Context) (int, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockThumbnailRegenerator implements port.ThumbnailRegenerator for tests.
type MockThumbnailRegenerator struct {
	Err    error
	Called bool
	GotID  db.UUID
}

func (m *MockThumbnailRegenerator) RegenerateThumbnail(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.GotID = id
	return m.Err
}
