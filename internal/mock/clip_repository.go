package mock

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/model"
)

// MockClipRepo implements repository operations for tests.
type MockClipRepo struct {
	ClipRecord *model.Clip
	ListOut    []*model.Clip

	GetErr            error
	CreateErr         error
	UpdateErr         error
	UpdateVideoURLErr error
	DeleteErr         error
	ListErr           error

	GetCalled        bool
	Created          *model.Clip
	Updated          *model.Clip
	UpdatedVideoURLs map[db.UUID]string
	DeleteCalled     bool
	DeletedID        db.UUID
	ListCalled       bool
}

func (m *MockClipRepo) Create(ctx context.Context, clip *model.Clip) error {
	m.Created = clip
	return m.CreateErr
}

func (m *MockClipRepo) GetByID(ctx context.Context, id db.UUID) (*model.Clip, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.ClipRecord, nil
}

func (m *MockClipRepo) List(ctx context.Context) ([]*model.Clip, error) {
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MockClipRepo) Update(ctx context.Context, clip *model.Clip) error {
	m.Updated = clip
	return m.UpdateErr
}

func (m *MockClipRepo) UpdateVideoURL(ctx context.Context, id db.UUID, videoURL string) error {
	if m.UpdatedVideoURLs == nil {
		m.UpdatedVideoURLs = make(map[db.UUID]string)
	}
	m.UpdatedVideoURLs[id] = videoURL
	return m.UpdateVideoURLErr
}

func (m *MockClipRepo) Delete(ctx context.Context, id db.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}
