package mock

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/port"
)

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	// stored values
	ClipOut []byte
	ListOut []byte

	// etag values
	EtagClip string
	EtagList string

	// captured inputs
	GotClipID db.UUID

	// errors
	GetClipErr  error
	ListClipErr error

	// call flags
	GetClipCalled  bool
	ListClipCalled bool
}

func (m *HTTPRenderer) RenderGetClip(ctx context.Context, getter port.ClipGetter, id db.UUID) ([]byte, string, error) {
	m.GetClipCalled = true
	m.GotClipID = id
	return m.ClipOut, m.EtagClip, m.GetClipErr
}

func (m *HTTPRenderer) RenderListClips(ctx context.Context, lister port.ClipLister) ([]byte, string, error) {
	m.ListClipCalled = true
	return m.ListOut, m.EtagList, m.ListClipErr
}
