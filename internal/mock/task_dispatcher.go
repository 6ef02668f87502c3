package mock

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	RegenerateCalled bool
	RegenerateIDs    []db.UUID
	RegenerateErr    error
}

func (m *MockDispatcher) EnqueueRegenerateThumbnail(ctx context.Context, id db.UUID) error {
	m.RegenerateCalled = true
	m.RegenerateIDs = append(m.RegenerateIDs, id)
	return m.RegenerateErr
}
