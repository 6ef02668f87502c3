package cache

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/port"
)

// Noop is used when Redis is not configured; every lookup is a miss.
type Noop struct{}

// compile-time check: *Noop must satisfy port.Cache
var _ port.Cache = (*Noop)(nil)

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) GetClipDetails(ctx context.Context, id db.UUID) ([]byte, error) { return nil, nil }

func (n *Noop) GetEtagClipDetails(ctx context.Context, id db.UUID) (string, error) { return "", nil }

func (n *Noop) SetClipDetails(ctx context.Context, id db.UUID, data []byte) {}

func (n *Noop) SetEtagClipDetails(ctx context.Context, id db.UUID, etag string) {}

func (n *Noop) DeleteClipDetails(ctx context.Context, id db.UUID) error { return nil }

func (n *Noop) GetClipList(ctx context.Context) ([]byte, error) { return nil, nil }

func (n *Noop) GetEtagClipList(ctx context.Context) (string, error) { return "", nil }

func (n *Noop) SetClipList(ctx context.Context, data []byte) {}

func (n *Noop) SetEtagClipList(ctx context.Context, etag string) {}

func (n *Noop) DeleteClipList(ctx context.Context) error { return nil }
