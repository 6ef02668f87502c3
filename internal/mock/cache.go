package mock

import (
	"context"

	"github.com/videoparty/clips-ms-go/internal/db"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	ClipOut []byte
	ListOut []byte

	// etag values
	EtagClip string
	EtagList string

	// errors
	GetClipErr     error
	GetEtagClipErr error
	DelClipErr     error
	GetListErr     error
	GetEtagListErr error
	DelListErr     error

	// call flags
	GetClipCalled     bool
	GetEtagClipCalled bool
	SetClipCalled     bool
	SetEtagClipCalled bool
	DelClipCalled     bool
	GetListCalled     bool
	GetEtagListCalled bool
	SetListCalled     bool
	SetEtagListCalled bool
	DelListCalled     bool
}

func (c *Cache) GetClipDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	c.GetClipCalled = true
	if c.GetClipErr != nil {
		return nil, c.GetClipErr
	}
	return c.ClipOut, nil
}

func (c *Cache) GetEtagClipDetails(ctx context.Context, id db.UUID) (string, error) {
	c.GetEtagClipCalled = true
	if c.GetEtagClipErr != nil {
		return "", c.GetEtagClipErr
	}
	return c.EtagClip, nil
}

func (c *Cache) SetClipDetails(ctx context.Context, id db.UUID, data []byte) {
	c.SetClipCalled = true
	c.ClipOut = data
}

func (c *Cache) SetEtagClipDetails(ctx context.Context, id db.UUID, etag string) {
	c.SetEtagClipCalled = true
	c.EtagClip = etag
}

func (c *Cache) DeleteClipDetails(ctx context.Context, id db.UUID) error {
	c.DelClipCalled = true
	return c.DelClipErr
}

func (c *Cache) GetClipList(ctx context.Context) ([]byte, error) {
	c.GetListCalled = true
	if c.GetListErr != nil {
		return nil, c.GetListErr
	}
	return c.ListOut, nil
}

func (c *Cache) GetEtagClipList(ctx context.Context) (string, error) {
	c.GetEtagListCalled = true
	if c.GetEtagListErr != nil {
		return "", c.GetEtagListErr
	}
	return c.EtagList, nil
}

func (c *Cache) SetClipList(ctx context.Context, data []byte) {
	c.SetListCalled = true
	c.ListOut = data
}

func (c *Cache) SetEtagClipList(ctx context.Context, etag string) {
	c.SetEtagListCalled = true
	c.EtagList = etag
}

func (c *Cache) DeleteClipList(ctx context.Context) error {
	c.DelListCalled = true
	return c.DelListErr
}
