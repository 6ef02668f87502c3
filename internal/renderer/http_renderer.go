package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/port"
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderGetClip fetches clip details either from cache or from the wrapped use
// case. It returns the JSON encoded output and a quoted ETag string.
func (r *httpRenderer) RenderGetClip(ctx context.Context, getter port.ClipGetter, id db.UUID) ([]byte, string, error) {
	raw, err := r.cache.GetClipDetails(ctx, id)
	etag, errEtag := r.cache.GetEtagClipDetails(ctx, id)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetClip(ctx, id)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = computeEtag(raw)
	r.cache.SetClipDetails(ctx, id, raw)
	r.cache.SetEtagClipDetails(ctx, id, etag)

	return raw, etag, nil
}

// RenderListClips behaves like RenderGetClip for the full, newest-first clip
// listing.
func (r *httpRenderer) RenderListClips(ctx context.Context, lister port.ClipLister) ([]byte, string, error) {
	raw, err := r.cache.GetClipList(ctx)
	etag, errEtag := r.cache.GetEtagClipList(ctx)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := lister.ListClips(ctx)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = computeEtag(raw)
	r.cache.SetClipList(ctx, raw)
	r.cache.SetEtagClipList(ctx, etag)

	return raw, etag, nil
}

func computeEtag(raw []byte) string {
	return fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
}
