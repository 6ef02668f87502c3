package clip

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"
)

// NewUploadFilename derives a server-side filename from a high-resolution
// timestamp, a random suffix and the original extension. Collisions are not
// strictly impossible but are treated as such; two concurrent uploads never
// share a filename in practice.
func NewUploadFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("video-%d-%09d%s", time.Now().UnixMilli(), rand.Int64N(1_000_000_000), ext)
}
