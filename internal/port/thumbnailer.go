package port

import "context"

// Thumbnailer produces a representative still image for a video and persists
// it to object storage. The filename is the server-assigned video filename;
// the returned string is the object key of the stored thumbnail.
type Thumbnailer interface {
	Generate(ctx context.Context, video []byte, filename string) (string, error)
}
