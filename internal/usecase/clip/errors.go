package clip

import "errors"

var (
	// storage-layer sentinels, mapped from MinIO error codes at the client boundary
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")

	// ErrClipNotFound is returned when no clip row exists for the given ID.
	ErrClipNotFound = errors.New("clip: not found")

	// ErrNotAVideo rejects uploads whose MIME type does not start with "video/".
	ErrNotAVideo = errors.New("upload: file is not a video")

	// ErrThumbnail wraps frame-extraction failures. Non-fatal to uploads.
	ErrThumbnail = errors.New("thumbnail: generation failed")

	// ErrMetadata wraps metadata-store failures after the video object was
	// already written; it triggers the compensating delete.
	ErrMetadata = errors.New("metadata: store failure")
)
