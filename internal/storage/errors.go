package storage

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/videoparty/clips-ms-go/internal/usecase/clip"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return clip.ErrObjectNotFound
	case "NoSuchBucket":
		return clip.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return clip.ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", clip.ErrInternal, err)
	}
}
