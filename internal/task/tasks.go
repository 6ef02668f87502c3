package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeRegenerateThumbnail = "thumbnail:regenerate"

type RegenerateThumbnailPayload struct {
	ClipID string `json:"clip_id"`
}

// NewRegenerateThumbnailTask creates an Asynq task that retries frame
// extraction for a clip by ID.
func NewRegenerateThumbnailTask(clipID string) (*asynq.Task, error) {
	p := RegenerateThumbnailPayload{ClipID: clipID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal regenerate-thumbnail payload: %w", err)
	}
	return asynq.NewTask(TypeRegenerateThumbnail, data), nil
}

// ParseRegenerateThumbnailPayload parses the task payload.
func ParseRegenerateThumbnailPayload(t *asynq.Task) (RegenerateThumbnailPayload, error) {
	var p RegenerateThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return RegenerateThumbnailPayload{}, fmt.Errorf("could not unmarshal regenerate-thumbnail payload: %w", err)
	}
	return p, nil
}
