package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/videoparty/clips-ms-go/internal/db"
)

const (
	DefaultTitle = "Untitled Clip"
	DefaultGame  = "Unknown"
)

// Clip is one uploaded video's metadata record. ThumbnailURL and ThumbnailKey
// are nil when frame extraction failed; readers must tolerate their absence.
type Clip struct {
	ID           db.UUID   `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	SizeBytes    int64     `json:"size"`
	MimeType     string    `json:"mimetype"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Game         string    `json:"game"`
	Tags         Tags      `json:"tags"`
	IsPrivate    bool      `json:"is_private"`
	UploadedAt   time.Time `json:"uploaded_at"`
	Views        int64     `json:"views"`
	Likes        int64     `json:"likes"`
	VideoURL     string    `json:"video_url"`
	StorageKey   string    `json:"storage_key"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	ThumbnailKey *string   `json:"thumbnail_key,omitempty"`
}

// Tags is an ordered list of user-supplied tags, stored as a JSON column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal Tags: %w", err)
	}
	return b, nil
}

func (t *Tags) Scan(src interface{}) error {
	if src == nil {
		*t = Tags{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Tags.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, t); err != nil {
		return fmt.Errorf("unmarshal Tags: %w", err)
	}
	return nil
}
