package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/videoparty/clips-ms-go/internal/port"
	"github.com/videoparty/clips-ms-go/internal/usecase/clip"
)

// captureOffset is the timestamp the frame is grabbed at. Videos shorter than
// this are left to ffmpeg's own behaviour rather than special-cased.
const (
	captureOffset = "5"
	thumbSize     = "320x240"
)

type runCmd func(ctx context.Context, name string, args ...string) error

// Extractor shells out to ffmpeg to grab a single frame, then pushes the
// resulting JPEG to object storage under "thumbnails/".
type Extractor struct {
	strg       port.Storage
	ffmpegPath string
	timeout    time.Duration
	tempDir    string
	run        runCmd
}

// compile-time check: *Extractor must satisfy port.Thumbnailer
var _ port.Thumbnailer = (*Extractor)(nil)

func NewExtractor(strg port.Storage, ffmpegPath string, timeout time.Duration) (*Extractor, error) {
	path, err := exec.LookPath(ffmpegPath)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found at %q: %w", ffmpegPath, err)
	}

	tempDir := filepath.Join(os.TempDir(), "clips-ms-thumbs")
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &Extractor{
		strg:       strg,
		ffmpegPath: path,
		timeout:    timeout,
		tempDir:    tempDir,
		run:        defaultRun,
	}, nil
}

// Generate writes the video bytes to a scratch file, captures one frame at the
// 5-second mark as a 320x240 JPEG, uploads it and returns its object key.
// Scratch files are removed on every exit path. All failures wrap
// clip.ErrThumbnail so callers can treat them as non-fatal.
func (e *Extractor) Generate(ctx context.Context, video []byte, filename string) (string, error) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	videoPath := filepath.Join(e.tempDir, filename)
	thumbPath := filepath.Join(e.tempDir, stem+"_thumb.jpg")

	if err := os.WriteFile(videoPath, video, 0o600); err != nil {
		return "", fmt.Errorf("%w: write scratch video: %v", clip.ErrThumbnail, err)
	}
	defer func() {
		if err := os.Remove(videoPath); err != nil && !os.IsNotExist(err) {
			log.Printf("failed to remove scratch video %q: %v", videoPath, err)
		}
		if err := os.Remove(thumbPath); err != nil && !os.IsNotExist(err) {
			log.Printf("failed to remove scratch thumbnail %q: %v", thumbPath, err)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := []string{
		"-y",
		"-ss", captureOffset,
		"-i", videoPath,
		"-vframes", "1",
		"-s", thumbSize,
		"-q:v", "2",
		"-f", "mjpeg",
		thumbPath,
	}
	if err := e.run(ctx, e.ffmpegPath, args...); err != nil {
		return "", fmt.Errorf("%w: %v", clip.ErrThumbnail, err)
	}

	data, err := os.ReadFile(thumbPath)
	if err != nil {
		return "", fmt.Errorf("%w: read scratch thumbnail: %v", clip.ErrThumbnail, err)
	}

	key := "thumbnails/" + stem + "_thumb.jpg"
	if err := e.strg.SaveFile(ctx, key, bytes.NewReader(data), int64(len(data)), map[string]string{
		"Content-Type": "image/jpeg",
	}); err != nil {
		return "", fmt.Errorf("%w: upload thumbnail: %v", clip.ErrThumbnail, err)
	}

	log.Printf("thumbnail %q generated for video %q", key, filename)
	return key, nil
}

func defaultRun(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
