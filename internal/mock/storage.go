package mock

import (
	"bytes"
	"context"
	"io"

	"github.com/videoparty/clips-ms-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	StatInfoOut port.FileInfo
	GetOut      io.ReadSeeker

	// captured inputs
	SavedKeys   []string
	SavedOpts   map[string]string
	SavedData   []byte
	RemovedKeys []string
	StatKey     string
	GetKey      string

	// errors
	InitBucketErr error
	StatErr       error
	GetErr        error
	SaveErr       error
	RemoveErr     error
	PingErr       error

	// per-key errors take precedence over the blanket ones
	SaveErrByKey   map[string]error
	RemoveErrByKey map[string]error

	// call flags
	InitBucketCalled bool
	StatCalled       bool
	GetCalled        bool
	SaveCalled       bool
	RemoveCalled     bool
	PingCalled       bool
}

func (m *Storage) InitBucket() error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) StatFile(ctx context.Context, fileKey string) (port.FileInfo, error) {
	m.StatCalled = true
	m.StatKey = fileKey
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) GetFile(ctx context.Context, fileKey string) (io.ReadSeekCloser, error) {
	m.GetCalled = true
	m.GetKey = fileKey
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut != nil {
		return noopRSC{m.GetOut}, nil
	}
	return noopRSC{bytes.NewReader([]byte("dummy"))}, nil
}

func (m *Storage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.SavedKeys = append(m.SavedKeys, fileKey)
	m.SavedOpts = opts
	if data, err := io.ReadAll(reader); err == nil {
		m.SavedData = data
	}
	if err, ok := m.SaveErrByKey[fileKey]; ok {
		return err
	}
	return m.SaveErr
}

func (m *Storage) RemoveFile(ctx context.Context, fileKey string) error {
	m.RemoveCalled = true
	m.RemovedKeys = append(m.RemovedKeys, fileKey)
	if err, ok := m.RemoveErrByKey[fileKey]; ok {
		return err
	}
	return m.RemoveErr
}

func (m *Storage) Ping(ctx context.Context) error {
	m.PingCalled = true
	return m.PingErr
}
