package mock

import "context"

// Thumbnailer implements port.Thumbnailer for tests.
type Thumbnailer struct {
	KeyOut string
	Err    error

	Called      bool
	GotVideo    []byte
	GotFilename string
}

func (m *Thumbnailer) Generate(ctx context.Context, video []byte, filename string) (string, error) {
	m.Called = true
	m.GotVideo = video
	m.GotFilename = filename
	if m.Err != nil {
		return "", m.Err
	}
	return m.KeyOut, nil
}
