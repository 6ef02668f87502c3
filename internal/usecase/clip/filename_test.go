package clip

import (
	"regexp"
	"testing"
)

func TestNewUploadFilename(t *testing.T) {
	re := regexp.MustCompile(`^video-\d+-\d{9}\.mp4$`)

	name := NewUploadFilename("My Clip.MP4")
	if !re.MatchString(name) {
		t.Errorf("filename %q does not match the expected pattern", name)
	}
}

func TestNewUploadFilename_KeepsExtension(t *testing.T) {
	tests := []struct {
		original string
		wantExt  string
	}{
		{"clip.webm", ".webm"},
		{"clip.mov", ".mov"},
		{"noext", ""},
	}
	for _, tc := range tests {
		name := NewUploadFilename(tc.original)
		re := regexp.MustCompile(`^video-\d+-\d{9}` + regexp.QuoteMeta(tc.wantExt) + `$`)
		if !re.MatchString(name) {
			t.Errorf("NewUploadFilename(%q) = %q; want suffix %q", tc.original, name, tc.wantExt)
		}
	}
}

func TestNewUploadFilename_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := NewUploadFilename("clip.mp4")
		if seen[name] {
			t.Fatalf("duplicate filename generated: %q", name)
		}
		seen[name] = true
	}
}
