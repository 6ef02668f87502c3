package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/videoparty/clips-ms-go/internal/mock"
)

func TestListClipsHandler_Success(t *testing.T) {
	rnd := &mock.HTTPRenderer{ListOut: []byte(`[{"filename":"video-1.mp4"}]`), EtagList: `"00c0ffee"`}
	h := ListClipsHandler(rnd, &mock.MockClipLister{})

	req := httptest.NewRequest(http.MethodGet, "/api/clips", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "video-1.mp4") {
		t.Errorf("body = %q", rec.Body.String())
	}
	if got := rec.Header().Get("ETag"); got != `"00c0ffee"` {
		t.Errorf("ETag = %q", got)
	}
}

func TestListClipsHandler_NotModified(t *testing.T) {
	rnd := &mock.HTTPRenderer{ListOut: []byte(`[]`), EtagList: `"00c0ffee"`}
	h := ListClipsHandler(rnd, &mock.MockClipLister{})

	req := httptest.NewRequest(http.MethodGet, "/api/clips", nil)
	req.Header.Set("If-None-Match", `"00c0ffee"`)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d; want 304", rec.Code)
	}
}

func TestListClipsHandler_RendererError(t *testing.T) {
	rnd := &mock.HTTPRenderer{ListClipErr: errors.New("boom")}
	h := ListClipsHandler(rnd, &mock.MockClipLister{})

	req := httptest.NewRequest(http.MethodGet, "/api/clips", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Could not list clips") {
		t.Errorf("body = %q", rec.Body.String())
	}
}
