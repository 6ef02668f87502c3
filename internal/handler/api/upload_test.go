package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/mock"
	"github.com/videoparty/clips-ms-go/internal/model"
	"github.com/videoparty/clips-ms-go/internal/usecase/clip"
)

const testMaxUpload = 10 << 20

func multipartUpload(t *testing.T, fields map[string]string, fileField, fileName, contentType string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s): %v", k, err)
		}
	}
	if fileField != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		if _, err := part.Write(fileData); err != nil {
			t.Fatalf("part.Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("writer.Close: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadHandler_Success(t *testing.T) {
	clipOut := &model.Clip{
		ID:       db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")),
		Filename: "video-1.mp4",
		Title:    "Insane clutch",
		Tags:     model.Tags{"clutch"},
	}
	svc := &mock.MockClipUploader{Out: clipOut}
	h := UploadHandler(svc, testMaxUpload)

	fields := map[string]string{
		"title":     "Insane clutch",
		"game":      "Valorant",
		"tags":      `["clutch"]`,
		"isPrivate": "true",
	}
	body, ct := multipartUpload(t, fields, "video", "clutch.mp4", "video/mp4", []byte("fake video"))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body %s", rec.Code, rec.Body.String())
	}

	var resp UploadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !resp.Success || resp.Message != "Video uploaded successfully!" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Clip == nil || resp.Clip.Filename != "video-1.mp4" {
		t.Errorf("clip = %+v", resp.Clip)
	}

	if svc.GotIn.OriginalName != "clutch.mp4" || svc.GotIn.MimeType != "video/mp4" {
		t.Errorf("service input = %+v", svc.GotIn)
	}
	if string(svc.GotIn.Data) != "fake video" {
		t.Errorf("service got data %q", svc.GotIn.Data)
	}
	if !svc.GotIn.IsPrivate || len(svc.GotIn.Tags) != 1 || svc.GotIn.Tags[0] != "clutch" {
		t.Errorf("service input = %+v", svc.GotIn)
	}
}

func TestUploadHandler_NoFile(t *testing.T) {
	svc := &mock.MockClipUploader{}
	h := UploadHandler(svc, testMaxUpload)

	body, ct := multipartUpload(t, map[string]string{"title": "x"}, "", "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No video file provided") {
		t.Errorf("body = %q", rec.Body.String())
	}
	if svc.Called {
		t.Error("service must not run without a file")
	}
}

func TestUploadHandler_BadTagsJSON(t *testing.T) {
	svc := &mock.MockClipUploader{}
	h := UploadHandler(svc, testMaxUpload)

	body, ct := multipartUpload(t, map[string]string{"tags": "not json"}, "video", "a.mp4", "video/mp4", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if svc.Called {
		t.Error("service must not run with malformed tags")
	}
}

func TestUploadHandler_NotAVideo(t *testing.T) {
	svc := &mock.MockClipUploader{Err: clip.ErrNotAVideo}
	h := UploadHandler(svc, testMaxUpload)

	body, ct := multipartUpload(t, nil, "video", "doc.pdf", "application/pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Only video files are allowed") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestUploadHandler_ServiceError(t *testing.T) {
	svc := &mock.MockClipUploader{Err: errors.New("boom")}
	h := UploadHandler(svc, testMaxUpload)

	body, ct := multipartUpload(t, nil, "video", "a.mp4", "video/mp4", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to upload video") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestUploadHandler_TooLarge(t *testing.T) {
	svc := &mock.MockClipUploader{}
	h := UploadHandler(svc, 64) // tiny ceiling

	body, ct := multipartUpload(t, nil, "video", "a.mp4", "video/mp4", bytes.Repeat([]byte("x"), 1024))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if svc.Called {
		t.Error("service must not run on an oversized upload")
	}
}

func TestUploadHandler_ValidationError(t *testing.T) {
	svc := &mock.MockClipUploader{}
	h := UploadHandler(svc, testMaxUpload)

	fields := map[string]string{"title": strings.Repeat("a", 201)}
	body, ct := multipartUpload(t, fields, "video", "a.mp4", "video/mp4", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "title") {
		t.Errorf("body = %q; want a title validation error", rec.Body.String())
	}
	if svc.Called {
		t.Error("service must not run on invalid metadata")
	}
}
