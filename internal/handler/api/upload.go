package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/videoparty/clips-ms-go/internal/model"
	"github.com/videoparty/clips-ms-go/internal/port"
	"github.com/videoparty/clips-ms-go/internal/usecase/clip"
	"github.com/videoparty/clips-ms-go/internal/validation"
)

type UploadResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Clip    *model.Clip `json:"clip"`
}

type uploadMetadata struct {
	Title       string   `json:"title" validate:"omitempty,max=200"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Game        string   `json:"game" validate:"omitempty,max=100"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

// UploadHandler accepts a multipart video upload and runs the ingestion
// pipeline. The whole payload is buffered in memory before any side effect;
// the size ceiling is enforced by MaxBytesReader before parsing starts.
func UploadHandler(svc port.ClipUploader, maxUploadSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			WriteError(w, http.StatusBadRequest, "Upload too large or malformed", err)
			return
		}

		file, header, err := r.FormFile("video")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "No video file provided", err)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("failed to close upload file: %v", err)
			}
		}()

		meta := uploadMetadata{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Game:        r.FormValue("game"),
		}
		if rawTags := r.FormValue("tags"); rawTags != "" {
			if err := json.Unmarshal([]byte(rawTags), &meta.Tags); err != nil {
				WriteError(w, http.StatusBadRequest, "tags must be a JSON array of strings", err)
				return
			}
		}

		if errs := validation.ValidateStruct(meta); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Failed to read upload", err)
			return
		}

		in := port.UploadInput{
			OriginalName: header.Filename,
			MimeType:     header.Header.Get("Content-Type"),
			Data:         data,
			Title:        meta.Title,
			Description:  meta.Description,
			Game:         meta.Game,
			Tags:         meta.Tags,
			IsPrivate:    r.FormValue("isPrivate") == "true",
		}

		c, err := svc.Upload(r.Context(), in)
		if err != nil {
			if errors.Is(err, clip.ErrNotAVideo) {
				WriteError(w, http.StatusBadRequest, "Only video files are allowed", err)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to upload video", err)
			return
		}

		RespondJSON(w, http.StatusOK, UploadResponse{
			Success: true,
			Message: "Video uploaded successfully!",
			Clip:    c,
		})
		log.Printf("✅  Successfully uploaded clip #%s (%q)", c.ID, c.Filename)
	}
}
