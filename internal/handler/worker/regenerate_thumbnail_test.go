package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/mock"
	"github.com/videoparty/clips-ms-go/internal/task"
)

func TestRegenerateThumbnailHandler_Success(t *testing.T) {
	id := "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	svc := &mock.MockThumbnailRegenerator{}

	err := RegenerateThumbnailHandler(context.Background(), task.RegenerateThumbnailPayload{ClipID: id}, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Called {
		t.Fatal("expected the service to run")
	}
	if svc.GotID != db.UUID(uuid.MustParse(id)) {
		t.Errorf("service got ID = %s; want %s", svc.GotID, id)
	}
}

func TestRegenerateThumbnailHandler_InvalidID(t *testing.T) {
	svc := &mock.MockThumbnailRegenerator{}

	err := RegenerateThumbnailHandler(context.Background(), task.RegenerateThumbnailPayload{ClipID: "nope"}, svc)
	if err == nil {
		t.Fatal("expected an error for a malformed ID")
	}
	if svc.Called {
		t.Error("service must not run on a malformed ID")
	}
}

func TestRegenerateThumbnailHandler_ServiceError(t *testing.T) {
	svc := &mock.MockThumbnailRegenerator{Err: errors.New("boom")}

	err := RegenerateThumbnailHandler(context.Background(), task.RegenerateThumbnailPayload{ClipID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}, svc)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
