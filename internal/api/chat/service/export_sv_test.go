package chatService

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"StorefrontGolang/internal/api/chat"
	"StorefrontGolang/internal/entity"
	"StorefrontGolang/pkg/utils"
)

func TestExportTranscript(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo, defaultSelector())

	if _, err := service.SubmitMessage(context.Background(), "conv-1", chat.SendMessageRequest{
		Text:     "hello",
		UserName: "Dana",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := service.ExportTranscript(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(result.FileName, "chat-export-") || !strings.HasSuffix(result.FileName, ".json") {
		t.Fatalf("unexpected export file name %q", result.FileName)
	}
	if !strings.Contains(string(result.Data), "\n  \"") {
		t.Fatal("export must be pretty-printed")
	}

	var export chat.ExportSnapshot
	if err := json.Unmarshal(result.Data, &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	// welcome + user + bot
	if export.TotalMessages != 3 || len(export.Messages) != 3 {
		t.Fatalf("total messages = %d (%d listed), want 3", export.TotalMessages, len(export.Messages))
	}
	if export.UserName != "Dana" {
		t.Fatalf("user name = %q, want Dana", export.UserName)
	}
	if export.Context != "none" {
		t.Fatalf("context = %q, want none", export.Context)
	}
	if export.ExportedAt.IsZero() {
		t.Fatal("export timestamp must be set")
	}
}

func TestExportSnapshotIsPure(t *testing.T) {
	now := time.Now()
	snapshot := entity.SessionSnapshot{
		Messages: []entity.ChatMessage{
			{Text: "hi", IsBot: false, Timestamp: now},
		},
		UserName:   "Dana",
		Context:    entity.ContextProductSearch,
		LastActive: now,
	}

	before := len(snapshot.Messages)
	if _, err := exportSnapshot(snapshot, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot.Messages) != before {
		t.Fatal("exportSnapshot must not mutate the snapshot")
	}

	data, _ := exportSnapshot(snapshot, now)
	var export chat.ExportSnapshot
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if export.Context != "product_search" {
		t.Fatalf("context = %q, want product_search", export.Context)
	}
}

type fakeS3 struct {
	uploads   int
	uploadErr error
}

func (f *fakeS3) UploadExport(fileName string, _ []byte) (string, error) {
	f.uploads++
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "exports/" + fileName, nil
}

func (f *fakeS3) PresignUrl(location string) (string, error) {
	return "https://cdn.example/" + location, nil
}

func (f *fakeS3) DeleteFile(string) error { return nil }

func TestUploadExport(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeS3{}
	service := New(testLogger(), repo, defaultSelector(), store, utils.New(), NoDelay())

	resp, err := service.UploadExport(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.uploads != 1 {
		t.Fatalf("uploads = %d, want 1", store.uploads)
	}
	if !strings.HasPrefix(resp.URL, "https://cdn.example/exports/") {
		t.Fatalf("unexpected presigned URL %q", resp.URL)
	}
}

func TestUploadExportFailures(t *testing.T) {
	repo := newFakeRepo()

	t.Run("storage not configured", func(t *testing.T) {
		service := newTestService(repo, defaultSelector())
		if _, err := service.UploadExport(context.Background(), "conv-1"); !errors.Is(err, chat.ErrExportNotConfigured) {
			t.Fatalf("err = %v, want ErrExportNotConfigured", err)
		}
	})

	t.Run("upload fault", func(t *testing.T) {
		store := &fakeS3{uploadErr: errors.New("bucket gone")}
		service := New(testLogger(), repo, defaultSelector(), store, utils.New(), NoDelay())
		if _, err := service.UploadExport(context.Background(), "conv-1"); !errors.Is(err, chat.ErrExportUploadFailed) {
			t.Fatalf("err = %v, want ErrExportUploadFailed", err)
		}
	})
}
