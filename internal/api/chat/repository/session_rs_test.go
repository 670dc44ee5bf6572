package chatRepository

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"StorefrontGolang/internal/entity"
	"StorefrontGolang/pkg/bot"
	redisPkg "StorefrontGolang/pkg/redis"

	"github.com/sirupsen/logrus"
)

type fakeKV struct {
	values  map[string]string
	getErr  error
	setErr  error
	lastKey string
	lastTTL time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}}
}

func (f *fakeKV) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	f.lastKey = key
	f.lastTTL = expiration
	return nil
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	value, ok := f.values[key]
	if !ok {
		return "", redisPkg.ErrKeyNotFound
	}
	return value, nil
}

func (f *fakeKV) Del(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func assertDefaultSnapshot(t *testing.T, snapshot entity.SessionSnapshot) {
	t.Helper()
	if len(snapshot.Messages) != 1 {
		t.Fatalf("default snapshot has %d messages, want 1", len(snapshot.Messages))
	}
	if snapshot.Messages[0].Text != bot.WelcomeText || !snapshot.Messages[0].IsBot {
		t.Fatalf("expected the seeded welcome message, got %+v", snapshot.Messages[0])
	}
	if snapshot.Context != entity.ContextNone {
		t.Fatalf("default snapshot context = %v, want none", snapshot.Context)
	}
}

func TestLoadSnapshotMissingKey(t *testing.T) {
	repo := New(newFakeKV(), testLogger())

	snapshot, err := repo.LoadSnapshot(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("a first visit must not be an error, got %v", err)
	}
	assertDefaultSnapshot(t, snapshot)
}

func TestLoadSnapshotReadFailure(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("connection refused")
	repo := New(kv, testLogger())

	snapshot, err := repo.LoadSnapshot(context.Background(), "conv-1")
	if err == nil {
		t.Fatal("expected the read failure to be reported")
	}
	assertDefaultSnapshot(t, snapshot)
}

func TestLoadSnapshotCorruptPayload(t *testing.T) {
	kv := newFakeKV()
	kv.values[sessionKey("conv-1")] = "{not json"
	repo := New(kv, testLogger())

	snapshot, err := repo.LoadSnapshot(context.Background(), "conv-1")
	if err == nil {
		t.Fatal("expected the decode failure to be reported")
	}
	assertDefaultSnapshot(t, snapshot)
}

func TestLoadSnapshotEmptyTranscript(t *testing.T) {
	kv := newFakeKV()
	kv.values[sessionKey("conv-1")] = `{"messages":[],"userName":"","context":"none"}`
	repo := New(kv, testLogger())

	snapshot, err := repo.LoadSnapshot(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("an empty transcript falls back silently, got %v", err)
	}
	assertDefaultSnapshot(t, snapshot)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	kv := newFakeKV()
	repo := New(kv, testLogger())

	now := time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)
	snapshot := entity.SessionSnapshot{
		Messages: []entity.ChatMessage{
			{Text: bot.WelcomeText, IsBot: true, Timestamp: now},
			{Text: "my screen broke", IsBot: false, Timestamp: now},
		},
		UserName:   "Dana",
		Context:    entity.ContextRepairBooking,
		LastActive: now,
	}

	if err := repo.SaveSnapshot(context.Background(), "conv-1", snapshot); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kv.lastKey != "chat:session:conv-1" {
		t.Fatalf("session key = %q, want chat:session:conv-1", kv.lastKey)
	}
	if kv.lastTTL != 24*time.Hour {
		t.Fatalf("session TTL = %v, want 24h", kv.lastTTL)
	}

	loaded, err := repo.LoadSnapshot(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded.Messages) != 2 {
		t.Fatalf("loaded %d messages, want 2", len(loaded.Messages))
	}
	if loaded.Context != entity.ContextRepairBooking {
		t.Fatalf("loaded context = %v, want repair booking", loaded.Context)
	}
	if loaded.UserName != "Dana" {
		t.Fatalf("loaded user name = %q, want Dana", loaded.UserName)
	}
}

func TestDeleteSnapshot(t *testing.T) {
	kv := newFakeKV()
	repo := New(kv, testLogger())

	snapshot := defaultSnapshot()
	if err := repo.SaveSnapshot(context.Background(), "conv-1", snapshot); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.DeleteSnapshot(context.Background(), "conv-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := kv.values[sessionKey("conv-1")]; ok {
		t.Fatal("expected the session slot to be gone")
	}
}
