package chatRepository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"StorefrontGolang/internal/entity"
	"StorefrontGolang/pkg/bot"
	contextPkg "StorefrontGolang/pkg/context"
	redisPkg "StorefrontGolang/pkg/redis"

	"github.com/sirupsen/logrus"
)

// LoadSnapshot reads the conversation slot. A missing key is the normal
// first-visit case and returns the default snapshot with no error; a corrupt
// or unreadable slot also returns the default snapshot, plus the underlying
// cause so callers can observe the recovery.
func (r *repository) LoadSnapshot(ctx context.Context, conversationID string) (entity.SessionSnapshot, error) {
	requestID := contextPkg.GetRequestID(ctx)

	raw, err := r.kv.Get(ctx, sessionKey(conversationID))
	if err != nil {
		if errors.Is(err, redisPkg.ErrKeyNotFound) {
			return defaultSnapshot(), nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           err.Error(),
		}).Error("Failed to read session snapshot, falling back to default")
		return defaultSnapshot(), err
	}

	var snapshot entity.SessionSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           err.Error(),
		}).Warn("Corrupt session snapshot, falling back to default")
		return defaultSnapshot(), err
	}

	if len(snapshot.Messages) == 0 {
		return defaultSnapshot(), nil
	}

	return snapshot, nil
}

// SaveSnapshot fully overwrites the slot. Best-effort: the caller decides
// whether a failed write matters.
func (r *repository) SaveSnapshot(ctx context.Context, conversationID string, snapshot entity.SessionSnapshot) error {
	requestID := contextPkg.GetRequestID(ctx)

	raw, err := json.Marshal(snapshot)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           err.Error(),
		}).Error("Failed to marshal session snapshot")
		return err
	}

	if err := r.kv.Set(ctx, sessionKey(conversationID), string(raw), sessionTTL); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
			"error":           err.Error(),
		}).Error("Failed to write session snapshot")
		return err
	}

	return nil
}

func (r *repository) DeleteSnapshot(ctx context.Context, conversationID string) error {
	return r.kv.Del(ctx, sessionKey(conversationID))
}

func defaultSnapshot() entity.SessionSnapshot {
	return entity.NewSessionSnapshot(bot.WelcomeMessage(time.Now()))
}
