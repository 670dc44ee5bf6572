package chatRepository

import (
	"context"
	"time"

	"StorefrontGolang/internal/entity"
	redisPkg "StorefrontGolang/pkg/redis"

	"github.com/sirupsen/logrus"
)

const (
	sessionKeyPrefix = "chat:session:"

	// Matches the storefront's 24h session cutoff: an idle conversation
	// falls back to a fresh seeded snapshot after a day.
	sessionTTL = 24 * time.Hour
)

// Repository owns the single serialized SessionSnapshot slot per
// conversation. LoadSnapshot never fails hard: any read or decode problem
// yields the seeded default snapshot, with the cause returned alongside for
// the caller to log or assert on.
type Repository interface {
	LoadSnapshot(ctx context.Context, conversationID string) (entity.SessionSnapshot, error)
	SaveSnapshot(ctx context.Context, conversationID string, snapshot entity.SessionSnapshot) error
	DeleteSnapshot(ctx context.Context, conversationID string) error
}

func New(kv redisPkg.IRedis, log *logrus.Logger) Repository {
	return &repository{
		kv:  kv,
		log: log,
	}
}

type repository struct {
	kv  redisPkg.IRedis
	log *logrus.Logger
}

func sessionKey(conversationID string) string {
	return sessionKeyPrefix + conversationID
}
