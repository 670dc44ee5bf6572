package bot

import (
	"StorefrontGolang/internal/entity"
)

// ContextStore is the single mutable conversational mode cell. One instance
// belongs to one conversation turn; turns are serialized by the caller, so
// no locking is needed here.
type ContextStore struct {
	current entity.ChatContext
}

func NewContextStore(initial entity.ChatContext) *ContextStore {
	return &ContextStore{current: initial}
}

func (s *ContextStore) Get() entity.ChatContext {
	return s.current
}

func (s *ContextStore) Set(ctx entity.ChatContext) {
	s.current = ctx
}

func (s *ContextStore) Reset() {
	s.current = entity.ContextNone
}
