package bot

import (
	"testing"

	"StorefrontGolang/internal/entity"
)

func TestContextStore(t *testing.T) {
	store := NewContextStore(entity.ContextNone)

	if got := store.Get(); got != entity.ContextNone {
		t.Fatalf("fresh store context = %v, want none", got)
	}

	store.Set(entity.ContextProductSearch)
	if got := store.Get(); got != entity.ContextProductSearch {
		t.Fatalf("context after Set = %v, want product search", got)
	}

	store.Reset()
	if got := store.Get(); got != entity.ContextNone {
		t.Fatalf("context after Reset = %v, want none", got)
	}
}
