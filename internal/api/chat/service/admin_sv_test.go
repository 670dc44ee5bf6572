package chatService

import (
	"context"
	"errors"
	"strings"
	"testing"

	"StorefrontGolang/internal/api/chat"
)

func TestAddCategory(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo, defaultSelector())

	err := service.AddCategory(context.Background(), chat.CategoryRequest{
		Name:     "tablet",
		Keywords: []string{"ipad", "tablet"},
		Listing:  "Tablets in stock:\n• iPad Air — $599",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the new category is live for the very next turn
	resp, err := service.SubmitMessage(context.Background(), "conv-1", chat.SendMessageRequest{Text: "do you have an ipad"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Message.Text, "iPad Air") {
		t.Fatalf("expected the tablet listing, got %q", resp.Message.Text)
	}
	if resp.Context != "product_search" {
		t.Fatalf("context = %q, want product_search", resp.Context)
	}

	err = service.AddCategory(context.Background(), chat.CategoryRequest{Name: "tablet", Keywords: []string{"ipad"}})
	if !errors.Is(err, chat.ErrCategoryExists) {
		t.Fatalf("err = %v, want ErrCategoryExists", err)
	}
}

func TestListCategoriesAndIntents(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo, defaultSelector())

	categories := service.ListCategories(context.Background())
	if len(categories) != 4 {
		t.Fatalf("expected the 4 built-in categories, got %d", len(categories))
	}

	intents := service.ListIntents(context.Background())
	if len(intents) != 11 {
		t.Fatalf("expected the 11 built-in intents, got %d", len(intents))
	}
	if intents[0].Name != "greeting" {
		t.Fatalf("first intent = %q, want greeting", intents[0].Name)
	}
}

func TestTestSelector(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo, defaultSelector())

	resp := service.TestSelector(context.Background(), chat.SelectorTestRequest{
		Text:    "My Screen Is CRACKED!",
		Context: "none",
	})
	if resp.CleanedText != "my screen is cracked" {
		t.Fatalf("cleaned text = %q", resp.CleanedText)
	}
	if resp.NextContext != "repair_booking" {
		t.Fatalf("next context = %q, want repair_booking", resp.NextContext)
	}

	// dry runs never persist anything
	if repo.saves != 0 {
		t.Fatalf("selector test wrote %d snapshots, want 0", repo.saves)
	}

	// an unknown context name falls back to none
	resp = service.TestSelector(context.Background(), chat.SelectorTestRequest{
		Text:    "warranty",
		Context: "garbage",
	})
	if resp.Context != "none" {
		t.Fatalf("context = %q, want none", resp.Context)
	}
}
