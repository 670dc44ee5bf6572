package bot

import (
	"errors"
	"testing"
)

func TestCategoryForFirstMatchWins(t *testing.T) {
	taxonomy := NewTaxonomy([]Category{
		{Name: "mobile", Keywords: []string{"iphone", "phone"}},
		{Name: "laptop", Keywords: []string{"laptop", "macbook"}},
	})

	// text matches both categories; declaration order decides
	category, ok := taxonomy.CategoryFor("should I get an iphone or a laptop")
	if !ok {
		t.Fatal("expected a category match")
	}
	if category.Name != "mobile" {
		t.Fatalf("expected first declared category to win, got %q", category.Name)
	}
}

func TestCategoryFor(t *testing.T) {
	taxonomy := DefaultTaxonomy()

	tests := []struct {
		name    string
		text    string
		want    string
		wantHit bool
	}{
		{name: "mobile keyword", text: "iphone 15 price", want: "mobile", wantHit: true},
		{name: "case insensitive", text: "MACBOOK air", want: "laptop", wantHit: true},
		{name: "watch keyword", text: "looking for a smartwatch", want: "watch", wantHit: true},
		{name: "accessory keyword", text: "need a usb charger", want: "accessory", wantHit: true},
		{name: "no category", text: "tell me a joke", wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := taxonomy.CategoryFor(tt.text)
			if ok != tt.wantHit {
				t.Fatalf("CategoryFor(%q) hit = %v, want %v", tt.text, ok, tt.wantHit)
			}
			if ok && category.Name != tt.want {
				t.Fatalf("CategoryFor(%q) = %q, want %q", tt.text, category.Name, tt.want)
			}
		})
	}
}

func TestAddCategory(t *testing.T) {
	taxonomy := NewTaxonomy([]Category{
		{Name: "mobile", Keywords: []string{"iphone"}},
	})

	if err := taxonomy.AddCategory(Category{Name: "tablet", Keywords: []string{"ipad", "tablet"}}); err != nil {
		t.Fatalf("unexpected error adding category: %v", err)
	}

	category, ok := taxonomy.CategoryFor("is the ipad in stock")
	if !ok || category.Name != "tablet" {
		t.Fatalf("expected added category to match, got %v ok=%v", category.Name, ok)
	}

	// appended categories never shadow earlier declarations
	category, ok = taxonomy.CategoryFor("iphone or tablet")
	if !ok || category.Name != "mobile" {
		t.Fatalf("expected earlier category to keep winning, got %q", category.Name)
	}

	if err := taxonomy.AddCategory(Category{Name: "tablet"}); !errors.Is(err, ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	taxonomy := NewTaxonomy([]Category{
		{Name: "mobile", Keywords: []string{"iphone"}},
	})

	categories := taxonomy.Categories()
	categories[0].Name = "mutated"

	if got := taxonomy.Categories()[0].Name; got != "mobile" {
		t.Fatalf("expected internal table untouched, got %q", got)
	}
}
