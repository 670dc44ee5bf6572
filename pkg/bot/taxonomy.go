package bot

import (
	"errors"
	"sync"
)

// Taxonomy holds the product category keyword table. Categories are checked
// in declaration order and the first keyword hit wins; there is no ranking
// by match count or specificity.
type Taxonomy struct {
	mu         sync.RWMutex
	categories []Category
}

func NewTaxonomy(categories []Category) *Taxonomy {
	return &Taxonomy{categories: categories}
}

// CategoryFor returns the first category, in declaration order, with any
// keyword contained in the text.
func (t *Taxonomy) CategoryFor(text string) (Category, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, category := range t.categories {
		if MatchesAny(text, category.Keywords) {
			return category, true
		}
	}
	return Category{}, false
}

func (t *Taxonomy) Categories() []Category {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

var ErrCategoryExists = errors.New("category already exists")

// AddCategory appends a category to the end of the table so existing
// first-match behavior is untouched.
func (t *Taxonomy) AddCategory(category Category) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, existing := range t.categories {
		if existing.Name == category.Name {
			return ErrCategoryExists
		}
	}
	t.categories = append(t.categories, category)
	return nil
}
