package hint

import (
	"fmt"

	"svw.info/anagram/internal/domain"
)

// Category groups a fixed list of words under a hint label.
type Category struct {
	Name  string
	Words []string
}

// DefaultCategories is the category table used for category hints. Lookup order
// follows the slice order.
var DefaultCategories = []Category{
	{Name: "animal", Words: []string{"cat", "dog", "bird", "fish", "bear", "lion", "wolf"}},
	{Name: "object", Words: []string{"house", "tree", "book", "table", "chair", "phone", "car"}},
	{Name: "nature", Words: []string{"water", "fire", "earth", "wind", "star", "moon", "sun"}},
	{Name: "color", Words: []string{"red", "blue", "green", "black", "white"}},
}

// Builder produces per-scramble hints for a hint style.
type Builder struct {
	category map[string]string
}

// NewBuilder indexes the given category table. A nil table uses DefaultCategories.
func NewBuilder(categories []Category) *Builder {
	if categories == nil {
		categories = DefaultCategories
	}
	idx := make(map[string]string)
	for _, c := range categories {
		for _, w := range c.Words {
			if _, seen := idx[w]; !seen {
				idx[w] = c.Name
			}
		}
	}
	return &Builder{category: idx}
}

// Hints returns hints keyed by domain.HintKey for each word, or nil for HintNone.
func (b *Builder) Hints(words []string, style domain.HintStyle) map[string]string {
	if style == domain.HintNone || len(words) == 0 {
		return nil
	}
	out := make(map[string]string, len(words))
	for i, w := range words {
		key := domain.HintKey(i + 1)
		switch style {
		case domain.HintCategory:
			out[key] = "category: " + b.Category(w)
		case domain.HintLength:
			out[key] = fmt.Sprintf("length: %d letters", len(w))
		}
	}
	return out
}

// Category names the category of w, or "other".
func (b *Builder) Category(w string) string {
	if name, ok := b.category[w]; ok {
		return name
	}
	return "other"
}
