package site

import (
	"net/url"

	"github.com/ziadkadry99/folio/internal/content"
)

// AllCategories is the category sentinel that disables filtering. The store
// rejects posts that use it as a category.
const AllCategories = content.ReservedCategory

// allCategoriesLabel is how the sentinel is shown in the category list.
const allCategoriesLabel = "전체"

// CategoryCount is one entry of the blog category list.
type CategoryCount struct {
	Name   string
	Label  string
	Count  int
	Active bool
}

// CategoryFilter is the blog list's category selection. The category list
// highlight and the visible subset are both derived from the one selected
// value, so they cannot drift apart.
type CategoryFilter struct {
	selected   string
	categories []string
	counts     map[string]int
	total      int
}

// NewCategoryFilter indexes the categories of posts. An empty selection
// means AllCategories.
func NewCategoryFilter(posts []content.Record, selected string) *CategoryFilter {
	f := &CategoryFilter{counts: make(map[string]int)}
	for _, r := range posts {
		p, ok := r.(*content.BlogPost)
		if !ok {
			continue
		}
		f.total++
		if _, seen := f.counts[p.Category]; !seen && p.Category != AllCategories {
			f.categories = append(f.categories, p.Category)
		}
		f.counts[p.Category]++
	}
	f.Select(selected)
	return f
}

// Select changes the selected category.
func (f *CategoryFilter) Select(category string) {
	if category == "" {
		category = AllCategories
	}
	f.selected = category
}

// Selected returns the selected category.
func (f *CategoryFilter) Selected() string { return f.selected }

// Categories lists the sentinel followed by every category in order of first
// appearance, with post counts.
func (f *CategoryFilter) Categories() []CategoryCount {
	out := make([]CategoryCount, 0, len(f.categories)+1)
	out = append(out, CategoryCount{
		Name:   AllCategories,
		Label:  allCategoriesLabel,
		Count:  f.total,
		Active: f.selected == AllCategories,
	})
	for _, c := range f.categories {
		out = append(out, CategoryCount{
			Name:   c,
			Label:  c,
			Count:  f.counts[c],
			Active: f.selected == c,
		})
	}
	return out
}

// Apply returns the records visible under the current selection, in order.
func (f *CategoryFilter) Apply(records []content.Record) []content.Record {
	out := make([]content.Record, 0, len(records))
	for _, r := range records {
		p, ok := r.(*content.BlogPost)
		if !ok {
			continue
		}
		if f.selected == AllCategories || p.Category == f.selected {
			out = append(out, r)
		}
	}
	return out
}

// Query returns the shareable query state for the selection.
func (f *CategoryFilter) Query() url.Values {
	q := url.Values{}
	if f.selected != AllCategories {
		q.Set("category", f.selected)
	}
	return q
}
