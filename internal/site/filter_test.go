package site

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ziadkadry99/folio/internal/content"
)

func blogPosts() []content.Record {
	return []content.Record{
		&content.BlogPost{Base: content.Base{ID: 1}, Category: "창작 과정"},
		&content.BlogPost{Base: content.Base{ID: 2}, Category: "아트 기법"},
		&content.BlogPost{Base: content.Base{ID: 3}, Category: "창작 과정"},
	}
}

func ids(records []content.Record) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.Common().ID)
	}
	return out
}

func TestCategoryFilterApply(t *testing.T) {
	posts := blogPosts()
	tests := []struct {
		selected string
		want     []int
	}{
		{"", []int{1, 2, 3}},
		{AllCategories, []int{1, 2, 3}},
		{"창작 과정", []int{1, 3}},
		{"아트 기법", []int{2}},
		{"없음", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.selected, func(t *testing.T) {
			f := NewCategoryFilter(posts, tt.selected)
			assert.Equal(t, tt.want, ids(f.Apply(posts)))
		})
	}
}

func TestCategoryFilterCategories(t *testing.T) {
	f := NewCategoryFilter(blogPosts(), "아트 기법")
	assert.Equal(t, []CategoryCount{
		{Name: AllCategories, Label: "전체", Count: 3},
		{Name: "창작 과정", Label: "창작 과정", Count: 2},
		{Name: "아트 기법", Label: "아트 기법", Count: 1, Active: true},
	}, f.Categories())
}

func TestCategoryFilterQueryRoundTrip(t *testing.T) {
	posts := blogPosts()
	f := NewCategoryFilter(posts, "아트 기법")

	q, err := url.ParseQuery(f.Query().Encode())
	assert.NoError(t, err)
	reloaded := NewCategoryFilter(posts, q.Get("category"))

	assert.Equal(t, f.Selected(), reloaded.Selected())
	assert.Equal(t, f.Categories(), reloaded.Categories())
	assert.Equal(t, ids(f.Apply(posts)), ids(reloaded.Apply(posts)))
}

func TestCategoryFilterAllHasEmptyQuery(t *testing.T) {
	f := NewCategoryFilter(blogPosts(), "창작 과정")
	f.Select(AllCategories)
	assert.Empty(t, f.Query().Encode())
	assert.True(t, f.Categories()[0].Active)
}

func TestCategoryFilterListsSentinelOnce(t *testing.T) {
	posts := append(blogPosts(), &content.BlogPost{Base: content.Base{ID: 9}, Category: AllCategories})
	f := NewCategoryFilter(posts, "")

	var names []string
	for _, c := range f.Categories() {
		names = append(names, c.Name)
	}
	assert.Equal(t, 1, countOf(names, AllCategories))
	assert.Equal(t, len(posts), f.Categories()[0].Count)
}

func countOf(names []string, name string) int {
	n := 0
	for _, s := range names {
		if s == name {
			n++
		}
	}
	return n
}
