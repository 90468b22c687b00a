package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ziadkadry99/folio/internal/content"
)

const (
	emptyListMessage     = "등록된 항목이 없습니다."
	emptyCategoryMessage = "해당 카테고리에 포스트가 없습니다. (찾는 카테고리: %q)"
)

// itemData is what an item fragment sees.
type itemData struct {
	R    content.Record
	Href string
}

// RenderList replaces the contents of c with one summary item per record, in
// order. onSelect gives the navigation target for a record id. An empty list
// leaves only the empty-state message. On error c is left untouched.
func (r *Renderer) RenderList(c *Container, records []content.Record, onSelect func(id int) string) error {
	items := make([]template.HTML, 0, len(records))
	for _, rec := range records {
		name := "item-" + string(rec.Kind())
		h, err := r.fragment(name, itemData{R: rec, Href: onSelect(rec.Common().ID)})
		if err != nil {
			return err
		}
		items = append(items, h)
	}
	var note template.HTML
	if len(records) == 0 {
		var err error
		if note, err = r.fragment("empty-list", emptyListMessage); err != nil {
			return err
		}
	}

	c.Reset()
	for _, h := range items {
		c.Append(h)
	}
	c.SetNote(note)
	return nil
}

// categoryLink is one rendered entry of the category list.
type categoryLink struct {
	CategoryCount
	Href     string
	Fragment string
}

// RenderCategories replaces the contents of c with the category list of f.
func (r *Renderer) RenderCategories(c *Container, f *CategoryFilter) error {
	c.Reset()
	cats := f.Categories()
	links := make([]categoryLink, 0, len(cats))
	for _, cc := range cats {
		links = append(links, categoryLink{
			CategoryCount: cc,
			Href:          r.links.Category(cc.Name),
			Fragment:      r.links.Fragment(cc.Name),
		})
	}
	h, err := r.fragment("category-list", links)
	if err != nil {
		return err
	}
	c.Append(h)
	return nil
}

// renderBlogList fills c with the posts f selects. An unknown category names
// itself in the empty-state message.
func (r *Renderer) renderBlogList(c *Container, posts []content.Record, f *CategoryFilter) error {
	visible := f.Apply(posts)
	if err := r.RenderList(c, visible, r.detailLink(content.KindBlog)); err != nil {
		return err
	}
	if len(visible) == 0 && f.Selected() != AllCategories {
		note, err := r.fragment("empty-list", fmt.Sprintf(emptyCategoryMessage, f.Selected()))
		if err != nil {
			return err
		}
		c.SetNote(note)
	}
	return nil
}

func (r *Renderer) detailLink(k content.Kind) func(int) string {
	return func(id int) string { return r.links.Detail(k, id) }
}

// fragment executes a named fragment template.
func (r *Renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.theme.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
