package site

import (
	"fmt"
	"html/template"

	"github.com/ziadkadry99/folio/internal/content"
)

// StatSlots returns content.MaxStat indicators with the first v filled.
// v is clamped to the valid range.
func StatSlots(v int) []bool {
	v = max(0, min(v, content.MaxStat))
	slots := make([]bool, content.MaxStat)
	for i := 0; i < v; i++ {
		slots[i] = true
	}
	return slots
}

// statRow is one rendered stat of a character.
type statRow struct {
	Name  string
	Label string
	Slots []bool
}

func statRows(s content.Stats) []statRow {
	return []statRow{
		{Name: "combat", Label: "Combat", Slots: StatSlots(s.Combat)},
		{Name: "magic", Label: "Magic", Slots: StatSlots(s.Magic)},
		{Name: "wisdom", Label: "Wisdom", Slots: StatSlots(s.Wisdom)},
	}
}

// detailData is what a detail fragment sees.
type detailData struct {
	R     content.Record
	Body  template.HTML
	Back  string
	Stats []statRow
}

// RenderDetail replaces the contents of c with the full view of rec. back is
// the list page to return to.
func (r *Renderer) RenderDetail(c *Container, rec content.Record, back string) error {
	body, err := renderMarkdown(r.md, rec.Common().Body)
	if err != nil {
		return fmt.Errorf("%s %d body: %w", rec.Kind(), rec.Common().ID, err)
	}
	data := detailData{R: rec, Body: body, Back: back}
	if ch, ok := rec.(*content.Character); ok {
		data.Stats = statRows(ch.Stats)
	}

	h, err := r.fragment("detail-"+string(rec.Kind()), data)
	if err != nil {
		return err
	}
	c.Reset()
	c.Append(h)
	return nil
}

// RenderNotFound replaces the contents of c with the not-found state for an
// id that resolved to no record of kind k.
func (r *Renderer) RenderNotFound(c *Container, k content.Kind, requestedID, back string) error {
	h, err := r.fragment("not-found", struct {
		Kind content.Kind
		ID   string
		Back string
	}{k, requestedID, back})
	if err != nil {
		return err
	}
	c.Reset()
	c.Append(h)
	return nil
}
