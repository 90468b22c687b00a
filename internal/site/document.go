package site

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrMissingContainer is returned when a renderer targets a mount point the
// page template does not declare.
var ErrMissingContainer = errors.New("missing container")

// Container is one mount point of a page. Renderers fill it; the page
// template emits it with {{.Mount "id"}}.
type Container struct {
	id    string
	items []template.HTML
	note  template.HTML // shown only while there are no items
}

// ID returns the container's mount id.
func (c *Container) ID() string { return c.id }

// Reset clears everything previously rendered into the container.
func (c *Container) Reset() {
	c.items = c.items[:0]
	c.note = ""
}

// Append adds one rendered item.
func (c *Container) Append(h template.HTML) { c.items = append(c.items, h) }

// SetNote sets the placeholder shown when the container has no items.
func (c *Container) SetNote(h template.HTML) { c.note = h }

// Len returns the number of rendered items.
func (c *Container) Len() int { return len(c.items) }

// HTML returns the container's markup.
func (c *Container) HTML() template.HTML {
	if len(c.items) == 0 {
		return c.note
	}
	var b strings.Builder
	for _, it := range c.items {
		b.WriteString(string(it))
	}
	return template.HTML(b.String())
}

// Document is the set of containers a page declares.
type Document struct {
	containers map[string]*Container
}

// NewDocument creates a document with the given mount ids.
func NewDocument(ids ...string) *Document {
	d := &Document{containers: make(map[string]*Container, len(ids))}
	for _, id := range ids {
		d.containers[id] = &Container{id: id}
	}
	return d
}

// Container returns the mount point with the given id.
func (d *Document) Container(id string) (*Container, error) {
	if c, ok := d.containers[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrMissingContainer, id)
}

// HTML returns the markup of a container, or nothing if it is not declared.
func (d *Document) HTML(id string) template.HTML {
	if c, ok := d.containers[id]; ok {
		return c.HTML()
	}
	return ""
}
