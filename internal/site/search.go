package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ziadkadry99/folio/internal/content"
)

// maxSearchContent caps the body text kept per entry.
const maxSearchContent = 2000

// SearchEntry represents a single searchable record.
type SearchEntry struct {
	Kind     content.Kind `json:"kind"`
	ID       int          `json:"id"`
	Path     string       `json:"path"`
	Title    string       `json:"title"`
	Summary  string       `json:"summary"`
	Category string       `json:"category,omitempty"`
	Tags     []string     `json:"tags,omitempty"`
	Content  string       `json:"content"`
}

// BuildSearchIndex builds one entry per record, linking through links.
func BuildSearchIndex(store *content.Store, links Linker) []SearchEntry {
	var entries []SearchEntry
	for _, k := range content.Kinds {
		for _, r := range store.Collection(k) {
			b := r.Common()
			entry := SearchEntry{
				Kind:    k,
				ID:      b.ID,
				Path:    links.Detail(k, b.ID),
				Title:   content.DisplayName(r),
				Summary: b.Description,
				Content: truncateRunes(b.Body, maxSearchContent),
			}
			if p, ok := r.(*content.BlogPost); ok {
				entry.Category = p.Category
				entry.Tags = p.Tags
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

// Search returns the entries whose title, summary, category or tags contain
// q, case-insensitively. An empty query matches nothing.
func Search(entries []SearchEntry, q string) []SearchEntry {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []SearchEntry
	for _, e := range entries {
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e SearchEntry, q string) bool {
	for _, s := range []string{e.Title, e.Summary, e.Category} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
