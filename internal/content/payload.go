package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Payload is the wire form of the content: the document a Source decodes.
// Key names follow the original data file.
type Payload struct {
	Site       SiteDoc       `json:"site" yaml:"site"`
	Characters []CharacterDoc `json:"characters" yaml:"characters"`
	Archives   []ArchiveDoc   `json:"archives" yaml:"archives"`
	BlogPosts  []BlogPostDoc  `json:"blogPosts" yaml:"blogPosts"`
}

// SiteDoc is the wire form of Site.
type SiteDoc struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Copyright   string   `json:"copyright" yaml:"copyright"`
	Navigation  []NavDoc `json:"navigation" yaml:"navigation"`
}

// NavDoc accepts both "text" and "label" for the link text.
type NavDoc struct {
	Href  string `json:"href" yaml:"href"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

type StatsDoc struct {
	Combat int `json:"combat" yaml:"combat"`
	Magic  int `json:"magic" yaml:"magic"`
	Wisdom int `json:"wisdom" yaml:"wisdom"`
}

type CharacterDoc struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Title       string   `json:"title" yaml:"title"`
	Image       string   `json:"image" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	Story       string   `json:"story" yaml:"story"`
	FullImage   string   `json:"fullImage" yaml:"fullImage"`
	Stats       StatsDoc `json:"stats" yaml:"stats"`
}

type ArchiveDoc struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Type        string `json:"type" yaml:"type"`
	Date        string `json:"date" yaml:"date"`
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description" yaml:"description"`
	Details     string `json:"details" yaml:"details"`
	FullImage   string `json:"fullImage" yaml:"fullImage"`
	Genre       string `json:"genre,omitempty" yaml:"genre,omitempty"`
	Duration    string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Tools       string `json:"tools,omitempty" yaml:"tools,omitempty"`
}

type BlogPostDoc struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Date        string   `json:"date" yaml:"date"`
	Image       string   `json:"image" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	Content     string   `json:"content" yaml:"content"`
	FullImage   string   `json:"fullImage" yaml:"fullImage"`
	Tags        []string `json:"tags" yaml:"tags"`
	ReadTime    string   `json:"readTime" yaml:"readTime"`
	Views       int      `json:"views" yaml:"views"`
}

func (d SiteDoc) site() Site {
	s := Site{Title: d.Title, Description: d.Description, Copyright: d.Copyright}
	for _, n := range d.Navigation {
		label := n.Label
		if label == "" {
			label = n.Text
		}
		s.Navigation = append(s.Navigation, NavItem{Href: n.Href, Label: label})
	}
	return s
}

func (d CharacterDoc) record() *Character {
	return &Character{
		Base: Base{
			ID:          d.ID,
			Title:       d.Title,
			Description: strings.TrimSpace(d.Description),
			Body:        strings.TrimSpace(d.Story),
			Image:       d.Image,
			FullImage:   d.FullImage,
		},
		Name:  d.Name,
		Stats: Stats{Combat: d.Stats.Combat, Magic: d.Stats.Magic, Wisdom: d.Stats.Wisdom},
	}
}

func (d ArchiveDoc) record() *Archive {
	return &Archive{
		Base: Base{
			ID:          d.ID,
			Title:       d.Title,
			Description: strings.TrimSpace(d.Description),
			Body:        strings.TrimSpace(d.Details),
			Image:       d.Image,
			FullImage:   d.FullImage,
		},
		Type:     d.Type,
		Date:     d.Date,
		Genre:    d.Genre,
		Duration: d.Duration,
		Tools:    d.Tools,
	}
}

func (d BlogPostDoc) record() *BlogPost {
	return &BlogPost{
		Base: Base{
			ID:          d.ID,
			Title:       d.Title,
			Description: strings.TrimSpace(d.Description),
			Body:        strings.TrimSpace(d.Content),
			Image:       d.Image,
			FullImage:   d.FullImage,
		},
		Category: d.Category,
		Date:     d.Date,
		Tags:     append([]string(nil), d.Tags...),
		ReadTime: d.ReadTime,
		Views:    d.Views,
	}
}

// Doc returns the wire form of a record, as served by the JSON API.
func Doc(r Record) any {
	switch r := r.(type) {
	case *Character:
		return CharacterDoc{
			ID:          r.ID,
			Name:        r.Name,
			Title:       r.Title,
			Image:       r.Image,
			Description: r.Description,
			Story:       r.Body,
			FullImage:   r.FullImage,
			Stats:       StatsDoc{Combat: r.Stats.Combat, Magic: r.Stats.Magic, Wisdom: r.Stats.Wisdom},
		}
	case *Archive:
		return ArchiveDoc{
			ID:          r.ID,
			Title:       r.Title,
			Type:        r.Type,
			Date:        r.Date,
			Image:       r.Image,
			Description: r.Description,
			Details:     r.Body,
			FullImage:   r.FullImage,
			Genre:       r.Genre,
			Duration:    r.Duration,
			Tools:       r.Tools,
		}
	case *BlogPost:
		return BlogPostDoc{
			ID:          r.ID,
			Title:       r.Title,
			Category:    r.Category,
			Date:        r.Date,
			Image:       r.Image,
			Description: r.Description,
			Content:     r.Body,
			FullImage:   r.FullImage,
			Tags:        append([]string(nil), r.Tags...),
			ReadTime:    r.ReadTime,
			Views:       r.Views,
		}
	}
	return nil
}

// DecodePayload decodes raw content. The format is picked from the file
// name's extension: .json, .yml/.yaml, or .js for the window.websiteData
// wrapper the original site shipped.
func DecodePayload(name string, data []byte) (*Payload, error) {
	var p Payload
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("%w: decoding %s: %v", ErrInvalidPayload, name, err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("%w: decoding %s: %v", ErrInvalidPayload, name, err)
		}
	case ".js":
		obj, err := extractObjectLiteral(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, name, err)
		}
		if err := json.Unmarshal(obj, &p); err != nil {
			return nil, fmt.Errorf("%w: decoding %s: %v", ErrInvalidPayload, name, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported payload format %q", ErrInvalidPayload, ext)
	}
	return &p, nil
}

// extractObjectLiteral returns the outermost {...} of a script that assigns
// the payload to a global.
func extractObjectLiteral(data []byte) ([]byte, error) {
	start := bytes.IndexByte(data, '{')
	end := bytes.LastIndexByte(data, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no object literal found")
	}
	return data[start : end+1], nil
}
