package content

import "fmt"

// Kind identifies one of the record collections.
type Kind string

const (
	KindCharacter Kind = "character"
	KindArchive   Kind = "archive"
	KindBlog      Kind = "blog"
)

// Kinds lists every collection in navigation order.
var Kinds = []Kind{KindCharacter, KindArchive, KindBlog}

// ParseKind converts a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindCharacter, KindArchive, KindBlog:
		return k, nil
	}
	return "", fmt.Errorf("unknown content kind %q", s)
}

// Site is the immutable site metadata shared by every page.
type Site struct {
	Title       string
	Description string
	Copyright   string
	Navigation  []NavItem
}

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Href  string
	Label string
}

// Base holds the fields every record shares.
type Base struct {
	ID          int
	Title       string
	Description string
	Body        string // long text, Markdown
	Image       string // thumbnail
	FullImage   string
}

// Record is one entry of a collection: *Character, *Archive or *BlogPost.
type Record interface {
	Kind() Kind
	Common() *Base
	record()
}

// Stats are a character's 0-5 ratings.
type Stats struct {
	Combat int
	Magic  int
	Wisdom int
}

// Character is a showcase character. Base.Title holds the epithet.
type Character struct {
	Base
	Name  string
	Stats Stats
}

// Archive is a finished work (illustration, novel, ...).
type Archive struct {
	Base
	Type     string
	Date     string // YYYY.MM.DD
	Genre    string
	Duration string
	Tools    string
}

// BlogPost is a blog entry.
type BlogPost struct {
	Base
	Category string
	Date     string
	Tags     []string
	ReadTime string
	Views    int
}

func (c *Character) Kind() Kind    { return KindCharacter }
func (c *Character) Common() *Base { return &c.Base }
func (*Character) record()         {}

func (a *Archive) Kind() Kind    { return KindArchive }
func (a *Archive) Common() *Base { return &a.Base }
func (*Archive) record()         {}

func (b *BlogPost) Kind() Kind    { return KindBlog }
func (b *BlogPost) Common() *Base { return &b.Base }
func (*BlogPost) record()         {}

// DisplayName returns the text used as a record's headline: the name for
// characters, the title otherwise.
func DisplayName(r Record) string {
	if c, ok := r.(*Character); ok && c.Name != "" {
		return c.Name
	}
	return r.Common().Title
}
