package content

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DateLayout is the layout of archive and blog dates.
const DateLayout = "2006.01.02"

// MaxStat is the upper bound of a character stat.
const MaxStat = 5

// ReservedCategory is the blog category value that means "every category".
// No post may use it as its own category.
const ReservedCategory = "all"

// Store is the read-only content collection. It is built once by New and
// never mutated afterwards; reloading content means building a new Store.
type Store struct {
	site        Site
	collections map[Kind][]Record
	index       map[Kind]map[int]Record
}

// New validates a payload and indexes its records by id.
func New(p *Payload) (*Store, error) {
	if p == nil {
		return nil, ErrPayloadMissing
	}

	s := &Store{
		site:        p.Site.site(),
		collections: make(map[Kind][]Record, len(Kinds)),
		index:       make(map[Kind]map[int]Record, len(Kinds)),
	}

	var errs []error
	for _, d := range p.Characters {
		c := d.record()
		errs = append(errs, checkStats(c))
		errs = append(errs, s.add(c))
	}
	for _, d := range p.Archives {
		a := d.record()
		if _, err := time.Parse(DateLayout, a.Date); err != nil {
			errs = append(errs, fmt.Errorf("archive %d: date %q is not YYYY.MM.DD", a.ID, a.Date))
		}
		errs = append(errs, s.add(a))
	}
	for _, d := range p.BlogPosts {
		b := d.record()
		if b.Category == ReservedCategory {
			errs = append(errs, fmt.Errorf("blog post %d: category %q is reserved", b.ID, b.Category))
		}
		errs = append(errs, s.add(b))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return s, nil
}

func (s *Store) add(r Record) error {
	k, id := r.Kind(), r.Common().ID
	if id <= 0 {
		return fmt.Errorf("%s: id %d is not positive", k, id)
	}
	if s.index[k] == nil {
		s.index[k] = make(map[int]Record)
	}
	if _, dup := s.index[k][id]; dup {
		return fmt.Errorf("%s: duplicate id %d", k, id)
	}
	s.index[k][id] = r
	s.collections[k] = append(s.collections[k], r)
	return nil
}

// checkStats reports every stat outside 0-MaxStat, in combat, magic, wisdom
// order.
func checkStats(c *Character) error {
	stats := []struct {
		name  string
		value int
	}{
		{"combat", c.Stats.Combat},
		{"magic", c.Stats.Magic},
		{"wisdom", c.Stats.Wisdom},
	}
	var errs []error
	for _, st := range stats {
		if st.value < 0 || st.value > MaxStat {
			errs = append(errs, fmt.Errorf("character %d: %s %d out of range 0-%d", c.ID, st.name, st.value, MaxStat))
		}
	}
	return errors.Join(errs...)
}

// Site returns the site metadata.
func (s *Store) Site() Site { return s.site }

// Collection returns a copy of the records of kind k in collection order.
func (s *Store) Collection(k Kind) []Record {
	return append([]Record(nil), s.collections[k]...)
}

// FindByID looks up a record by id.
func (s *Store) FindByID(k Kind, id int) (Record, error) {
	if r, ok := s.index[k][id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("%s %d: %w", k, id, ErrNotFound)
}

// Counts returns the number of records per kind.
func (s *Store) Counts() map[Kind]int {
	out := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		out[k] = len(s.collections[k])
	}
	return out
}

// RecordDate returns the date field of archives and blog posts.
func RecordDate(r Record) string {
	switch v := r.(type) {
	case *Archive:
		return v.Date
	case *BlogPost:
		return v.Date
	}
	return ""
}

// SortByDateDesc returns a copy of records ordered newest first. Records with
// equal dates keep their relative order; unparsable dates go last.
func SortByDateDesc(records []Record) []Record {
	out := append([]Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, errI := time.Parse(DateLayout, RecordDate(out[i]))
		tj, errJ := time.Parse(DateLayout, RecordDate(out[j]))
		switch {
		case errI != nil:
			return false
		case errJ != nil:
			return true
		}
		return ti.After(tj)
	})
	return out
}
