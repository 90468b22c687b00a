package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T) *Store {
	t.Helper()
	p, err := SampleSource{}.Fetch(context.Background())
	require.NoError(t, err)
	s, err := New(p)
	require.NoError(t, err)
	return s
}

func TestSampleStore(t *testing.T) {
	s := loadSample(t)

	assert.Equal(t, map[Kind]int{KindCharacter: 3, KindArchive: 2, KindBlog: 2}, s.Counts())

	site := s.Site()
	assert.Equal(t, "창작자 개인 홈페이지", site.Title)
	require.Len(t, site.Navigation, 6)
	assert.Equal(t, NavItem{Href: "index.html", Label: "Top"}, site.Navigation[0])
}

func TestFindByID(t *testing.T) {
	s := loadSample(t)

	r, err := s.FindByID(KindCharacter, 2)
	require.NoError(t, err)
	c, ok := r.(*Character)
	require.True(t, ok, "expected *Character, got %T", r)
	assert.Equal(t, "아리온", c.Name)
	assert.Equal(t, "바람의 검사", c.Title)
	assert.Equal(t, Stats{Combat: 5, Magic: 3, Wisdom: 3}, c.Stats)

	_, err = s.FindByID(KindCharacter, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	// Ids are scoped to their collection.
	_, err = s.FindByID(KindBlog, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionPreservesOrderAndIsACopy(t *testing.T) {
	s := loadSample(t)

	chars := s.Collection(KindCharacter)
	require.Len(t, chars, 3)
	for i, r := range chars {
		assert.Equal(t, i+1, r.Common().ID)
	}

	chars[0] = nil
	assert.NotNil(t, s.Collection(KindCharacter)[0])
}

func TestBodyFieldsMapToBase(t *testing.T) {
	s := loadSample(t)

	a, err := s.FindByID(KindArchive, 1)
	require.NoError(t, err)
	arc := a.(*Archive)
	assert.Contains(t, arc.Body, "고요한 밤")
	assert.Equal(t, "디지털 아트", arc.Genre)
	assert.Equal(t, "Photoshop, iPad", arc.Tools)

	b, err := s.FindByID(KindBlog, 2)
	require.NoError(t, err)
	post := b.(*BlogPost)
	assert.Equal(t, "아트 기법", post.Category)
	assert.Equal(t, []string{"색채학", "달빛", "아트 기법"}, post.Tags)
	assert.Equal(t, 892, post.Views)
	assert.Contains(t, post.Body, "달빛을 표현할 때")
}

func TestSortByDateDesc(t *testing.T) {
	records := []Record{
		&Archive{Base: Base{ID: 1}, Date: "2024.07.22"},
		&Archive{Base: Base{ID: 2}, Date: "bad"},
		&Archive{Base: Base{ID: 3}, Date: "2024.08.15"},
		&Archive{Base: Base{ID: 4}, Date: "2024.07.22"},
	}

	sorted := SortByDateDesc(records)

	var ids []int
	for _, r := range sorted {
		ids = append(ids, r.Common().ID)
	}
	assert.Equal(t, []int{3, 1, 4, 2}, ids)
	assert.Equal(t, 1, records[0].Common().ID, "input must not be reordered")
}

func TestNewRejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    string
	}{
		{
			name:    "duplicate id",
			payload: Payload{Characters: []CharacterDoc{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}}},
			want:    "duplicate id 1",
		},
		{
			name:    "non-positive id",
			payload: Payload{BlogPosts: []BlogPostDoc{{ID: 0, Title: "x"}}},
			want:    "not positive",
		},
		{
			name:    "bad archive date",
			payload: Payload{Archives: []ArchiveDoc{{ID: 1, Title: "x", Date: "2024-08-15"}}},
			want:    "not YYYY.MM.DD",
		},
		{
			name:    "stat out of range",
			payload: Payload{Characters: []CharacterDoc{{ID: 1, Stats: StatsDoc{Magic: 6}}}},
			want:    "magic 6 out of range",
		},
		{
			name:    "reserved blog category",
			payload: Payload{BlogPosts: []BlogPostDoc{{ID: 1, Title: "x", Category: "a"}, {ID: 2, Title: "y", Category: "all"}}},
			want:    `blog post 2: category "all" is reserved`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&tt.payload)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheckStatsReportsEveryViolationInOrder(t *testing.T) {
	c := &Character{Base: Base{ID: 4}, Stats: Stats{Combat: -1, Magic: 3, Wisdom: 9}}

	for i := 0; i < 5; i++ {
		err := checkStats(c)
		require.Error(t, err)
		assert.Equal(t,
			"character 4: combat -1 out of range 0-5\ncharacter 4: wisdom 9 out of range 0-5",
			err.Error())
	}
	assert.NoError(t, checkStats(&Character{Stats: Stats{Combat: 0, Magic: 5, Wisdom: 2}}))
}

func TestNavigationLabelFallback(t *testing.T) {
	s, err := New(&Payload{Site: SiteDoc{Navigation: []NavDoc{
		{Href: "a.html", Text: "A"},
		{Href: "b.html", Label: "B", Text: "ignored"},
	}}})
	require.NoError(t, err)
	assert.Equal(t, []NavItem{{Href: "a.html", Label: "A"}, {Href: "b.html", Label: "B"}}, s.Site().Navigation)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("archive")
	require.NoError(t, err)
	assert.Equal(t, KindArchive, k)

	_, err = ParseKind("world")
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "루나", DisplayName(&Character{Base: Base{Title: "달의 마법사"}, Name: "루나"}))
	assert.Equal(t, "달빛 아래", DisplayName(&Archive{Base: Base{Title: "달빛 아래"}}))
}

func TestDocRoundTrip(t *testing.T) {
	s := loadSample(t)
	for _, k := range Kinds {
		for _, r := range s.Collection(k) {
			var again Record
			switch d := Doc(r).(type) {
			case CharacterDoc:
				again = d.record()
			case ArchiveDoc:
				again = d.record()
			case BlogPostDoc:
				again = d.record()
			default:
				t.Fatalf("unexpected doc %T", d)
			}
			assert.Equal(t, r, again)
		}
	}
}
