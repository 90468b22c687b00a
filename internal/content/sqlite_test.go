package content

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/folio/internal/db"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	d, err := db.OpenMemory()
	require.NoError(t, err)
	defer d.Close()

	want, err := SampleSource{}.Fetch(ctx)
	require.NoError(t, err)

	res, err := SaveToDB(ctx, d, want, "sample")
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 3, res.Characters)

	got, err := SQLiteSource{DB: d}.Fetch(ctx)
	require.NoError(t, err)

	wantStore, err := New(want)
	require.NoError(t, err)
	gotStore, err := New(got)
	require.NoError(t, err)

	if diff := cmp.Diff(wantStore.Site(), gotStore.Site()); diff != "" {
		t.Errorf("site mismatch (-want +got):\n%s", diff)
	}
	for _, k := range Kinds {
		if diff := cmp.Diff(wantStore.Collection(k), gotStore.Collection(k)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", k, diff)
		}
	}
}

func TestSQLiteEmptyIsMissing(t *testing.T) {
	d, err := db.OpenMemory()
	require.NoError(t, err)
	defer d.Close()

	_, err = SQLiteSource{DB: d}.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrPayloadMissing)
}

func TestSaveToDBReplacesContent(t *testing.T) {
	ctx := context.Background()
	d, err := db.OpenMemory()
	require.NoError(t, err)
	defer d.Close()

	sample, err := SampleSource{}.Fetch(ctx)
	require.NoError(t, err)
	_, err = SaveToDB(ctx, d, sample, "first")
	require.NoError(t, err)

	small := &Payload{
		Site:      SiteDoc{Title: "Second"},
		BlogPosts: []BlogPostDoc{{ID: 9, Title: "Only", Tags: []string{"x"}}},
	}
	_, err = SaveToDB(ctx, d, small, "second")
	require.NoError(t, err)

	s, err := Load(ctx, SQLiteSource{DB: d}, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Second", s.Site().Title)
	assert.Equal(t, map[Kind]int{KindCharacter: 0, KindArchive: 0, KindBlog: 1}, s.Counts())

	var imports int
	require.NoError(t, d.QueryRow(`SELECT COUNT(*) FROM imports`).Scan(&imports))
	assert.Equal(t, 2, imports)
}

func TestSaveToDBRejectsInvalid(t *testing.T) {
	d, err := db.OpenMemory()
	require.NoError(t, err)
	defer d.Close()

	_, err = SaveToDB(context.Background(), d, &Payload{Characters: []CharacterDoc{{ID: -1}}}, "bad")
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
