package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Verify tables exist by counting rows in each one.
	tables := []string{
		"site", "navigation", "characters", "archives",
		"blog_posts", "blog_tags", "imports",
	}

	for _, table := range tables {
		var count int
		err := d.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "folio.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer d.Close()

	if d.Path() != path {
		t.Errorf("Path() = %q, want %q", d.Path(), path)
	}
}

func TestStatRangeEnforced(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	_, err = d.Exec(`INSERT INTO characters (id, position, name, combat) VALUES (1, 0, 'x', 6)`)
	if err == nil {
		t.Error("expected CHECK constraint failure for combat = 6")
	}
}

func TestSingleSiteRow(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO site (id, title) VALUES (1, 'folio')`); err != nil {
		t.Fatalf("inserting site row: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO site (id, title) VALUES (2, 'other')`); err == nil {
		t.Error("expected CHECK constraint failure for a second site row")
	}
}

func TestBlogTagsCascade(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	for _, stmt := range []string{
		`INSERT INTO blog_posts (id, position, title) VALUES (7, 0, 'post')`,
		`INSERT INTO blog_tags (post_id, position, tag) VALUES (7, 0, 'a'), (7, 1, 'b')`,
		`DELETE FROM blog_posts WHERE id = 7`,
	} {
		if _, err := d.Exec(stmt); err != nil {
			t.Fatalf("%s: %v", stmt, err)
		}
	}

	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM blog_tags`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("blog_tags has %d rows after deleting the post, want 0", n)
	}
}
