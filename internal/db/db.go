package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB with folio-specific helpers.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens a SQLite database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenMemory creates an in-memory SQLite database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every pooled connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// Path returns the database location.
func (d *DB) Path() string { return d.path }

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// schema contains the full database schema. New tables are added here.
// position columns keep collection order, which is part of the content.
const schema = `
CREATE TABLE IF NOT EXISTS site (
    id INTEGER PRIMARY KEY CHECK(id = 1),
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    copyright TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS navigation (
    position INTEGER PRIMARY KEY,
    href TEXT NOT NULL,
    label TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS characters (
    id INTEGER PRIMARY KEY CHECK(id > 0),
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    story TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    full_image TEXT NOT NULL DEFAULT '',
    combat INTEGER NOT NULL DEFAULT 0 CHECK(combat BETWEEN 0 AND 5),
    magic INTEGER NOT NULL DEFAULT 0 CHECK(magic BETWEEN 0 AND 5),
    wisdom INTEGER NOT NULL DEFAULT 0 CHECK(wisdom BETWEEN 0 AND 5)
);

CREATE TABLE IF NOT EXISTS archives (
    id INTEGER PRIMARY KEY CHECK(id > 0),
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    details TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    full_image TEXT NOT NULL DEFAULT '',
    genre TEXT NOT NULL DEFAULT '',
    duration TEXT NOT NULL DEFAULT '',
    tools TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_archives_date ON archives(date);

CREATE TABLE IF NOT EXISTS blog_posts (
    id INTEGER PRIMARY KEY CHECK(id > 0),
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    full_image TEXT NOT NULL DEFAULT '',
    read_time TEXT NOT NULL DEFAULT '',
    views INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_blog_posts_category ON blog_posts(category);

CREATE TABLE IF NOT EXISTS blog_tags (
    post_id INTEGER NOT NULL REFERENCES blog_posts(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY(post_id, position)
);

CREATE TABLE IF NOT EXISTS imports (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    characters INTEGER NOT NULL DEFAULT 0,
    archives INTEGER NOT NULL DEFAULT 0,
    blog_posts INTEGER NOT NULL DEFAULT 0,
    imported_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`
