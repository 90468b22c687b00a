package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ziadkadry99/folio/internal/db"
)

// SQLiteSource reads content written by SaveToDB.
type SQLiteSource struct {
	DB *db.DB
}

func (s SQLiteSource) String() string { return "sqlite:" + s.DB.Path() }

// Fetch reads every content table. A database without a site row has never
// been imported into and reports ErrPayloadMissing.
func (s SQLiteSource) Fetch(ctx context.Context) (*Payload, error) {
	var p Payload

	err := s.DB.QueryRowContext(ctx,
		`SELECT title, description, copyright FROM site WHERE id = 1`).
		Scan(&p.Site.Title, &p.Site.Description, &p.Site.Copyright)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s has no imported content: %w", s.DB.Path(), ErrPayloadMissing)
	}
	if err != nil {
		return nil, fmt.Errorf("reading site: %w", err)
	}

	if err := s.readNavigation(ctx, &p); err != nil {
		return nil, err
	}
	if err := s.readCharacters(ctx, &p); err != nil {
		return nil, err
	}
	if err := s.readArchives(ctx, &p); err != nil {
		return nil, err
	}
	if err := s.readBlogPosts(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s SQLiteSource) readNavigation(ctx context.Context, p *Payload) error {
	rows, err := s.DB.QueryContext(ctx, `SELECT href, label FROM navigation ORDER BY position`)
	if err != nil {
		return fmt.Errorf("reading navigation: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var n NavDoc
		if err := rows.Scan(&n.Href, &n.Label); err != nil {
			return fmt.Errorf("scanning navigation: %w", err)
		}
		p.Site.Navigation = append(p.Site.Navigation, n)
	}
	return rows.Err()
}

func (s SQLiteSource) readCharacters(ctx context.Context, p *Payload) error {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, title, description, story, image, full_image, combat, magic, wisdom
		FROM characters ORDER BY position`)
	if err != nil {
		return fmt.Errorf("reading characters: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c CharacterDoc
		if err := rows.Scan(&c.ID, &c.Name, &c.Title, &c.Description, &c.Story, &c.Image, &c.FullImage,
			&c.Stats.Combat, &c.Stats.Magic, &c.Stats.Wisdom); err != nil {
			return fmt.Errorf("scanning character: %w", err)
		}
		p.Characters = append(p.Characters, c)
	}
	return rows.Err()
}

func (s SQLiteSource) readArchives(ctx context.Context, p *Payload) error {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, title, type, date, description, details, image, full_image, genre, duration, tools
		FROM archives ORDER BY position`)
	if err != nil {
		return fmt.Errorf("reading archives: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a ArchiveDoc
		if err := rows.Scan(&a.ID, &a.Title, &a.Type, &a.Date, &a.Description, &a.Details, &a.Image,
			&a.FullImage, &a.Genre, &a.Duration, &a.Tools); err != nil {
			return fmt.Errorf("scanning archive: %w", err)
		}
		p.Archives = append(p.Archives, a)
	}
	return rows.Err()
}

func (s SQLiteSource) readBlogPosts(ctx context.Context, p *Payload) error {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, title, category, date, description, content, image, full_image, read_time, views
		FROM blog_posts ORDER BY position`)
	if err != nil {
		return fmt.Errorf("reading blog posts: %w", err)
	}
	byID := make(map[int]int)
	for rows.Next() {
		var b BlogPostDoc
		if err := rows.Scan(&b.ID, &b.Title, &b.Category, &b.Date, &b.Description, &b.Content, &b.Image,
			&b.FullImage, &b.ReadTime, &b.Views); err != nil {
			rows.Close()
			return fmt.Errorf("scanning blog post: %w", err)
		}
		byID[b.ID] = len(p.BlogPosts)
		p.BlogPosts = append(p.BlogPosts, b)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	tags, err := s.DB.QueryContext(ctx, `SELECT post_id, tag FROM blog_tags ORDER BY post_id, position`)
	if err != nil {
		return fmt.Errorf("reading blog tags: %w", err)
	}
	defer tags.Close()
	for tags.Next() {
		var (
			postID int
			tag    string
		)
		if err := tags.Scan(&postID, &tag); err != nil {
			return fmt.Errorf("scanning blog tag: %w", err)
		}
		if i, ok := byID[postID]; ok {
			p.BlogPosts[i].Tags = append(p.BlogPosts[i].Tags, tag)
		}
	}
	return tags.Err()
}

// ImportResult describes one SaveToDB run.
type ImportResult struct {
	ID         string
	Characters int
	Archives   int
	BlogPosts  int
}

// SaveToDB validates p and replaces all content tables with it in a single
// transaction. source is recorded in the imports log.
func SaveToDB(ctx context.Context, d *db.DB, p *Payload, source string) (*ImportResult, error) {
	if _, err := New(p); err != nil {
		return nil, err
	}

	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"blog_tags", "blog_posts", "archives", "characters", "navigation", "site"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return nil, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO site (id, title, description, copyright) VALUES (1, ?, ?, ?)`,
		p.Site.Title, p.Site.Description, p.Site.Copyright); err != nil {
		return nil, fmt.Errorf("inserting site: %w", err)
	}
	for i, n := range p.Site.Navigation {
		label := n.Label
		if label == "" {
			label = n.Text
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO navigation (position, href, label) VALUES (?, ?, ?)`,
			i, n.Href, label); err != nil {
			return nil, fmt.Errorf("inserting navigation: %w", err)
		}
	}
	for i, c := range p.Characters {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO characters (id, position, name, title, description, story, image, full_image, combat, magic, wisdom)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, i, c.Name, c.Title, c.Description, c.Story, c.Image, c.FullImage,
			c.Stats.Combat, c.Stats.Magic, c.Stats.Wisdom); err != nil {
			return nil, fmt.Errorf("inserting character %d: %w", c.ID, err)
		}
	}
	for i, a := range p.Archives {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO archives (id, position, title, type, date, description, details, image, full_image, genre, duration, tools)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, i, a.Title, a.Type, a.Date, a.Description, a.Details, a.Image, a.FullImage,
			a.Genre, a.Duration, a.Tools); err != nil {
			return nil, fmt.Errorf("inserting archive %d: %w", a.ID, err)
		}
	}
	for i, b := range p.BlogPosts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO blog_posts (id, position, title, category, date, description, content, image, full_image, read_time, views)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.ID, i, b.Title, b.Category, b.Date, b.Description, b.Content, b.Image, b.FullImage,
			b.ReadTime, b.Views); err != nil {
			return nil, fmt.Errorf("inserting blog post %d: %w", b.ID, err)
		}
		for j, tag := range b.Tags {
			if _, err := tx.ExecContext(ctx, `INSERT INTO blog_tags (post_id, position, tag) VALUES (?, ?, ?)`,
				b.ID, j, tag); err != nil {
				return nil, fmt.Errorf("inserting tag for blog post %d: %w", b.ID, err)
			}
		}
	}

	res := &ImportResult{
		ID:         uuid.NewString(),
		Characters: len(p.Characters),
		Archives:   len(p.Archives),
		BlogPosts:  len(p.BlogPosts),
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO imports (id, source, characters, archives, blog_posts) VALUES (?, ?, ?, ?, ?)`,
		res.ID, source, res.Characters, res.Archives, res.BlogPosts); err != nil {
		return nil, fmt.Errorf("recording import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing import: %w", err)
	}
	return res, nil
}
