package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rahul8600/govt-job-board/internal/jobparse"
)

// ErrNotFound is returned when no post exists for a slug.
var ErrNotFound = errors.New("post not found")

// Post is one stored notification with its parsed record.
type Post struct {
	ID        string             `json:"id"`
	Slug      string             `json:"slug"`
	Engine    string             `json:"engine"`
	RawText   string             `json:"-"`
	Job       jobparse.ParsedJob `json:"job"`
	CreatedAt time.Time          `json:"createdAt"`
}

// slugAttempts bounds the numeric-suffix probe before falling back to a
// random suffix.
const slugAttempts = 20

// CreatePost persists a parsed record under a slug derived from its
// title, retrying with numeric suffixes when the slug is taken.
func (d *DB) CreatePost(ctx context.Context, rawText, engine string, job jobparse.ParsedJob) (Post, error) {
	record, err := json.Marshal(job)
	if err != nil {
		return Post{}, fmt.Errorf("encode record: %w", err)
	}

	base := Slugify(job.Title)
	post := Post{
		ID:        uuid.NewString(),
		Engine:    engine,
		RawText:   rawText,
		Job:       job,
		CreatedAt: time.Now().UTC(),
	}
	for i := 0; i <= slugAttempts; i++ {
		switch {
		case i == 0:
			post.Slug = base
		case i == slugAttempts:
			post.Slug = base + "-" + uuid.NewString()[:8]
		default:
			post.Slug = fmt.Sprintf("%s-%d", base, i+1)
		}
		_, err = d.pool.ExecContext(ctx, `
INSERT INTO posts (id, slug, title, department, doc_type, engine, raw_text, record, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			post.ID, post.Slug, job.Title, job.Department, string(job.Type),
			engine, rawText, string(record), post.CreatedAt.Format(time.RFC3339))
		if err == nil {
			return post, nil
		}
		if !isUniqueViolation(err) {
			return Post{}, fmt.Errorf("insert post: %w", err)
		}
	}
	return Post{}, fmt.Errorf("insert post: slug space exhausted for %q", base)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}

// GetPost loads one post by slug.
func (d *DB) GetPost(ctx context.Context, slug string) (Post, error) {
	row := d.pool.QueryRowContext(ctx, `
SELECT id, slug, engine, raw_text, record, created_at FROM posts WHERE slug = ?`, slug)
	return scanPost(row)
}

// ListPosts returns recent posts, optionally filtered by document type.
func (d *DB) ListPosts(ctx context.Context, docType string, limit int) ([]Post, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := `SELECT id, slug, engine, raw_text, record, created_at FROM posts`
	args := []any{}
	if docType != "" {
		query += ` WHERE doc_type = ?`
		args = append(args, docType)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := d.pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListSlugs returns every slug with its creation time, for the sitemap.
func (d *DB) ListSlugs(ctx context.Context) ([]SlugEntry, error) {
	rows, err := d.pool.QueryContext(ctx, `SELECT slug, created_at FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list slugs: %w", err)
	}
	defer rows.Close()

	out := []SlugEntry{}
	for rows.Next() {
		var e SlugEntry
		var created string
		if err := rows.Scan(&e.Slug, &created); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// SlugEntry is one sitemap row.
type SlugEntry struct {
	Slug      string
	CreatedAt time.Time
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (Post, error) {
	var p Post
	var record, created string
	err := row.Scan(&p.ID, &p.Slug, &p.Engine, &p.RawText, &record, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Post{}, ErrNotFound
	}
	if err != nil {
		return Post{}, fmt.Errorf("scan post: %w", err)
	}
	if err := json.Unmarshal([]byte(record), &p.Job); err != nil {
		return Post{}, fmt.Errorf("decode record: %w", err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return p, nil
}
