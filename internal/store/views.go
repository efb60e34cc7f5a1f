package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// IncrementView bumps the view counter for a slug, creating the row on
// first sight.
func (d *DB) IncrementView(ctx context.Context, slug string) error {
	_, err := d.pool.ExecContext(ctx, `
INSERT INTO post_views (slug, views) VALUES (?, 1)
ON CONFLICT(slug) DO UPDATE SET views = views + 1`, slug)
	if err != nil {
		return fmt.Errorf("increment view: %w", err)
	}
	return nil
}

// Views returns the counter for one slug; zero when never viewed.
func (d *DB) Views(ctx context.Context, slug string) (int64, error) {
	var n int64
	err := d.pool.QueryRowContext(ctx, `SELECT views FROM post_views WHERE slug = ?`, slug).Scan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("views: %w", err)
	}
	return n, nil
}

// ViewCount is one row of the popularity report.
type ViewCount struct {
	Slug  string `json:"slug"`
	Views int64  `json:"views"`
}

// TopViewed lists the most viewed slugs for the admin dashboard.
func (d *DB) TopViewed(ctx context.Context, limit int) ([]ViewCount, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	rows, err := d.pool.QueryContext(ctx, `
SELECT slug, views FROM post_views ORDER BY views DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top viewed: %w", err)
	}
	defer rows.Close()

	out := []ViewCount{}
	for rows.Next() {
		var v ViewCount
		if err := rows.Scan(&v.Slug, &v.Views); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
