package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Admin sessions expire after this long regardless of activity.
const sessionTTL = 12 * time.Hour

// CreateSession issues a fresh session token. Expired rows are pruned
// opportunistically on each issue.
func (d *DB) CreateSession(ctx context.Context) (string, error) {
	now := time.Now().UTC()
	_, _ = d.pool.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, now.Format(time.RFC3339))

	token := uuid.NewString()
	_, err := d.pool.ExecContext(ctx, `
INSERT INTO sessions (token, created_at, expires_at) VALUES (?, ?, ?)`,
		token, now.Format(time.RFC3339), now.Add(sessionTTL).Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// ValidSession reports whether token identifies a live session.
func (d *DB) ValidSession(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	var expires string
	err := d.pool.QueryRowContext(ctx, `SELECT expires_at FROM sessions WHERE token = ?`, token).Scan(&expires)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup session: %w", err)
	}
	exp, err := time.Parse(time.RFC3339, expires)
	if err != nil {
		return false, nil
	}
	return time.Now().UTC().Before(exp), nil
}

// DeleteSession logs a session out; deleting a missing token is fine.
func (d *DB) DeleteSession(ctx context.Context, token string) error {
	_, err := d.pool.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
