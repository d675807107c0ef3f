package postgres

import (
	"context"
	"database/sql"
	"time"

	"escena/internal/domain"
)

// GetByEmail retrieves a user by exact email match. A miss is (nil, nil).
func (d *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, display_name, email, password_hash, role, last_access_at, created_at FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.DisplayName, &u.Email, &u.PasswordHash, &u.Role, &u.LastAccessAt, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns the stored row.
func (d *DB) Create(ctx context.Context, displayName, email, passwordHash, role string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users (display_name, email, password_hash, role, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id, display_name, email, password_hash, role, last_access_at, created_at",
		displayName, email, passwordHash, role, time.Now(),
	).Scan(&u.ID, &u.DisplayName, &u.Email, &u.PasswordHash, &u.Role, &u.LastAccessAt, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// TouchLastAccess records a successful login time.
func (d *DB) TouchLastAccess(ctx context.Context, id int64, at time.Time) error {
	_, err := d.sql.ExecContext(ctx, "UPDATE users SET last_access_at = $1 WHERE id = $2", at, id)
	return err
}
