// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// NewWithDB wraps an existing connection without pinging or migrating.
// Used by tests that supply their own *sql.DB.
func NewWithDB(s *sql.DB) *DB {
	return &DB{sql: s}
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Ping checks connectivity to the database.
func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, display_name TEXT NOT NULL, email TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, role TEXT NOT NULL CHECK(role IN ('admin','superadmin')), last_access_at TIMESTAMPTZ, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS hero_slides (id BIGSERIAL PRIMARY KEY, title TEXT NOT NULL, subtitle TEXT NOT NULL DEFAULT '', image_url TEXT NOT NULL, position INT NOT NULL DEFAULT 0, active BOOLEAN NOT NULL DEFAULT true, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS gallery_images (id BIGSERIAL PRIMARY KEY, title TEXT NOT NULL DEFAULT '', image_url TEXT NOT NULL, position INT NOT NULL DEFAULT 0, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS genres (id BIGSERIAL PRIMARY KEY, name TEXT UNIQUE NOT NULL, description TEXT NOT NULL DEFAULT '', image_url TEXT NOT NULL DEFAULT '');",
		"CREATE TABLE IF NOT EXISTS tracks (id BIGSERIAL PRIMARY KEY, title TEXT NOT NULL, artist TEXT NOT NULL DEFAULT '', genre_id BIGINT NOT NULL REFERENCES genres(id) ON DELETE CASCADE, audio_url TEXT NOT NULL DEFAULT '', position INT NOT NULL DEFAULT 0);",
		"CREATE INDEX IF NOT EXISTS idx_tracks_genre_id ON tracks(genre_id);",
		"CREATE TABLE IF NOT EXISTS social_links (id BIGSERIAL PRIMARY KEY, platform TEXT NOT NULL, url TEXT NOT NULL, active BOOLEAN NOT NULL DEFAULT true);",
		"CREATE TABLE IF NOT EXISTS site_config (id SMALLINT PRIMARY KEY CHECK(id = 1), site_name TEXT NOT NULL, contact_email TEXT NOT NULL DEFAULT '', phone TEXT NOT NULL DEFAULT '', address TEXT NOT NULL DEFAULT '');",
		"CREATE TABLE IF NOT EXISTS contact_messages (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL, email TEXT NOT NULL, message TEXT NOT NULL, read BOOLEAN NOT NULL DEFAULT false, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at);",
		"INSERT INTO site_config (id, site_name) VALUES (1, 'Escena Producciones') ON CONFLICT (id) DO NOTHING;",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
