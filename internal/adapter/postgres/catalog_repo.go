package postgres

import (
	"context"

	"escena/internal/domain"
)

// ListGenres returns all genres ordered by name.
func (d *DB) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, description, image_url FROM genres ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Genre{}
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// CreateGenre inserts a new genre and returns its id.
func (d *DB) CreateGenre(ctx context.Context, g *domain.Genre) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO genres (name, description, image_url) VALUES ($1, $2, $3) RETURNING id",
		g.Name, g.Description, g.ImageURL,
	).Scan(&id)
	return id, err
}

// UpdateGenre replaces an existing genre.
func (d *DB) UpdateGenre(ctx context.Context, g *domain.Genre) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE genres SET name = $1, description = $2, image_url = $3 WHERE id = $4",
		g.Name, g.Description, g.ImageURL, g.ID,
	)
	return err
}

// DeleteGenre removes a genre; its tracks cascade.
func (d *DB) DeleteGenre(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM genres WHERE id = $1", id)
	return err
}

// ListTracks returns tracks in display order, filtered by genre when
// genreID > 0.
func (d *DB) ListTracks(ctx context.Context, genreID int64) ([]domain.Track, error) {
	q := "SELECT id, title, artist, genre_id, audio_url, position FROM tracks ORDER BY position, id"
	args := []any{}
	if genreID > 0 {
		q = "SELECT id, title, artist, genre_id, audio_url, position FROM tracks WHERE genre_id = $1 ORDER BY position, id"
		args = append(args, genreID)
	}

	rows, err := d.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Track{}
	for rows.Next() {
		var t domain.Track
		if err := rows.Scan(&t.ID, &t.Title, &t.Artist, &t.GenreID, &t.AudioURL, &t.Position); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CreateTrack inserts a new track and returns its id.
func (d *DB) CreateTrack(ctx context.Context, t *domain.Track) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO tracks (title, artist, genre_id, audio_url, position) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		t.Title, t.Artist, t.GenreID, t.AudioURL, t.Position,
	).Scan(&id)
	return id, err
}

// UpdateTrack replaces an existing track.
func (d *DB) UpdateTrack(ctx context.Context, t *domain.Track) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE tracks SET title = $1, artist = $2, genre_id = $3, audio_url = $4, position = $5 WHERE id = $6",
		t.Title, t.Artist, t.GenreID, t.AudioURL, t.Position, t.ID,
	)
	return err
}

// DeleteTrack removes a track.
func (d *DB) DeleteTrack(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM tracks WHERE id = $1", id)
	return err
}
