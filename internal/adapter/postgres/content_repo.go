package postgres

import (
	"context"
	"time"

	"escena/internal/domain"
)

// ListHeroSlides returns hero slides in display order; onlyActive filters
// inactive ones out.
func (d *DB) ListHeroSlides(ctx context.Context, onlyActive bool) ([]domain.HeroSlide, error) {
	q := "SELECT id, title, subtitle, image_url, position, active, created_at FROM hero_slides ORDER BY position, id"
	if onlyActive {
		q = "SELECT id, title, subtitle, image_url, position, active, created_at FROM hero_slides WHERE active ORDER BY position, id"
	}

	rows, err := d.sql.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.HeroSlide{}
	for rows.Next() {
		var s domain.HeroSlide
		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.Position, &s.Active, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CreateHeroSlide inserts a new slide and returns its id.
func (d *DB) CreateHeroSlide(ctx context.Context, s *domain.HeroSlide) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO hero_slides (title, subtitle, image_url, position, active, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		s.Title, s.Subtitle, s.ImageURL, s.Position, s.Active, time.Now(),
	).Scan(&id)
	return id, err
}

// UpdateHeroSlide replaces an existing slide.
func (d *DB) UpdateHeroSlide(ctx context.Context, s *domain.HeroSlide) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE hero_slides SET title = $1, subtitle = $2, image_url = $3, position = $4, active = $5 WHERE id = $6",
		s.Title, s.Subtitle, s.ImageURL, s.Position, s.Active, s.ID,
	)
	return err
}

// DeleteHeroSlide removes a slide.
func (d *DB) DeleteHeroSlide(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM hero_slides WHERE id = $1", id)
	return err
}

// ListGalleryImages returns gallery images in display order.
func (d *DB) ListGalleryImages(ctx context.Context) ([]domain.GalleryImage, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, title, image_url, position, created_at FROM gallery_images ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.GalleryImage{}
	for rows.Next() {
		var g domain.GalleryImage
		if err := rows.Scan(&g.ID, &g.Title, &g.ImageURL, &g.Position, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// CreateGalleryImage inserts a new image and returns its id.
func (d *DB) CreateGalleryImage(ctx context.Context, g *domain.GalleryImage) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO gallery_images (title, image_url, position, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		g.Title, g.ImageURL, g.Position, time.Now(),
	).Scan(&id)
	return id, err
}

// DeleteGalleryImage removes an image.
func (d *DB) DeleteGalleryImage(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM gallery_images WHERE id = $1", id)
	return err
}
