package app

import (
	"context"
	"errors"

	"escena/internal/domain"
)

// CatalogService encapsulates genre and track use cases.
type CatalogService struct {
	repo domain.CatalogRepository
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(repo domain.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// ListGenres returns all genres.
func (s *CatalogService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.repo.ListGenres(ctx)
}

// CreateGenre validates and stores a new genre, returning its id.
func (s *CatalogService) CreateGenre(ctx context.Context, g *domain.Genre) (int64, error) {
	if g.Name == "" {
		return 0, errors.New("name is required")
	}
	return s.repo.CreateGenre(ctx, g)
}

// UpdateGenre replaces an existing genre.
func (s *CatalogService) UpdateGenre(ctx context.Context, g *domain.Genre) error {
	if g.ID <= 0 {
		return errors.New("id is required")
	}
	if g.Name == "" {
		return errors.New("name is required")
	}
	return s.repo.UpdateGenre(ctx, g)
}

// DeleteGenre removes a genre.
func (s *CatalogService) DeleteGenre(ctx context.Context, id int64) error {
	return s.repo.DeleteGenre(ctx, id)
}

// ListTracks returns tracks, filtered by genre when genreID > 0.
func (s *CatalogService) ListTracks(ctx context.Context, genreID int64) ([]domain.Track, error) {
	return s.repo.ListTracks(ctx, genreID)
}

// CreateTrack validates and stores a new track, returning its id.
func (s *CatalogService) CreateTrack(ctx context.Context, t *domain.Track) (int64, error) {
	if t.Title == "" {
		return 0, errors.New("title is required")
	}
	if t.GenreID <= 0 {
		return 0, errors.New("genreId is required")
	}
	return s.repo.CreateTrack(ctx, t)
}

// UpdateTrack replaces an existing track.
func (s *CatalogService) UpdateTrack(ctx context.Context, t *domain.Track) error {
	if t.ID <= 0 {
		return errors.New("id is required")
	}
	if t.Title == "" || t.GenreID <= 0 {
		return errors.New("title and genreId are required")
	}
	return s.repo.UpdateTrack(ctx, t)
}

// DeleteTrack removes a track.
func (s *CatalogService) DeleteTrack(ctx context.Context, id int64) error {
	return s.repo.DeleteTrack(ctx, id)
}
