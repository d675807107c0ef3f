package app

import (
	"context"
	"errors"

	"escena/internal/domain"
)

// ContentService encapsulates hero slide and gallery use cases.
type ContentService struct {
	repo domain.ContentRepository
}

// NewContentService creates a ContentService backed by the given repository.
func NewContentService(repo domain.ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

// ListHeroSlides returns hero slides; publicOnly restricts to active ones.
func (s *ContentService) ListHeroSlides(ctx context.Context, publicOnly bool) ([]domain.HeroSlide, error) {
	return s.repo.ListHeroSlides(ctx, publicOnly)
}

// CreateHeroSlide validates and stores a new slide, returning its id.
func (s *ContentService) CreateHeroSlide(ctx context.Context, slide *domain.HeroSlide) (int64, error) {
	if slide.Title == "" {
		return 0, errors.New("title is required")
	}
	if slide.ImageURL == "" {
		return 0, errors.New("imageUrl is required")
	}
	return s.repo.CreateHeroSlide(ctx, slide)
}

// UpdateHeroSlide replaces an existing slide.
func (s *ContentService) UpdateHeroSlide(ctx context.Context, slide *domain.HeroSlide) error {
	if slide.ID <= 0 {
		return errors.New("id is required")
	}
	if slide.Title == "" || slide.ImageURL == "" {
		return errors.New("title and imageUrl are required")
	}
	return s.repo.UpdateHeroSlide(ctx, slide)
}

// DeleteHeroSlide removes a slide.
func (s *ContentService) DeleteHeroSlide(ctx context.Context, id int64) error {
	return s.repo.DeleteHeroSlide(ctx, id)
}

// ListGalleryImages returns all gallery images in display order.
func (s *ContentService) ListGalleryImages(ctx context.Context) ([]domain.GalleryImage, error) {
	return s.repo.ListGalleryImages(ctx)
}

// CreateGalleryImage validates and stores a new image, returning its id.
func (s *ContentService) CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (int64, error) {
	if img.ImageURL == "" {
		return 0, errors.New("imageUrl is required")
	}
	return s.repo.CreateGalleryImage(ctx, img)
}

// DeleteGalleryImage removes an image.
func (s *ContentService) DeleteGalleryImage(ctx context.Context, id int64) error {
	return s.repo.DeleteGalleryImage(ctx, id)
}
