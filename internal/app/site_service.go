package app

import (
	"context"
	"errors"

	"escena/internal/domain"
)

// SiteService encapsulates site configuration and social link use cases.
type SiteService struct {
	repo domain.SiteRepository
}

// NewSiteService creates a SiteService backed by the given repository.
func NewSiteService(repo domain.SiteRepository) *SiteService {
	return &SiteService{repo: repo}
}

// GetConfig returns the site-wide configuration singleton.
func (s *SiteService) GetConfig(ctx context.Context) (*domain.SiteConfig, error) {
	return s.repo.GetSiteConfig(ctx)
}

// UpdateConfig replaces the site-wide configuration.
func (s *SiteService) UpdateConfig(ctx context.Context, c *domain.SiteConfig) error {
	if c.SiteName == "" {
		return errors.New("siteName is required")
	}
	return s.repo.UpdateSiteConfig(ctx, c)
}

// ListSocialLinks returns social links; publicOnly restricts to active ones.
func (s *SiteService) ListSocialLinks(ctx context.Context, publicOnly bool) ([]domain.SocialLink, error) {
	return s.repo.ListSocialLinks(ctx, publicOnly)
}

// CreateSocialLink validates and stores a new link, returning its id.
func (s *SiteService) CreateSocialLink(ctx context.Context, l *domain.SocialLink) (int64, error) {
	if l.Platform == "" || l.URL == "" {
		return 0, errors.New("platform and url are required")
	}
	return s.repo.CreateSocialLink(ctx, l)
}

// UpdateSocialLink replaces an existing link.
func (s *SiteService) UpdateSocialLink(ctx context.Context, l *domain.SocialLink) error {
	if l.ID <= 0 {
		return errors.New("id is required")
	}
	if l.Platform == "" || l.URL == "" {
		return errors.New("platform and url are required")
	}
	return s.repo.UpdateSocialLink(ctx, l)
}

// DeleteSocialLink removes a link.
func (s *SiteService) DeleteSocialLink(ctx context.Context, id int64) error {
	return s.repo.DeleteSocialLink(ctx, id)
}
