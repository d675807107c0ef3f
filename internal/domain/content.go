package domain

import (
	"context"
	"time"
)

// HeroSlide is a rotating banner on the landing page.
type HeroSlide struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"imageUrl"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// GalleryImage is a photo shown in the public gallery.
type GalleryImage struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// Genre groups tracks on the music page.
type Genre struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Track is a playable sample belonging to a genre.
type Track struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	GenreID  int64  `json:"genreId"`
	AudioURL string `json:"audioUrl"`
	Position int    `json:"position"`
}

// SocialLink is an outbound social profile shown in the footer.
type SocialLink struct {
	ID       int64  `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Active   bool   `json:"active"`
}

// SiteConfig is the singleton row of site-wide settings.
type SiteConfig struct {
	SiteName     string `json:"siteName"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContentRepository persists hero slides and gallery images.
type ContentRepository interface {
	ListHeroSlides(ctx context.Context, onlyActive bool) ([]HeroSlide, error)
	CreateHeroSlide(ctx context.Context, s *HeroSlide) (int64, error)
	UpdateHeroSlide(ctx context.Context, s *HeroSlide) error
	DeleteHeroSlide(ctx context.Context, id int64) error

	ListGalleryImages(ctx context.Context) ([]GalleryImage, error)
	CreateGalleryImage(ctx context.Context, g *GalleryImage) (int64, error)
	DeleteGalleryImage(ctx context.Context, id int64) error
}

// CatalogRepository persists genres and tracks.
type CatalogRepository interface {
	ListGenres(ctx context.Context) ([]Genre, error)
	CreateGenre(ctx context.Context, g *Genre) (int64, error)
	UpdateGenre(ctx context.Context, g *Genre) error
	DeleteGenre(ctx context.Context, id int64) error

	// ListTracks filters by genre when genreID > 0.
	ListTracks(ctx context.Context, genreID int64) ([]Track, error)
	CreateTrack(ctx context.Context, t *Track) (int64, error)
	UpdateTrack(ctx context.Context, t *Track) error
	DeleteTrack(ctx context.Context, id int64) error
}

// SiteRepository persists site-wide configuration and social links.
type SiteRepository interface {
	GetSiteConfig(ctx context.Context) (*SiteConfig, error)
	UpdateSiteConfig(ctx context.Context, c *SiteConfig) error

	ListSocialLinks(ctx context.Context, onlyActive bool) ([]SocialLink, error)
	CreateSocialLink(ctx context.Context, l *SocialLink) (int64, error)
	UpdateSocialLink(ctx context.Context, l *SocialLink) error
	DeleteSocialLink(ctx context.Context, id int64) error
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	CreateMessage(ctx context.Context, m *ContactMessage) (int64, error)
	ListMessages(ctx context.Context, onlyUnread bool) ([]ContactMessage, error)
	MarkMessageRead(ctx context.Context, id int64) error
	DeleteMessage(ctx context.Context, id int64) error
}
