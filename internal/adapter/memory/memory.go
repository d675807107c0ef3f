// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"escena/internal/domain"
)

// DB implements every domain repository in memory.
type DB struct {
	mu sync.Mutex

	users    []*domain.User
	slides   []domain.HeroSlide
	images   []domain.GalleryImage
	genres   []domain.Genre
	tracks   []domain.Track
	social   []domain.SocialLink
	site     domain.SiteConfig
	messages []domain.ContactMessage

	userID    int64
	slideID   int64
	imageID   int64
	genreID   int64
	trackID   int64
	socialID  int64
	messageID int64

	// PingErr, when set, makes Ping fail. Tests use it to simulate an
	// unreachable store.
	PingErr error
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		site: domain.SiteConfig{SiteName: "Escena Producciones"},
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ContentRepository = (*DB)(nil)
var _ domain.CatalogRepository = (*DB)(nil)
var _ domain.SiteRepository = (*DB)(nil)
var _ domain.ContactRepository = (*DB)(nil)

// --- UserRepository ---

// Ping reports store connectivity.
func (db *DB) Ping(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.PingErr
}

// GetByEmail returns the user with the exact email, or nil.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create inserts a new user, enforcing email uniqueness.
func (db *DB) Create(ctx context.Context, displayName, email, passwordHash, role string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return nil, errors.New("duplicate email")
		}
	}

	db.userID++
	u := &domain.User{
		ID:           db.userID,
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	db.users = append(db.users, u)
	cp := *u
	return &cp, nil
}

// TouchLastAccess records a login time.
func (db *DB) TouchLastAccess(ctx context.Context, id int64, at time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			t := at
			u.LastAccessAt = &t
			return nil
		}
	}
	return errors.New("user not found")
}

// UserCount returns the number of stored users. Test helper.
func (db *DB) UserCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users)
}

// --- ContentRepository ---

// ListHeroSlides returns slides in display order.
func (db *DB) ListHeroSlides(ctx context.Context, onlyActive bool) ([]domain.HeroSlide, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := []domain.HeroSlide{}
	for _, s := range db.slides {
		if onlyActive && !s.Active {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// CreateHeroSlide inserts a slide.
func (db *DB) CreateHeroSlide(ctx context.Context, s *domain.HeroSlide) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.slideID++
	cp := *s
	cp.ID = db.slideID
	cp.CreatedAt = time.Now()
	db.slides = append(db.slides, cp)
	return cp.ID, nil
}

// UpdateHeroSlide replaces a slide by id.
func (db *DB) UpdateHeroSlide(ctx context.Context, s *domain.HeroSlide) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.slides {
		if db.slides[i].ID == s.ID {
			created := db.slides[i].CreatedAt
			db.slides[i] = *s
			db.slides[i].CreatedAt = created
			return nil
		}
	}
	return errors.New("hero slide not found")
}

// DeleteHeroSlide removes a slide by id.
func (db *DB) DeleteHeroSlide(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.slides {
		if db.slides[i].ID == id {
			db.slides = append(db.slides[:i], db.slides[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListGalleryImages returns images in display order.
func (db *DB) ListGalleryImages(ctx context.Context) ([]domain.GalleryImage, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := append([]domain.GalleryImage{}, db.images...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// CreateGalleryImage inserts an image.
func (db *DB) CreateGalleryImage(ctx context.Context, g *domain.GalleryImage) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.imageID++
	cp := *g
	cp.ID = db.imageID
	cp.CreatedAt = time.Now()
	db.images = append(db.images, cp)
	return cp.ID, nil
}

// DeleteGalleryImage removes an image by id.
func (db *DB) DeleteGalleryImage(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.images {
		if db.images[i].ID == id {
			db.images = append(db.images[:i], db.images[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- CatalogRepository ---

// ListGenres returns all genres.
func (db *DB) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := append([]domain.Genre{}, db.genres...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// CreateGenre inserts a genre.
func (db *DB) CreateGenre(ctx context.Context, g *domain.Genre) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.genreID++
	cp := *g
	cp.ID = db.genreID
	db.genres = append(db.genres, cp)
	return cp.ID, nil
}

// UpdateGenre replaces a genre by id.
func (db *DB) UpdateGenre(ctx context.Context, g *domain.Genre) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.genres {
		if db.genres[i].ID == g.ID {
			db.genres[i] = *g
			return nil
		}
	}
	return errors.New("genre not found")
}

// DeleteGenre removes a genre and its tracks.
func (db *DB) DeleteGenre(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.genres {
		if db.genres[i].ID == id {
			db.genres = append(db.genres[:i], db.genres[i+1:]...)
			break
		}
	}

	kept := db.tracks[:0]
	for _, t := range db.tracks {
		if t.GenreID != id {
			kept = append(kept, t)
		}
	}
	db.tracks = kept
	return nil
}

// ListTracks returns tracks, filtered by genre when genreID > 0.
func (db *DB) ListTracks(ctx context.Context, genreID int64) ([]domain.Track, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := []domain.Track{}
	for _, t := range db.tracks {
		if genreID > 0 && t.GenreID != genreID {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// CreateTrack inserts a track.
func (db *DB) CreateTrack(ctx context.Context, t *domain.Track) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.trackID++
	cp := *t
	cp.ID = db.trackID
	db.tracks = append(db.tracks, cp)
	return cp.ID, nil
}

// UpdateTrack replaces a track by id.
func (db *DB) UpdateTrack(ctx context.Context, t *domain.Track) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.tracks {
		if db.tracks[i].ID == t.ID {
			db.tracks[i] = *t
			return nil
		}
	}
	return errors.New("track not found")
}

// DeleteTrack removes a track by id.
func (db *DB) DeleteTrack(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.tracks {
		if db.tracks[i].ID == id {
			db.tracks = append(db.tracks[:i], db.tracks[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- SiteRepository ---

// GetSiteConfig returns the configuration singleton.
func (db *DB) GetSiteConfig(ctx context.Context) (*domain.SiteConfig, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	cp := db.site
	return &cp, nil
}

// UpdateSiteConfig replaces the configuration singleton.
func (db *DB) UpdateSiteConfig(ctx context.Context, c *domain.SiteConfig) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.site = *c
	return nil
}

// ListSocialLinks returns social links.
func (db *DB) ListSocialLinks(ctx context.Context, onlyActive bool) ([]domain.SocialLink, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := []domain.SocialLink{}
	for _, l := range db.social {
		if onlyActive && !l.Active {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// CreateSocialLink inserts a link.
func (db *DB) CreateSocialLink(ctx context.Context, l *domain.SocialLink) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.socialID++
	cp := *l
	cp.ID = db.socialID
	db.social = append(db.social, cp)
	return cp.ID, nil
}

// UpdateSocialLink replaces a link by id.
func (db *DB) UpdateSocialLink(ctx context.Context, l *domain.SocialLink) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.social {
		if db.social[i].ID == l.ID {
			db.social[i] = *l
			return nil
		}
	}
	return errors.New("social link not found")
}

// DeleteSocialLink removes a link by id.
func (db *DB) DeleteSocialLink(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.social {
		if db.social[i].ID == id {
			db.social = append(db.social[:i], db.social[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- ContactRepository ---

// CreateMessage stores a contact form submission.
func (db *DB) CreateMessage(ctx context.Context, m *domain.ContactMessage) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.messageID++
	cp := *m
	cp.ID = db.messageID
	cp.Read = false
	cp.CreatedAt = time.Now()
	db.messages = append(db.messages, cp)
	return cp.ID, nil
}

// ListMessages returns messages, newest first.
func (db *DB) ListMessages(ctx context.Context, onlyUnread bool) ([]domain.ContactMessage, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := []domain.ContactMessage{}
	for _, m := range db.messages {
		if onlyUnread && m.Read {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// MarkMessageRead flags a message as read.
func (db *DB) MarkMessageRead(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.messages {
		if db.messages[i].ID == id {
			db.messages[i].Read = true
			return nil
		}
	}
	return errors.New("message not found")
}

// DeleteMessage removes a message by id.
func (db *DB) DeleteMessage(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.messages {
		if db.messages[i].ID == id {
			db.messages = append(db.messages[:i], db.messages[i+1:]...)
			return nil
		}
	}
	return nil
}
