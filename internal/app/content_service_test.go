package app

import (
	"context"
	"testing"

	"escena/internal/domain"
)

type mockContentRepo struct {
	slides []domain.HeroSlide
	images []domain.GalleryImage
}

func (m *mockContentRepo) ListHeroSlides(ctx context.Context, onlyActive bool) ([]domain.HeroSlide, error) {
	if !onlyActive {
		return m.slides, nil
	}
	out := []domain.HeroSlide{}
	for _, s := range m.slides {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockContentRepo) CreateHeroSlide(ctx context.Context, s *domain.HeroSlide) (int64, error) {
	m.slides = append(m.slides, *s)
	return int64(len(m.slides)), nil
}

func (m *mockContentRepo) UpdateHeroSlide(ctx context.Context, s *domain.HeroSlide) error { return nil }
func (m *mockContentRepo) DeleteHeroSlide(ctx context.Context, id int64) error           { return nil }

func (m *mockContentRepo) ListGalleryImages(ctx context.Context) ([]domain.GalleryImage, error) {
	return m.images, nil
}

func (m *mockContentRepo) CreateGalleryImage(ctx context.Context, g *domain.GalleryImage) (int64, error) {
	m.images = append(m.images, *g)
	return int64(len(m.images)), nil
}

func (m *mockContentRepo) DeleteGalleryImage(ctx context.Context, id int64) error { return nil }

func TestContentService_CreateHeroSlide_Validation(t *testing.T) {
	svc := NewContentService(&mockContentRepo{})

	if _, err := svc.CreateHeroSlide(context.Background(), &domain.HeroSlide{ImageURL: "/img/a.jpg"}); err == nil {
		t.Error("expected error for missing title")
	}
	if _, err := svc.CreateHeroSlide(context.Background(), &domain.HeroSlide{Title: "Festival"}); err == nil {
		t.Error("expected error for missing imageUrl")
	}
	if _, err := svc.CreateHeroSlide(context.Background(), &domain.HeroSlide{Title: "Festival", ImageURL: "/img/a.jpg"}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestContentService_ListHeroSlides_PublicOnly(t *testing.T) {
	repo := &mockContentRepo{slides: []domain.HeroSlide{
		{ID: 1, Title: "a", Active: true},
		{ID: 2, Title: "b", Active: false},
	}}
	svc := NewContentService(repo)

	public, err := svc.ListHeroSlides(context.Background(), true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(public) != 1 || public[0].ID != 1 {
		t.Errorf("expected only the active slide, got %+v", public)
	}

	all, _ := svc.ListHeroSlides(context.Background(), false)
	if len(all) != 2 {
		t.Errorf("expected both slides, got %+v", all)
	}
}
