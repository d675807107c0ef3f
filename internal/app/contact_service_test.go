package app

import (
	"context"
	"testing"

	"escena/internal/domain"
)

type mockContactRepo struct {
	created []domain.ContactMessage
}

func (m *mockContactRepo) CreateMessage(ctx context.Context, msg *domain.ContactMessage) (int64, error) {
	m.created = append(m.created, *msg)
	return int64(len(m.created)), nil
}

func (m *mockContactRepo) ListMessages(ctx context.Context, onlyUnread bool) ([]domain.ContactMessage, error) {
	return m.created, nil
}

func (m *mockContactRepo) MarkMessageRead(ctx context.Context, id int64) error { return nil }
func (m *mockContactRepo) DeleteMessage(ctx context.Context, id int64) error   { return nil }

func TestContactService_Submit(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo)

	id, err := svc.Submit(context.Background(), &domain.ContactMessage{
		Name:    "  Carlos  ",
		Email:   "carlos@example.com",
		Message: "Quiero contratar un evento.",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}
	if repo.created[0].Name != "Carlos" {
		t.Errorf("expected trimmed name, got %q", repo.created[0].Name)
	}
}

func TestContactService_Submit_Invalid(t *testing.T) {
	svc := NewContactService(&mockContactRepo{})

	cases := []domain.ContactMessage{
		{Name: "", Email: "a@b.com", Message: "hola"},
		{Name: "Carlos", Email: "a@b.com", Message: "   "},
		{Name: "Carlos", Email: "sin-arroba", Message: "hola"},
	}
	for _, c := range cases {
		if _, err := svc.Submit(context.Background(), &c); err == nil {
			t.Errorf("expected validation error for %+v", c)
		}
	}
}
