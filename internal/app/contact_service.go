package app

import (
	"context"
	"errors"
	"strings"

	"escena/internal/domain"
)

// ContactService encapsulates contact form use cases.
type ContactService struct {
	repo domain.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo domain.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit validates and stores a public contact form submission.
func (s *ContactService) Submit(ctx context.Context, m *domain.ContactMessage) (int64, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)

	if m.Name == "" || m.Message == "" {
		return 0, errors.New("name and message are required")
	}
	if !strings.Contains(m.Email, "@") {
		return 0, errors.New("a valid email is required")
	}
	return s.repo.CreateMessage(ctx, m)
}

// List returns messages for the admin inbox; onlyUnread filters read ones.
func (s *ContactService) List(ctx context.Context, onlyUnread bool) ([]domain.ContactMessage, error) {
	return s.repo.ListMessages(ctx, onlyUnread)
}

// MarkRead flags a message as read.
func (s *ContactService) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkMessageRead(ctx, id)
}

// Delete removes a message.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteMessage(ctx, id)
}
