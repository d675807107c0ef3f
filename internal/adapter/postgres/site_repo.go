package postgres

import (
	"context"
	"time"

	"escena/internal/domain"
)

// GetSiteConfig returns the singleton configuration row.
func (d *DB) GetSiteConfig(ctx context.Context) (*domain.SiteConfig, error) {
	var c domain.SiteConfig
	err := d.sql.QueryRowContext(ctx,
		"SELECT site_name, contact_email, phone, address FROM site_config WHERE id = 1",
	).Scan(&c.SiteName, &c.ContactEmail, &c.Phone, &c.Address)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateSiteConfig replaces the singleton configuration row.
func (d *DB) UpdateSiteConfig(ctx context.Context, c *domain.SiteConfig) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE site_config SET site_name = $1, contact_email = $2, phone = $3, address = $4 WHERE id = 1",
		c.SiteName, c.ContactEmail, c.Phone, c.Address,
	)
	return err
}

// ListSocialLinks returns social links; onlyActive filters inactive ones.
func (d *DB) ListSocialLinks(ctx context.Context, onlyActive bool) ([]domain.SocialLink, error) {
	q := "SELECT id, platform, url, active FROM social_links ORDER BY id"
	if onlyActive {
		q = "SELECT id, platform, url, active FROM social_links WHERE active ORDER BY id"
	}

	rows, err := d.sql.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SocialLink{}
	for rows.Next() {
		var l domain.SocialLink
		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &l.Active); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// CreateSocialLink inserts a new link and returns its id.
func (d *DB) CreateSocialLink(ctx context.Context, l *domain.SocialLink) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO social_links (platform, url, active) VALUES ($1, $2, $3) RETURNING id",
		l.Platform, l.URL, l.Active,
	).Scan(&id)
	return id, err
}

// UpdateSocialLink replaces an existing link.
func (d *DB) UpdateSocialLink(ctx context.Context, l *domain.SocialLink) error {
	_, err := d.sql.ExecContext(ctx,
		"UPDATE social_links SET platform = $1, url = $2, active = $3 WHERE id = $4",
		l.Platform, l.URL, l.Active, l.ID,
	)
	return err
}

// DeleteSocialLink removes a link.
func (d *DB) DeleteSocialLink(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM social_links WHERE id = $1", id)
	return err
}

// CreateMessage stores a contact form submission and returns its id.
func (d *DB) CreateMessage(ctx context.Context, m *domain.ContactMessage) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO contact_messages (name, email, message, read, created_at) VALUES ($1, $2, $3, false, $4) RETURNING id",
		m.Name, m.Email, m.Message, time.Now(),
	).Scan(&id)
	return id, err
}

// ListMessages returns contact messages, newest first.
func (d *DB) ListMessages(ctx context.Context, onlyUnread bool) ([]domain.ContactMessage, error) {
	q := "SELECT id, name, email, message, read, created_at FROM contact_messages ORDER BY created_at DESC"
	if onlyUnread {
		q = "SELECT id, name, email, message, read, created_at FROM contact_messages WHERE NOT read ORDER BY created_at DESC"
	}

	rows, err := d.sql.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ContactMessage{}
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkMessageRead flags a message as read.
func (d *DB) MarkMessageRead(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "UPDATE contact_messages SET read = true WHERE id = $1", id)
	return err
}

// DeleteMessage removes a message.
func (d *DB) DeleteMessage(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = $1", id)
	return err
}
