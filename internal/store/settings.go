// File: internal/store/settings.go
package store

import (
	"context"
	"fmt"

	"eduai-api/internal/database"
	"eduai-api/internal/model"
)

// The settings tables are singletons: every read and write targets the row
// with id = model.SettingsID. The upserts never create a second row.

func GetNotificationSettings(ctx context.Context, db database.DB) (*model.NotificationSettings, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email_enabled, push_enabled, sender_name, sender_email, updated_at
		 FROM notification_settings WHERE id = $1`,
		model.SettingsID,
	)
	s := &model.NotificationSettings{}
	if err := row.Scan(&s.ID, &s.EmailEnabled, &s.PushEnabled, &s.SenderName, &s.SenderEmail, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("GetNotificationSettings: %w", err)
	}
	return s, nil
}

func UpsertNotificationSettings(ctx context.Context, db database.DB, s *model.NotificationSettings) (*model.NotificationSettings, error) {
	s.ID = model.SettingsID
	row := db.QueryRow(ctx,
		`INSERT INTO notification_settings (id, email_enabled, push_enabled, sender_name, sender_email, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (id) DO UPDATE
		 SET email_enabled = EXCLUDED.email_enabled,
		     push_enabled  = EXCLUDED.push_enabled,
		     sender_name   = EXCLUDED.sender_name,
		     sender_email  = EXCLUDED.sender_email,
		     updated_at    = now()
		 RETURNING updated_at`,
		s.ID,
		s.EmailEnabled,
		s.PushEnabled,
		s.SenderName,
		s.SenderEmail,
	)
	if err := row.Scan(&s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("UpsertNotificationSettings: %w", err)
	}
	return s, nil
}

func GetSeoSettings(ctx context.Context, db database.DB) (*model.SeoSettings, error) {
	row := db.QueryRow(ctx,
		`SELECT id, site_title, meta_description, meta_keywords, og_image, updated_at
		 FROM seo_settings WHERE id = $1`,
		model.SettingsID,
	)
	s := &model.SeoSettings{}
	if err := row.Scan(&s.ID, &s.SiteTitle, &s.MetaDescription, &s.MetaKeywords, &s.OgImage, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("GetSeoSettings: %w", err)
	}
	return s, nil
}

func UpsertSeoSettings(ctx context.Context, db database.DB, s *model.SeoSettings) (*model.SeoSettings, error) {
	s.ID = model.SettingsID
	row := db.QueryRow(ctx,
		`INSERT INTO seo_settings (id, site_title, meta_description, meta_keywords, og_image, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (id) DO UPDATE
		 SET site_title       = EXCLUDED.site_title,
		     meta_description = EXCLUDED.meta_description,
		     meta_keywords    = EXCLUDED.meta_keywords,
		     og_image         = EXCLUDED.og_image,
		     updated_at       = now()
		 RETURNING updated_at`,
		s.ID,
		s.SiteTitle,
		s.MetaDescription,
		s.MetaKeywords,
		s.OgImage,
	)
	if err := row.Scan(&s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("UpsertSeoSettings: %w", err)
	}
	return s, nil
}
