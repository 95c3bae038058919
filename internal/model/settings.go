// File: internal/model/settings.go
package model

import "time"

// SettingsID is the fixed primary key of every singleton settings row.
// The settings tables hold exactly one record, upserted in place.
const SettingsID = 1

type NotificationSettings struct {
	ID           int       `db:"id" json:"id"`
	EmailEnabled bool      `db:"email_enabled" json:"email_enabled"`
	PushEnabled  bool      `db:"push_enabled" json:"push_enabled"`
	SenderName   string    `db:"sender_name" json:"sender_name"`
	SenderEmail  string    `db:"sender_email" json:"sender_email"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type SeoSettings struct {
	ID              int       `db:"id" json:"id"`
	SiteTitle       string    `db:"site_title" json:"site_title"`
	MetaDescription string    `db:"meta_description" json:"meta_description"`
	MetaKeywords    string    `db:"meta_keywords" json:"meta_keywords"`
	OgImage         string    `db:"og_image" json:"og_image"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
