// File: internal/api/notification_settings.go
package api

import "time"

// swagger:model api.NotificationSettingsRequest
type NotificationSettingsRequest struct {
	EmailEnabled bool   `json:"email_enabled" example:"true"`
	PushEnabled  bool   `json:"push_enabled" example:"false"`
	SenderName   string `json:"sender_name" example:"EduAI"`
	SenderEmail  string `json:"sender_email" validate:"omitempty,email" example:"noreply@eduai.com"`
}

// swagger:model api.NotificationSettingsResponse
type NotificationSettingsResponse struct {
	EmailEnabled bool      `json:"email_enabled" example:"true"`
	PushEnabled  bool      `json:"push_enabled" example:"false"`
	SenderName   string    `json:"sender_name" example:"EduAI"`
	SenderEmail  string    `json:"sender_email" example:"noreply@eduai.com"`
	UpdatedAt    time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}
