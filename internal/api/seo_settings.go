// File: internal/api/seo_settings.go
package api

import "time"

// swagger:model api.SeoSettingsRequest
type SeoSettingsRequest struct {
	SiteTitle       string `json:"site_title" validate:"required" example:"EduAI - Smart Exam Platform"`
	MetaDescription string `json:"meta_description" example:"Computer-based testing and school administration"`
	MetaKeywords    string `json:"meta_keywords" example:"cbt,exams,school"`
	OgImage         string `json:"og_image" example:"https://eduai.com/og.png"`
}

// swagger:model api.SeoSettingsResponse
type SeoSettingsResponse struct {
	SiteTitle       string    `json:"site_title" example:"EduAI - Smart Exam Platform"`
	MetaDescription string    `json:"meta_description" example:"Computer-based testing and school administration"`
	MetaKeywords    string    `json:"meta_keywords" example:"cbt,exams,school"`
	OgImage         string    `json:"og_image" example:"https://eduai.com/og.png"`
	UpdatedAt       time.Time `json:"updated_at" example:"2025-05-01T15:04:05Z"`
}
