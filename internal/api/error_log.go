// File: internal/api/error_log.go
package api

import "time"

// swagger:model api.ErrorLogRequest
type ErrorLogRequest struct {
	Message string `json:"message" validate:"required" example:"TypeError: cannot read properties of undefined"`
	Source  string `json:"source" example:"web-client"`
	Stack   string `json:"stack" example:"at ExamPage (/exams/42)"`
}

// swagger:model api.ErrorLogResponse
type ErrorLogResponse struct {
	ID        int       `json:"id" example:"1"`
	Message   string    `json:"message" example:"TypeError: cannot read properties of undefined"`
	Source    string    `json:"source" example:"web-client"`
	Stack     string    `json:"stack" example:"at ExamPage (/exams/42)"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}
