// File: internal/api/comment.go
package api

import "time"

// swagger:model api.CommentRequest
type CommentRequest struct {
	Author  string `json:"author" validate:"required" example:"Alice"`
	Content string `json:"content" validate:"required" example:"Great exam prep material!"`
	Page    string `json:"page" example:"/exams/math-101"`
}

// swagger:model api.CommentResponse
type CommentResponse struct {
	ID        int       `json:"id" example:"1"`
	Author    string    `json:"author" example:"Alice"`
	Content   string    `json:"content" example:"Great exam prep material!"`
	Page      string    `json:"page" example:"/exams/math-101"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}
