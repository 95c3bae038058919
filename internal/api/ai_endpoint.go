// File: internal/api/ai_endpoint.go
package api

import "time"

// swagger:model api.AIEndpointRequest
type AIEndpointRequest struct {
	Name   string `json:"name" validate:"required" example:"OpenAI GPT-4o"`
	URL    string `json:"url" validate:"required,url" example:"https://api.openai.com/v1/chat/completions"`
	Model  string `json:"model" validate:"required" example:"gpt-4o"`
	APIKey string `json:"api_key" example:"sk-..."`
	Active bool   `json:"active" example:"true"`
}

// swagger:model api.AIEndpointResponse
type AIEndpointResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"OpenAI GPT-4o"`
	URL       string    `json:"url" example:"https://api.openai.com/v1/chat/completions"`
	Model     string    `json:"model" example:"gpt-4o"`
	APIKey    string    `json:"api_key" example:"sk-..."`
	Active    bool      `json:"active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}
