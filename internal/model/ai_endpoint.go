// File: internal/model/ai_endpoint.go
package model

import "time"

// AIEndpoint is a configured upstream AI provider used by the chat helper.
type AIEndpoint struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	URL       string    `db:"url" json:"url"`
	Model     string    `db:"model" json:"model"`
	APIKey    string    `db:"api_key" json:"api_key"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
