// File: internal/api/login_request.go
package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" example:"student@eduai.com"`
	Password string `json:"password" example:"student123"`
}
