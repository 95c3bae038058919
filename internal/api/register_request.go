// File: internal/api/register_request.go
package api

// RegisterRequest creates a new account. Role defaults to "student" when omitted.
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"Secret123!"`
	Name     string `json:"name" example:"Alice"`
	Role     string `json:"role" example:"student"`
}
