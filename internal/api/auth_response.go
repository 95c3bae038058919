// File: internal/api/auth_response.go
package api

// AuthResponse is returned by login and register.
// swagger:model api.AuthResponse
type AuthResponse struct {
	Token string       `json:"token" example:"eyJhbGciOi..."`
	User  UserResponse `json:"user"`
}

// VerifyResponse is returned by verify: the token claims echoed back.
// swagger:model api.VerifyResponse
type VerifyResponse struct {
	User UserResponse `json:"user"`
}
