// File: internal/api/error_response.go
package api

// ErrorResponse is the flat error body every failing route returns.
// No stack traces or query text ever reach the caller.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid credentials"`
}
