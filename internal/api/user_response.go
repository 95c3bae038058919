// File: internal/api/user_response.go
package api

import "eduai-api/internal/model"

// swagger:model api.UserResponse
type UserResponse struct {
	ID    int        `json:"id" example:"1"`
	Email string     `json:"email" example:"alice@example.com"`
	Name  string     `json:"name" example:"Alice"`
	Role  model.Role `json:"role" example:"student"`
}

// NewUserResponse maps a user identity onto the wire view.
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
