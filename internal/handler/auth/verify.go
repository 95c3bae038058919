// File: internal/handler/auth/verify.go
package auth

import (
	"net/http"

	"eduai-api/internal/api"
	"eduai-api/internal/middleware"
	"eduai-api/internal/service"

	"github.com/labstack/echo/v4"
)

// VerifyHandler echoes the identity carried by a valid bearer token.
// The claims are returned verbatim without a store re-fetch, so they can be
// stale relative to a since-updated user record.
// @Summary     Verify token
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.VerifyResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/verify [get]
func VerifyHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid or expired token"})
		}
		return c.JSON(http.StatusOK, api.VerifyResponse{User: api.UserResponse{
			ID:    claims.UserID,
			Email: claims.Email,
			Name:  claims.Name,
			Role:  claims.Role,
		}})
	}
}
