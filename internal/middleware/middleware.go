// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"
	"strings"

	"eduai-api/internal/api"
	"eduai-api/internal/model"
	"eduai-api/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// extractClaims writes the 401 response itself on failure and returns nil
// claims; the returned error is whatever c.JSON produced.
func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No token provided"})
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid authorization header"})
	}
	claims, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		// Expired, tampered and malformed tokens are not distinguished.
		return nil, c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid or expired token"})
	}
	return claims, nil
}

// RequireAuth validates the bearer token and stores its claims under
// ContextUserKey for downstream handlers.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if claims == nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

// RequireRole validates the token and rejects with 403 unless the claims
// carry one of the given roles.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.CustomClaims)
			for _, r := range roles {
				if claims.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Insufficient privileges"})
		})
	}
}
