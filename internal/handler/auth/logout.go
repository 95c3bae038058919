// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"eduai-api/internal/api"

	"github.com/labstack/echo/v4"
)

// LogoutHandler acknowledges a logout. There is no server-side session
// state and no revocation list; issued tokens stay valid until expiry.
// @Summary     Log out
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
	}
}
