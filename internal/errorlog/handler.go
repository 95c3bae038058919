// File: internal/errorlog/handler.go
package errorlog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RecentHandler serves the in-memory buffer of recent errors.
// @Summary     Recent errors
// @Tags        error-logs
// @Produce     json
// @Success     200 {array} model.ErrorLog
// @Router      /error-logs/recent [get]
func RecentHandler(buf *Buffer) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, buf.Recent())
	}
}
