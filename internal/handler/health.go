// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"eduai-api/internal/api"
	"eduai-api/internal/cache"
	"eduai-api/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthResponse reports overall system health to the client-side checks.
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// HealthHandler probes the database and the cache.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database unhealthy"})
		}
		if err := rdb.Set(ctx, "health:probe", "ok", time.Minute).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Cache unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
