package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eduai-api/internal/cache"
	"eduai-api/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	e := echo.New()

	t.Run("db unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return errors.New("down") }}
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		require.NoError(t, HealthHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":"Database unhealthy"}`, rec.Body.String())
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return nil }}
		rdb := &cache.FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("down"))
		}}
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		require.NoError(t, HealthHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":"Cache unhealthy"}`, rec.Body.String())
	})

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(ctx context.Context) error { return nil }}
		rdb := &cache.FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		}}
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		require.NoError(t, HealthHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})
}
