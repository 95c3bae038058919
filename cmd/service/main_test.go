package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"eduai-api/internal/cache"
	"eduai-api/internal/database"
	"eduai-api/internal/worker"
)

func restoreGlobals() {
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool = worker.NewPool
	exitFunc = func(code int) {}
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "postgres://test", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127.0.0.1:6379", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8080", addr)
		return nil
	}

	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("WORKER_COUNT", "2")

	require.NoError(t, run())
	require.True(t, called["pgx"])
	require.True(t, called["redis"])
	require.True(t, called["migrate"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)

	t.Setenv("DATABASE_URL", "")
	require.Error(t, run())

	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("REDIS_ADDR", "")
	require.Error(t, run())

	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_DB", "")
	require.Error(t, run())

	t.Setenv("REDIS_DB", "notanumber")
	require.Error(t, run())

	t.Setenv("REDIS_DB", "0")
	t.Setenv("WORKER_COUNT", "-3")
	require.Error(t, run())

	t.Setenv("WORKER_COUNT", "1")
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		return nil, errors.New("dial refused")
	}
	require.Error(t, run())

	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		return &database.FakeDB{CloseFn: func() {}}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		return nil, errors.New("dial refused")
	}
	require.Error(t, run())

	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		return &cache.FakeCache{}, nil
	}
	runMigrationsFn = func(url string) error { return errors.New("migrate failed") }
	require.Error(t, run())
}
