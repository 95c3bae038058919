// File: internal/errorlog/recorder.go
package errorlog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"eduai-api/internal/database"
	"eduai-api/internal/model"
	"eduai-api/internal/store"
	"eduai-api/internal/worker"

	"github.com/labstack/echo/v4"
)

var createErrorLog = store.CreateErrorLog

// Recorder captures 5xx responses into the in-memory buffer and persists
// them through the worker pool. Persistence is best effort and never
// affects the response already sent.
func Recorder(db database.DB, buf *Buffer, wp worker.Pool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			if status < http.StatusInternalServerError {
				return err
			}

			entry := model.ErrorLog{
				Message:   fmt.Sprintf("%s %s returned %d", c.Request().Method, c.Path(), status),
				Source:    "http",
				CreatedAt: time.Now(),
			}
			buf.Append(entry)
			wp.Submit(func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_, _ = createErrorLog(ctx, db, &entry)
			})
			return err
		}
	}
}
