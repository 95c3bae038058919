// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"eduai-api/internal/cache"
	"eduai-api/internal/database"
	"eduai-api/internal/errorlog"
	"eduai-api/internal/handler"
	"eduai-api/internal/handler/auth"
	"eduai-api/internal/handler/crud"
	"eduai-api/internal/handler/settings"
	"eduai-api/internal/middleware"
	"eduai-api/internal/model"
	"eduai-api/internal/service"
	"eduai-api/internal/worker"
)

// Setup registers all routes. Process-scoped state (demo accounts, the
// recent-error buffer, the worker pool) is passed in, never reached for as
// package globals.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, demo service.DemoAccounts, buf *errorlog.Buffer, wp worker.Pool) {
	api := e.Group("/api")
	api.Use(errorlog.Recorder(db, buf, wp))

	api.GET("/health", handler.HealthHandler(db, rdb))

	api.POST("/auth/login", auth.LoginHandler(db, demo))
	api.POST("/auth/register", auth.RegisterHandler(db, demo))
	api.GET("/auth/verify", auth.VerifyHandler(), middleware.RequireAuth)
	api.POST("/auth/logout", auth.LogoutHandler())

	// AI endpoint configuration is sensitive (carries provider keys);
	// mutations need an admin-level token.
	adminOnly := middleware.RequireRole(model.RoleAdmin, model.RoleSuperAdmin)
	crud.AIEndpoints().Register(api.Group("/ai-endpoints"), db, adminOnly)
	crud.Comments().Register(api.Group("/comments"), db)

	errorLogs := api.Group("/error-logs")
	errorLogs.GET("/recent", errorlog.RecentHandler(buf))
	crud.ErrorLogs().Register(errorLogs, db)

	api.GET("/notification-settings", settings.GetNotificationSettingsHandler(db, rdb))
	api.PUT("/notification-settings", settings.UpdateNotificationSettingsHandler(db, rdb), adminOnly)
	api.GET("/seo", settings.GetSeoSettingsHandler(db, rdb))
	api.PUT("/seo", settings.UpdateSeoSettingsHandler(db, rdb), adminOnly)

	// Sitemap lives outside /api so crawlers can fetch it at the usual path.
	e.GET("/seo/sitemap.xml", settings.SitemapHandler())
}
