// File: internal/handler/settings/notification.go

// Package settings serves the singleton configuration records. Both tables
// hold exactly one row (id 1) maintained by upsert; reads go through a
// short-lived redis cache.
package settings

import (
	"encoding/json"
	"net/http"
	"time"

	"eduai-api/internal/api"
	"eduai-api/internal/cache"
	"eduai-api/internal/database"
	"eduai-api/internal/model"
	"eduai-api/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	notificationCacheKey = "settings:notification"
	seoCacheKey          = "settings:seo"
	cacheTTL             = 5 * time.Minute
)

var (
	getNotificationSettings    = store.GetNotificationSettings
	upsertNotificationSettings = store.UpsertNotificationSettings
	getSeoSettings             = store.GetSeoSettings
	upsertSeoSettings          = store.UpsertSeoSettings
)

func notificationResponse(s *model.NotificationSettings) api.NotificationSettingsResponse {
	return api.NotificationSettingsResponse{
		EmailEnabled: s.EmailEnabled,
		PushEnabled:  s.PushEnabled,
		SenderName:   s.SenderName,
		SenderEmail:  s.SenderEmail,
		UpdatedAt:    s.UpdatedAt,
	}
}

// GetNotificationSettingsHandler returns the singleton notification
// settings. An absent row yields the defaults rather than 404.
// @Summary     Get notification settings
// @Tags        settings
// @Produce     json
// @Success     200 {object} api.NotificationSettingsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /notification-settings [get]
func GetNotificationSettingsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if data, err := rdb.Get(ctx, notificationCacheKey).Bytes(); err == nil {
			var resp api.NotificationSettingsResponse
			if json.Unmarshal(data, &resp) == nil {
				return c.JSON(http.StatusOK, resp)
			}
		}

		s, err := getNotificationSettings(ctx, db)
		if err != nil {
			// Missing singleton row, or store failure. Defaults keep the
			// client form usable either way.
			s = &model.NotificationSettings{ID: model.SettingsID, EmailEnabled: true}
		}
		resp := notificationResponse(s)
		if data, err := json.Marshal(resp); err == nil {
			rdb.Set(ctx, notificationCacheKey, data, cacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// UpdateNotificationSettingsHandler upserts the singleton row (always id 1)
// and refreshes the cache.
// @Summary     Update notification settings
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body api.NotificationSettingsRequest true "Settings"
// @Success     200 {object} api.NotificationSettingsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /notification-settings [put]
func UpdateNotificationSettingsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.NotificationSettingsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		s, err := upsertNotificationSettings(c.Request().Context(), db, &model.NotificationSettings{
			EmailEnabled: req.EmailEnabled,
			PushEnabled:  req.PushEnabled,
			SenderName:   req.SenderName,
			SenderEmail:  req.SenderEmail,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		resp := notificationResponse(s)
		if data, err := json.Marshal(resp); err == nil {
			rdb.Set(c.Request().Context(), notificationCacheKey, data, cacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
