// File: internal/handler/settings/seo.go
package settings

import (
	"encoding/json"
	"net/http"

	"eduai-api/internal/api"
	"eduai-api/internal/cache"
	"eduai-api/internal/database"
	"eduai-api/internal/model"

	"github.com/labstack/echo/v4"
)

func seoResponse(s *model.SeoSettings) api.SeoSettingsResponse {
	return api.SeoSettingsResponse{
		SiteTitle:       s.SiteTitle,
		MetaDescription: s.MetaDescription,
		MetaKeywords:    s.MetaKeywords,
		OgImage:         s.OgImage,
		UpdatedAt:       s.UpdatedAt,
	}
}

// GetSeoSettingsHandler returns the singleton SEO settings.
// @Summary     Get SEO settings
// @Tags        settings
// @Produce     json
// @Success     200 {object} api.SeoSettingsResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /seo [get]
func GetSeoSettingsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if data, err := rdb.Get(ctx, seoCacheKey).Bytes(); err == nil {
			var resp api.SeoSettingsResponse
			if json.Unmarshal(data, &resp) == nil {
				return c.JSON(http.StatusOK, resp)
			}
		}

		s, err := getSeoSettings(ctx, db)
		if err != nil {
			s = &model.SeoSettings{ID: model.SettingsID}
		}
		resp := seoResponse(s)
		if data, err := json.Marshal(resp); err == nil {
			rdb.Set(ctx, seoCacheKey, data, cacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// UpdateSeoSettingsHandler upserts the singleton row (always id 1).
// @Summary     Update SEO settings
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body api.SeoSettingsRequest true "Settings"
// @Success     200 {object} api.SeoSettingsResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /seo [put]
func UpdateSeoSettingsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SeoSettingsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		s, err := upsertSeoSettings(c.Request().Context(), db, &model.SeoSettings{
			SiteTitle:       req.SiteTitle,
			MetaDescription: req.MetaDescription,
			MetaKeywords:    req.MetaKeywords,
			OgImage:         req.OgImage,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		}

		resp := seoResponse(s)
		if data, err := json.Marshal(resp); err == nil {
			rdb.Set(c.Request().Context(), seoCacheKey, data, cacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
