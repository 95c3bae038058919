package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eduai-api/internal/api"
	"eduai-api/internal/cache"
	"eduai-api/internal/database"
	"eduai-api/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type structValidator struct{ v *validator.Validate }

func (sv *structValidator) Validate(i any) error { return sv.v.Struct(i) }

func seamGuard(t *testing.T) {
	t.Helper()
	oldGetN := getNotificationSettings
	oldUpN := upsertNotificationSettings
	oldGetS := getSeoSettings
	oldUpS := upsertSeoSettings
	t.Cleanup(func() {
		getNotificationSettings = oldGetN
		upsertNotificationSettings = oldUpN
		getSeoSettings = oldGetS
		upsertSeoSettings = oldUpS
	})
}

func newSettingsCtx(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &structValidator{v: validator.New()}
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/", nil)
	} else {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func missCache(set *bool) *cache.FakeCache {
	return &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			if set != nil {
				*set = true
			}
			return redis.NewStatusResult("OK", nil)
		},
	}
}

func TestGetNotificationSettingsCacheMiss(t *testing.T) {
	seamGuard(t)
	getNotificationSettings = func(context.Context, database.DB) (*model.NotificationSettings, error) {
		return &model.NotificationSettings{ID: 1, EmailEnabled: true, SenderName: "EduAI"}, nil
	}

	cacheSet := false
	ctx, rec := newSettingsCtx(http.MethodGet, "")
	h := GetNotificationSettingsHandler(&database.FakeDB{}, missCache(&cacheSet))
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, cacheSet)

	var resp api.NotificationSettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.EmailEnabled)
	require.Equal(t, "EduAI", resp.SenderName)
}

func TestGetNotificationSettingsCacheHit(t *testing.T) {
	seamGuard(t)
	getNotificationSettings = func(context.Context, database.DB) (*model.NotificationSettings, error) {
		t.Fatal("store consulted on cache hit")
		return nil, nil
	}

	cached, _ := json.Marshal(api.NotificationSettingsResponse{PushEnabled: true})
	rdb := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult(string(cached), nil)
		},
	}

	ctx, rec := newSettingsCtx(http.MethodGet, "")
	require.NoError(t, GetNotificationSettingsHandler(&database.FakeDB{}, rdb)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.NotificationSettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.PushEnabled)
}

func TestGetNotificationSettingsDefaults(t *testing.T) {
	seamGuard(t)
	getNotificationSettings = func(context.Context, database.DB) (*model.NotificationSettings, error) {
		return nil, errors.New("no rows")
	}

	// an absent singleton row yields defaults, not 404
	ctx, rec := newSettingsCtx(http.MethodGet, "")
	require.NoError(t, GetNotificationSettingsHandler(&database.FakeDB{}, missCache(nil))(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.NotificationSettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.EmailEnabled)
	require.False(t, resp.PushEnabled)
}

func TestUpdateNotificationSettings(t *testing.T) {
	seamGuard(t)
	var got *model.NotificationSettings
	upsertNotificationSettings = func(_ context.Context, _ database.DB, s *model.NotificationSettings) (*model.NotificationSettings, error) {
		s.ID = model.SettingsID
		s.UpdatedAt = time.Now()
		got = s
		return s, nil
	}

	cacheSet := false
	ctx, rec := newSettingsCtx(http.MethodPut, `{"email_enabled":false,"push_enabled":true,"sender_email":"noreply@eduai.com"}`)
	h := UpdateNotificationSettingsHandler(&database.FakeDB{}, missCache(&cacheSet))
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, cacheSet)
	require.NotNil(t, got)
	require.False(t, got.EmailEnabled)
	require.True(t, got.PushEnabled)

	// malformed sender email
	ctx, rec = newSettingsCtx(http.MethodPut, `{"sender_email":"not-an-email"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// store failure stays opaque
	upsertNotificationSettings = func(context.Context, database.DB, *model.NotificationSettings) (*model.NotificationSettings, error) {
		return nil, errors.New("pq: boom")
	}
	ctx, rec = newSettingsCtx(http.MethodPut, `{}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "pq:")
}

func TestSeoSettingsHandlers(t *testing.T) {
	seamGuard(t)
	getSeoSettings = func(context.Context, database.DB) (*model.SeoSettings, error) {
		return &model.SeoSettings{ID: 1, SiteTitle: "EduAI"}, nil
	}
	var got *model.SeoSettings
	upsertSeoSettings = func(_ context.Context, _ database.DB, s *model.SeoSettings) (*model.SeoSettings, error) {
		s.ID = model.SettingsID
		got = s
		return s, nil
	}

	ctx, rec := newSettingsCtx(http.MethodGet, "")
	require.NoError(t, GetSeoSettingsHandler(&database.FakeDB{}, missCache(nil))(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "EduAI")

	// site_title is required on update
	h := UpdateSeoSettingsHandler(&database.FakeDB{}, missCache(nil))
	ctx, rec = newSettingsCtx(http.MethodPut, `{"meta_description":"x"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	ctx, rec = newSettingsCtx(http.MethodPut, `{"site_title":"EduAI CBT","meta_keywords":"cbt,exams"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	require.Equal(t, model.SettingsID, got.ID)
	require.Equal(t, "EduAI CBT", got.SiteTitle)
}
