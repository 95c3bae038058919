package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eduai-api/internal/api"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// seamGuard restores the package seams after a test that overrides them.
func seamGuard(t *testing.T) {
	t.Helper()
	oldGet := getUserByEmail
	oldCreate := createUser
	oldHash := hashPassword
	oldCompare := comparePassword
	oldIssue := issueAccessToken
	oldID := newDemoID
	t.Cleanup(func() {
		getUserByEmail = oldGet
		createUser = oldCreate
		hashPassword = oldHash
		comparePassword = oldCompare
		issueAccessToken = oldIssue
		newDemoID = oldID
	})
}

func newTestEcho() *echo.Echo {
	return echo.New()
}

func newAuthCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeAuthResponse(t *testing.T, rec *httptest.ResponseRecorder) api.AuthResponse {
	t.Helper()
	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
