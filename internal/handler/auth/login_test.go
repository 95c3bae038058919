package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"eduai-api/internal/database"
	"eduai-api/internal/model"
	"eduai-api/internal/service"

	"github.com/stretchr/testify/require"
)

func TestLoginHandlerValidation(t *testing.T) {
	e := newTestEcho()
	h := LoginHandler(&database.FakeDB{}, service.DefaultDemoAccounts())

	ctx, rec := newAuthCtx(e, `{"email":"a@b.com"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Email and password are required"}`, rec.Body.String())

	ctx, rec = newAuthCtx(e, `{"password":"x"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandlerDemoAccounts(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	seamGuard(t)
	// the store must never be reached on a demo hit
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		t.Fatal("store consulted for a demo account")
		return nil, nil
	}

	e := newTestEcho()
	demo := service.DefaultDemoAccounts()
	h := LoginHandler(&database.FakeDB{}, demo)

	for _, acct := range demo {
		body := fmt.Sprintf(`{"email":%q,"password":%q}`, acct.Email, acct.Password)
		ctx, rec := newAuthCtx(e, body)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusOK, rec.Code, acct.Email)

		resp := decodeAuthResponse(t, rec)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, acct.Email, resp.User.Email)
		require.Equal(t, acct.Role, resp.User.Role)
		require.GreaterOrEqual(t, resp.User.ID, 0)
		require.Less(t, resp.User.ID, 1000)
	}
}

func TestLoginHandlerDemoIDNotStable(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	seamGuard(t)
	ids := []int{7, 8}
	newDemoID = func() int { id := ids[0]; ids = ids[1:]; return id }

	e := newTestEcho()
	h := LoginHandler(&database.FakeDB{}, service.DefaultDemoAccounts())

	ctx, rec := newAuthCtx(e, `{"email":"demo@eduai.com","password":"demo123"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, 7, decodeAuthResponse(t, rec).User.ID)

	ctx, rec = newAuthCtx(e, `{"email":"demo@eduai.com","password":"demo123"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, 8, decodeAuthResponse(t, rec).User.ID)
}

func TestLoginHandlerStorePath(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	hash, err := service.HashPassword("Secret123!")
	require.NoError(t, err)
	stored := &model.User{ID: 5, Email: "alice@example.com", Name: "Alice", PasswordHash: hash, Role: model.RoleTeacher}

	e := newTestEcho()

	// store lookup failure (missing user or store down) reads as bad credentials
	seamGuard(t)
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, errors.New("connection refused")
	}
	h := LoginHandler(&database.FakeDB{}, service.DefaultDemoAccounts())
	ctx, rec := newAuthCtx(e, `{"email":"alice@example.com","password":"Secret123!"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())

	// wrong password
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return stored, nil }
	ctx, rec = newAuthCtx(e, `{"email":"alice@example.com","password":"wrong"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// demo email with a non-demo password also falls through to the store
	ctx, rec = newAuthCtx(e, `{"email":"admin@eduai.com","password":"nope"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// success
	ctx, rec = newAuthCtx(e, `{"email":"alice@example.com","password":"Secret123!"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeAuthResponse(t, rec)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, 5, resp.User.ID)
	require.Equal(t, model.RoleTeacher, resp.User.Role)

	claims, err := service.VerifyAccessToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, 5, claims.UserID)
	require.Equal(t, model.RoleTeacher, claims.Role)
}

func TestLoginHandlerTokenFailure(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	e := newTestEcho()
	h := LoginHandler(&database.FakeDB{}, service.DefaultDemoAccounts())
	ctx, rec := newAuthCtx(e, `{"email":"demo@eduai.com","password":"demo123"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
