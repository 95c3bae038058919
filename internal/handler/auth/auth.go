// File: internal/handler/auth/auth.go
package auth

import (
	"math/rand/v2"

	"eduai-api/internal/service"
	"eduai-api/internal/store"
)

// Seams for tests, and the one knob the demo-id behavior hangs on: demo
// logins and degraded registrations get a fresh random id per call, so the
// id is not stable across requests.
var (
	getUserByEmail   = store.GetUserByEmail
	createUser       = store.CreateUser
	hashPassword     = service.HashPassword
	comparePassword  = service.ComparePassword
	issueAccessToken = service.IssueAccessToken
	newDemoID        = func() int { return rand.IntN(1000) }
)
