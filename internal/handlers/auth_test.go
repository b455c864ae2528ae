package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Prathamesh-chougale-17/status-study/internal/auth"
)

// newBareEnv builds a router with no admin bootstrapped yet.
func newBareEnv(t *testing.T) *testEnv {
	t.Helper()
	mem := newMemStore()
	svc := auth.New(&fakeIdentities{}, &fakeSessions{}, testAdminEmail, []byte("test-secret"))
	router := NewRouter(Deps{
		Auth:          svc,
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
		Topics:        &memTopics{m: mem},
		Resources:     &memResources{m: mem},
		Subtopics:     &memSubtopics{m: mem},
		Tasks:         &memTasks{m: mem},
		Progress:      &memProgress{m: mem},
		Suggestions:   &memSuggestions{m: mem},
		Log:           zap.NewNop(),
	})
	return &testEnv{router: router, mem: mem, svc: svc}
}

func TestSignUpRoute(t *testing.T) {
	env := newBareEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/sign-up", map[string]string{
		"email": "intruder@example.com", "password": "whatever123", "name": "Eve",
	}, false)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/sign-up", map[string]string{
		"email": testAdminEmail, "password": testAdminPassword, "name": "Admin",
	}, false)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/sign-up", map[string]string{
		"email": testAdminEmail, "password": testAdminPassword, "name": "Admin",
	}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "second sign-up must fail")
}

func TestSignInRouteSetsCookie(t *testing.T) {
	env := newBareEnv(t)
	_, err := env.svc.SignUp(context.Background(), testAdminEmail, testAdminPassword, "Admin")
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/api/auth/sign-in", map[string]string{
		"email": testAdminEmail, "password": "wrong-password",
	}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	rec = env.do(t, http.MethodPost, "/api/auth/sign-in", map[string]string{
		"email": "intruder@example.com", "password": testAdminPassword,
	}, false)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/sign-in", map[string]string{
		"email": testAdminEmail, "password": testAdminPassword,
	}, false)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// The issued cookie opens protected routes.
	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req.AddCookie(cookies[0])
	authed := httptest.NewRecorder()
	env.router.ServeHTTP(authed, req)
	assert.Equal(t, http.StatusOK, authed.Code)
}

func TestSignOutRouteClearsSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/sign-out", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0, "cookie must be expired")

	rec = env.do(t, http.MethodGet, "/api/topics", nil, true)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "old cookie is dead after sign-out")
}

func TestAuthStatusRoute(t *testing.T) {
	env := newTestEnv(t)

	var status struct {
		HasSession bool `json:"hasSession"`
	}
	rec := env.do(t, http.MethodGet, "/api/auth-status", nil, false)
	require.Equal(t, http.StatusOK, rec.Code, "auth-status always answers 200")
	decodeBody(t, rec, &status)
	assert.False(t, status.HasSession)

	rec = env.do(t, http.MethodGet, "/api/auth-status", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &status)
	assert.True(t, status.HasSession)
}

func TestCreateAdminRoute(t *testing.T) {
	env := newBareEnv(t)

	rec := env.do(t, http.MethodPost, "/api/create-admin", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Success bool   `json:"success"`
		Email   string `json:"email"`
	}
	decodeBody(t, rec, &result)
	assert.True(t, result.Success)
	assert.Equal(t, testAdminEmail, result.Email)

	// The bootstrap is not idempotent: a second call reports failure.
	rec = env.do(t, http.MethodPost, "/api/create-admin", nil, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// GET alias behaves the same as POST.
	rec = env.do(t, http.MethodGet, "/api/create-admin", nil, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
