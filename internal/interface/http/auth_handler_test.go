package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heelmeals/nutritrack/internal/domain/entity"
	"github.com/heelmeals/nutritrack/internal/infrastructure/googleauth"
	"github.com/heelmeals/nutritrack/pkg/helpers"
)

const (
	testFrontend = "http://localhost:3001"
	testCookie   = "nutritrack_session"
)

type authSvcMock struct {
	loginFn func(ctx context.Context, ident *googleauth.ExternalIdentity) (*entity.User, bool, error)
}

func (m *authSvcMock) Login(ctx context.Context, ident *googleauth.ExternalIdentity) (*entity.User, bool, error) {
	return m.loginFn(ctx, ident)
}

type providerMock struct {
	authCodeURLFn func(state string) string
	exchangeFn    func(ctx context.Context, code string) (*googleauth.ExternalIdentity, error)
}

func (m *providerMock) AuthCodeURL(state string) string {
	return m.authCodeURLFn(state)
}

func (m *providerMock) ExchangeCode(ctx context.Context, code string) (*googleauth.ExternalIdentity, error) {
	return m.exchangeFn(ctx, code)
}

type sessionsMock struct {
	createFn  func(ctx context.Context, userID string) (string, error)
	destroyFn func(ctx context.Context, token string) error
}

func (m *sessionsMock) Create(ctx context.Context, userID string) (string, error) {
	return m.createFn(ctx, userID)
}

func (m *sessionsMock) Resolve(context.Context, string) (string, error) { return "", nil }

func (m *sessionsMock) Destroy(ctx context.Context, token string) error {
	if m.destroyFn == nil {
		return nil
	}
	return m.destroyFn(ctx, token)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newAuthHandler(svc AuthService, provider googleauth.Provider, sessions *sessionsMock) *AuthHandler {
	state := helpers.NewStateManager("test-secret", 10*time.Minute)
	cookies := helpers.NewCookieManager(testCookie, "localhost", false)
	return NewAuthHandler(svc, provider, sessions, state, cookies, testLogger(), testFrontend, time.Hour)
}

func authEngine(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/auth/google", h.Login)
	r.GET("/auth/google/callback", h.Callback)
	r.GET("/api/auth/logout", h.Logout)
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer func() { _ = res.Body.Close() }()
	for _, c := range res.Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func TestLoginRedirectsToConsent(t *testing.T) {
	provider := &providerMock{authCodeURLFn: func(state string) string {
		assert.NotEmpty(t, state)
		return "https://accounts.google.com/o/oauth2/auth?state=" + state
	}}
	r := authEngine(newAuthHandler(nil, provider, &sessionsMock{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "accounts.google.com")
}

func TestCallbackProviderError(t *testing.T) {
	h := newAuthHandler(nil, &providerMock{}, &sessionsMock{})
	r := authEngine(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google/callback?error=access_denied", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testFrontend+"/?error=auth_failed", w.Header().Get("Location"))
	assert.Nil(t, sessionCookie(t, w), "no session on a failed login")
}

func TestCallbackBadState(t *testing.T) {
	h := newAuthHandler(nil, &providerMock{}, &sessionsMock{})
	r := authEngine(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=forged&code=c", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testFrontend+"/?error=auth_failed", w.Header().Get("Location"))
	assert.Nil(t, sessionCookie(t, w))
}

func TestCallbackExchangeFailure(t *testing.T) {
	provider := &providerMock{exchangeFn: func(context.Context, string) (*googleauth.ExternalIdentity, error) {
		return nil, googleauth.ErrAuthFailed
	}}
	h := newAuthHandler(nil, provider, &sessionsMock{})
	r := authEngine(h)

	state, err := h.State.Issue()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google/callback?state="+state+"&code=bad", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testFrontend+"/?error=auth_failed", w.Header().Get("Location"))
	assert.Nil(t, sessionCookie(t, w))
}

func TestCallbackFirstLogin(t *testing.T) {
	provider := &providerMock{exchangeFn: func(context.Context, string) (*googleauth.ExternalIdentity, error) {
		return &googleauth.ExternalIdentity{SubjectID: "g-123", Email: "jordan@live.unc.edu"}, nil
	}}
	svc := &authSvcMock{loginFn: func(_ context.Context, ident *googleauth.ExternalIdentity) (*entity.User, bool, error) {
		assert.Equal(t, "g-123", ident.SubjectID)
		return &entity.User{ID: "u-1", HasCompletedForm: false}, true, nil
	}}
	sessions := &sessionsMock{createFn: func(_ context.Context, userID string) (string, error) {
		assert.Equal(t, "u-1", userID)
		return "opaque-token", nil
	}}
	h := newAuthHandler(svc, provider, sessions)
	r := authEngine(h)

	state, err := h.State.Issue()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google/callback?state="+state+"&code=good", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testFrontend+"/preferences-form", w.Header().Get("Location"))

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.Equal(t, "opaque-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestCallbackOnboardedUser(t *testing.T) {
	provider := &providerMock{exchangeFn: func(context.Context, string) (*googleauth.ExternalIdentity, error) {
		return &googleauth.ExternalIdentity{SubjectID: "g-123"}, nil
	}}
	svc := &authSvcMock{loginFn: func(context.Context, *googleauth.ExternalIdentity) (*entity.User, bool, error) {
		return &entity.User{ID: "u-1", HasCompletedForm: true}, false, nil
	}}
	sessions := &sessionsMock{createFn: func(context.Context, string) (string, error) {
		return "opaque-token", nil
	}}
	h := newAuthHandler(svc, provider, sessions)
	r := authEngine(h)

	state, err := h.State.Issue()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google/callback?state="+state+"&code=good", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testFrontend+"/dashboard", w.Header().Get("Location"))
}

func TestLogoutDestroysSession(t *testing.T) {
	destroyed := ""
	sessions := &sessionsMock{destroyFn: func(_ context.Context, token string) error {
		destroyed = token
		return nil
	}}
	r := authEngine(newAuthHandler(nil, &providerMock{}, sessions))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "opaque-token"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "logged out successfully")
	assert.Equal(t, "opaque-token", destroyed)

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "cookie must be cleared")
}

func TestLogoutWithoutSession(t *testing.T) {
	sessions := &sessionsMock{destroyFn: func(context.Context, string) error {
		t.Error("nothing to destroy without a cookie")
		return nil
	}}
	r := authEngine(newAuthHandler(nil, &providerMock{}, sessions))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code, "logout is idempotent")
}

func TestLogoutStoreFailure(t *testing.T) {
	sessions := &sessionsMock{destroyFn: func(context.Context, string) error {
		return errors.New("redis down")
	}}
	r := authEngine(newAuthHandler(nil, &providerMock{}, sessions))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "opaque-token"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error logging out")
}
