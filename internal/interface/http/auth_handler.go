package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/heelmeals/nutritrack/internal/application"
	"github.com/heelmeals/nutritrack/internal/domain/entity"
	"github.com/heelmeals/nutritrack/internal/infrastructure/googleauth"
	"github.com/heelmeals/nutritrack/internal/infrastructure/session"
	"github.com/heelmeals/nutritrack/pkg/helpers"
	"github.com/heelmeals/nutritrack/pkg/response"
)

// AuthService is the slice of the application layer the auth handler needs.
type AuthService interface {
	Login(ctx context.Context, ident *googleauth.ExternalIdentity) (*entity.User, bool, error)
}

// AuthHandler drives the login/callback/logout flow. The callback composes
// the OAuth bridge, the find-or-create step, and the session store explicitly;
// the only business decision in the path is the landing-target branch.
type AuthHandler struct {
	Svc         AuthService
	Provider    googleauth.Provider
	Sessions    session.Store
	State       *helpers.StateManager
	Cookies     *helpers.CookieManager
	Logger      *logrus.Logger
	FrontendURL string
	SessionTTL  time.Duration
}

func NewAuthHandler(svc AuthService, provider googleauth.Provider, sessions session.Store, state *helpers.StateManager, cookies *helpers.CookieManager, logger *logrus.Logger, frontendURL string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		Svc:         svc,
		Provider:    provider,
		Sessions:    sessions,
		State:       state,
		Cookies:     cookies,
		Logger:      logger,
		FrontendURL: frontendURL,
		SessionTTL:  sessionTTL,
	}
}

func (h *AuthHandler) failureURL() string {
	return h.FrontendURL + "/?error=auth_failed"
}

// Login GET /auth/google
// Redirects to Google's consent screen with profile+email scopes and forced
// account re-selection.
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := h.State.Issue()
	if err != nil {
		h.Logger.WithError(err).Error("state issue failed")
		c.Redirect(http.StatusFound, h.failureURL())
		return
	}
	c.Redirect(http.StatusFound, h.Provider.AuthCodeURL(state))
}

// Callback GET /auth/google/callback
// Any failure lands the client back on the anonymous page with an error
// indicator and no session. On success the session cookie is set and the
// redirect target is picked from freshly read user state.
func (h *AuthHandler) Callback(c *gin.Context) {
	if provErr := c.Query("error"); provErr != "" {
		h.Logger.WithField("provider_error", provErr).Warn("oauth consent rejected")
		c.Redirect(http.StatusFound, h.failureURL())
		return
	}
	if err := h.State.Verify(c.Query("state")); err != nil {
		h.Logger.WithError(err).Warn("oauth state rejected")
		c.Redirect(http.StatusFound, h.failureURL())
		return
	}

	ident, err := h.Provider.ExchangeCode(c.Request.Context(), c.Query("code"))
	if err != nil {
		h.Logger.WithError(err).Warn("oauth exchange failed")
		c.Redirect(http.StatusFound, h.failureURL())
		return
	}

	u, _, err := h.Svc.Login(c.Request.Context(), ident)
	if err != nil {
		h.Logger.WithError(err).Error("login failed")
		c.Redirect(http.StatusFound, h.failureURL())
		return
	}

	token, err := h.Sessions.Create(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.WithError(err).Error("session create failed")
		c.Redirect(http.StatusFound, h.failureURL())
		return
	}
	h.Cookies.SetSession(c, token, h.SessionTTL)

	c.Redirect(http.StatusFound, h.FrontendURL+application.LandingPath(u))
}

// Logout GET /api/auth/logout
// Destroying a missing or already-expired session is not an error; only a
// session-store fault surfaces as 500 so the client can retry.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := h.Cookies.Token(c); token != "" {
		if err := h.Sessions.Destroy(c.Request.Context(), token); err != nil {
			h.Logger.WithError(err).Error("session destroy failed")
			response.Error[any](c, http.StatusInternalServerError, "error logging out", nil)
			return
		}
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out successfully", nil)
}
