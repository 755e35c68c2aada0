package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieManager writes and clears the session cookie. The cookie is HTTP-only
// and SameSite Lax; the browser never sees anything but the opaque token.
type CookieManager struct {
	Name   string
	Domain string
	Secure bool
}

func NewCookieManager(name, domain string, secure bool) *CookieManager {
	return &CookieManager{Name: name, Domain: domain, Secure: secure}
}

// SetSession delivers the session token to the client for the given lifetime.
func (m *CookieManager) SetSession(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, token, int(ttl.Seconds()), "/", m.Domain, m.Secure, true)
}

func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.Name, "", -1, "/", m.Domain, m.Secure, true)
}

// Token reads the session token from the request, empty if absent.
func (m *CookieManager) Token(c *gin.Context) string {
	token, err := c.Cookie(m.Name)
	if err != nil {
		return ""
	}
	return token
}
