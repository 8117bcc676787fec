package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the browser cookie carrying the signed session token.
const SessionCookieName = "admin_session"

type CookieManager struct {
	Domain string
	Secure bool
}

func NewCookieManager(domain string, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure}
}

// SetSession stores the signed session token, HttpOnly, expiring with the session.
func (m *CookieManager) SetSession(c *gin.Context, token string, exp time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAgeFrom(exp), "/", m.Domain, m.Secure, true)
}

func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", m.Domain, m.Secure, true)
}

// SessionIDFromRequest extracts and validates the session id carried by the
// session cookie. Returns "" when the cookie is absent or its token invalid.
func SessionIDFromRequest(c *gin.Context, tokens *TokenManager) string {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		return ""
	}
	claims, err := tokens.ParseSessionToken(raw)
	if err != nil {
		return ""
	}
	return claims.SessionID
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
