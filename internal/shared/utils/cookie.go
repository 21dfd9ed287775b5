package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/config"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
)

// SessionCookieName resolves the configured cookie name, falling back to
// the default when the configuration leaves it blank.
func SessionCookieName(cookieConfig config.CookieConfig) string {
	if cookieConfig.Name != "" {
		return cookieConfig.Name
	}
	return constants.DefaultSessionCookie
}

// SetSessionCookie sets the opaque session identifier as an HttpOnly cookie
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, sessionID string, maxAge int) {
	sameSite := parseSameSite(cookieConfig.SameSite)
	c.SetSameSite(sameSite)

	c.SetCookie(
		SessionCookieName(cookieConfig),
		sessionID,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie expires the session cookie in the browser
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	sameSite := parseSameSite(cookieConfig.SameSite)
	c.SetSameSite(sameSite)

	c.SetCookie(
		SessionCookieName(cookieConfig),
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// GetSessionCookie retrieves the session identifier from the request cookie.
// Returns an empty string when the cookie is absent.
func GetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) string {
	sessionID, err := c.Cookie(SessionCookieName(cookieConfig))
	if err != nil {
		return ""
	}
	return sessionID
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
