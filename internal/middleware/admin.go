package middleware

import (
	"net/http"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
)

const (
	AdminCookieName  = "admin_auth"
	adminCookieValue = "1"

	AdminCookieMaxAge = 30 * 24 * time.Hour
)

// HasAdminCookie reports whether the static-credential channel is present.
// It is independent of the identity session.
func HasAdminCookie(c *drift.Context) bool {
	value, err := c.Cookie(AdminCookieName)
	return err == nil && value == adminCookieValue
}

func SetAdminCookie(c *drift.Context, secure bool) {
	http.SetCookie(c.Response, &http.Cookie{
		Name:     AdminCookieName,
		Value:    adminCookieValue,
		Path:     "/",
		MaxAge:   int(AdminCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearAdminCookie(c *drift.Context, secure bool) {
	http.SetCookie(c.Response, &http.Cookie{
		Name:     AdminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func SetSessionCookie(c *drift.Context, token string, maxAge time.Duration, secure bool) {
	http.SetCookie(c.Response, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(c *drift.Context, secure bool) {
	http.SetCookie(c.Response, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
