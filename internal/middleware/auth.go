package middleware

import (
	"net/http"
	"strings"

	"github.com/dimitrije/handlepick/internal/services"
	"github.com/dimitrije/handlepick/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	UserEmailKey = "user_email"
	UserNameKey  = "user_name"

	SessionCookieName = "session"
)

// Level is the authorization level a request resolves to.
type Level string

const (
	Anonymous         Level = "anonymous"
	AuthenticatedUser Level = "authenticated-user"
	AuthorizedAdmin   Level = "authorized-admin"
)

// Session reads the identity session cookie and, when it validates, stores
// the email and name on the context. It never rejects a request.
func Session(sessions *services.SessionService) drift.HandlerFunc {
	return func(c *drift.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err == nil && token != "" {
			if claims, err := sessions.Validate(token); err == nil {
				c.Set(UserEmailKey, claims.Email)
				c.Set(UserNameKey, claims.Name)
			}
		}
		c.Next()
	}
}

func RequireUser() drift.HandlerFunc {
	return func(c *drift.Context) {
		if GetUserEmail(c) == "" {
			c.ErrorWithData(http.StatusUnauthorized, dto.ErrorResponse{Error: dto.ErrUnauthorized})
			return
		}
		c.Next()
	}
}

// RequireAdmin passes when either admin channel is satisfied: the static
// credential cookie, or an identity session for adminEmail.
func RequireAdmin(adminEmail string) drift.HandlerFunc {
	return func(c *drift.Context) {
		switch Resolve(c, adminEmail) {
		case AuthorizedAdmin:
			c.Next()
		case AuthenticatedUser:
			c.ErrorWithData(http.StatusForbidden, dto.ErrorResponse{Error: dto.ErrForbiddenAdmin})
		default:
			c.ErrorWithData(http.StatusUnauthorized, dto.ErrorResponse{Error: dto.ErrUnauthorized})
		}
	}
}

// Resolve reports the highest level the request reaches. Session must have
// run first for the identity channel to be seen.
func Resolve(c *drift.Context, adminEmail string) Level {
	email := GetUserEmail(c)
	if HasAdminCookie(c) || isAdminEmail(email, adminEmail) {
		return AuthorizedAdmin
	}
	if email != "" {
		return AuthenticatedUser
	}
	return Anonymous
}

func isAdminEmail(email, adminEmail string) bool {
	if email == "" || adminEmail == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(email), strings.TrimSpace(adminEmail))
}

func GetUserEmail(c *drift.Context) string {
	if email, ok := c.Get(UserEmailKey); ok {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

func GetUserName(c *drift.Context) string {
	if name, ok := c.Get(UserNameKey); ok {
		if n, ok := name.(string); ok {
			return n
		}
	}
	return ""
}
