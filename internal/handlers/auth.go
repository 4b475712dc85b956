package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/dimitrije/handlepick/internal/middleware"
	"github.com/dimitrije/handlepick/internal/oauth"
	"github.com/dimitrije/handlepick/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	stateCookieName = "oauth_state"
	stateCookiePath = "/api/auth"
	stateTTL        = 10 * time.Minute
	exchangeTimeout = 30 * time.Second
)

// AuthHandler runs the identity-provider sign-in flow and owns the session
// cookie.
type AuthHandler struct {
	provider       oauth.Provider
	sessionService SessionServiceInterface
	adminEmail     string
	frontendURL    string
	secureCookie   bool
}

// NewAuthHandler builds the handler. A nil provider disables sign-in; the
// session and logout endpoints keep working.
func NewAuthHandler(
	provider oauth.Provider,
	sessionService SessionServiceInterface,
	adminEmail string,
	frontendURL string,
	secureCookie bool,
) *AuthHandler {
	return &AuthHandler{
		provider:       provider,
		sessionService: sessionService,
		adminEmail:     adminEmail,
		frontendURL:    frontendURL,
		secureCookie:   secureCookie,
	}
}

func (h *AuthHandler) Login(c *drift.Context) {
	if h.provider == nil {
		respondError(c, http.StatusServiceUnavailable, "Sign-in is not configured")
		return
	}

	state, err := oauth.GenerateState()
	if err != nil {
		respondInternal(c, "generate state", err, false)
		return
	}

	h.setStateCookie(c, state, int(stateTTL.Seconds()))
	c.Redirect(http.StatusFound, h.provider.GetConsentURL(state))
}

func (h *AuthHandler) Callback(c *drift.Context) {
	if h.provider == nil {
		respondError(c, http.StatusServiceUnavailable, "Sign-in is not configured")
		return
	}

	expected, _ := c.Cookie(stateCookieName)
	h.setStateCookie(c, "", -1)

	state := c.QueryParam("state")
	if state == "" || expected == "" || subtle.ConstantTimeCompare([]byte(state), []byte(expected)) != 1 {
		h.redirectWithError(c, "invalid state")
		return
	}

	if errParam := c.QueryParam("error"); errParam != "" {
		h.redirectWithError(c, errParam)
		return
	}

	code := c.QueryParam("code")
	if code == "" {
		h.redirectWithError(c, "missing authorization code")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), exchangeTimeout)
	defer cancel()

	info, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		log.Printf("%s code exchange failed: %v", h.provider.Name(), err)
		if errors.Is(err, oauth.ErrEmailNotVerified) {
			h.redirectWithError(c, "email not verified")
			return
		}
		h.redirectWithError(c, "sign-in failed")
		return
	}

	token, err := h.sessionService.Issue(info.Email, info.Name)
	if err != nil {
		log.Printf("failed to issue session for %s: %v", info.Email, err)
		h.redirectWithError(c, "sign-in failed")
		return
	}

	middleware.SetSessionCookie(c, token, h.sessionService.Expiry(), h.secureCookie)
	c.Redirect(http.StatusFound, h.frontendURL)
}

// Session describes what the caller is signed in as on both channels.
func (h *AuthHandler) Session(c *drift.Context) {
	resp := dto.SessionResponse{
		Level: string(middleware.Resolve(c, h.adminEmail)),
	}
	if email := middleware.GetUserEmail(c); email != "" {
		resp.User = &dto.SessionUser{Email: email, Name: middleware.GetUserName(c)}
	}

	_ = c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *drift.Context) {
	middleware.ClearSessionCookie(c, h.secureCookie)
	_ = c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *AuthHandler) setStateCookie(c *drift.Context, value string, maxAge int) {
	http.SetCookie(c.Response, &http.Cookie{
		Name:     stateCookieName,
		Value:    value,
		Path:     stateCookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) redirectWithError(c *drift.Context, message string) {
	target, err := url.Parse(h.frontendURL)
	if err != nil {
		respondError(c, http.StatusBadRequest, message)
		return
	}
	q := target.Query()
	q.Set("error", message)
	target.RawQuery = q.Encode()
	c.Redirect(http.StatusFound, target.String())
}
