package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dimitrije/handlepick/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func TestGoogleProvider_Name(t *testing.T) {
	provider := NewGoogleProvider(config.OAuthConfig{})
	assert.Equal(t, "google", provider.Name())
}

func TestGoogleProvider_GetConsentURL(t *testing.T) {
	provider := NewGoogleProvider(config.OAuthConfig{
		ClientID:    "test-client-id",
		RedirectURL: "http://localhost/callback",
	})

	url := provider.GetConsentURL("test-state")

	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "client_id=test-client-id")
	assert.Contains(t, url, "state=test-state")
}

func TestGoogleProvider_Scopes(t *testing.T) {
	provider := NewGoogleProvider(config.OAuthConfig{
		ClientID:     "test-client-id",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost/callback",
	})

	assert.Contains(t, provider.config.Scopes, "https://www.googleapis.com/auth/userinfo.email")
	assert.Contains(t, provider.config.Scopes, "https://www.googleapis.com/auth/userinfo.profile")
}

func TestGoogleProvider_Endpoint(t *testing.T) {
	provider := NewGoogleProvider(config.OAuthConfig{})

	assert.Equal(t, google.Endpoint.AuthURL, provider.config.Endpoint.AuthURL)
	assert.Equal(t, google.Endpoint.TokenURL, provider.config.Endpoint.TokenURL)
}

func newTestGoogleProvider(t *testing.T, userInfo string) *GoogleProvider {
	t.Helper()

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer"}`))
	}))
	t.Cleanup(tokenServer.Close)

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(userInfo))
	}))
	t.Cleanup(apiServer.Close)

	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     "test-client-id",
			ClientSecret: "test-secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  tokenServer.URL + "/authorize",
				TokenURL: tokenServer.URL + "/token",
			},
		},
		userInfoURL: apiServer.URL + "/userinfo",
	}
}

func TestGoogleProvider_ExchangeCode_Success(t *testing.T) {
	provider := newTestGoogleProvider(t, `{
		"id": "1234567890",
		"email": "jane@example.com",
		"verified_email": true,
		"name": "Jane Doe"
	}`)

	info, err := provider.ExchangeCode(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", info.Email)
	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "1234567890", info.ID)
	assert.Equal(t, "google", info.Provider)
}

func TestGoogleProvider_ExchangeCode_UnverifiedEmail(t *testing.T) {
	provider := newTestGoogleProvider(t, `{
		"id": "1234567890",
		"email": "jane@example.com",
		"verified_email": false,
		"name": "Jane Doe"
	}`)

	info, err := provider.ExchangeCode(context.Background(), "auth-code")

	assert.ErrorIs(t, err, ErrEmailNotVerified)
	assert.Nil(t, info)
}

func TestGoogleProvider_ExchangeCode_MissingEmail(t *testing.T) {
	provider := newTestGoogleProvider(t, `{"id": "1234567890", "verified_email": true}`)

	_, err := provider.ExchangeCode(context.Background(), "auth-code")

	assert.ErrorIs(t, err, ErrEmailNotVerified)
}
