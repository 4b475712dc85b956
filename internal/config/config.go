package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	DBConnectAttempts uint
	StoreTimeout      time.Duration

	SessionSecret string
	SessionExpiry time.Duration

	BaseURL     string
	FrontendURL string
	CORSOrigins []string

	LogFile string

	Google OAuthConfig

	Admin AdminConfig
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// AdminConfig holds both administrator channels: the allow-listed identity
// email and the static credentials behind the admin_auth cookie.
type AdminConfig struct {
	Email        string
	Username     string
	Password     string
	PasswordHash string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("ENV", "development")
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	frontendURL := getEnv("FRONTEND_URL", baseURL)

	// The static credentials fall back to admin/admin only for local work.
	defaultAdmin := "admin"
	if env == "production" {
		defaultAdmin = ""
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         env,
		DatabaseURL: getEnv("DATABASE_URL", ""),

		DBConnectAttempts: uint(getEnvInt("DB_CONNECT_ATTEMPTS", 5)),
		StoreTimeout:      getEnvDuration("STORE_TIMEOUT", 10*time.Second),

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionExpiry: getEnvDuration("SESSION_EXPIRY", 30*24*time.Hour),

		BaseURL:     baseURL,
		FrontendURL: frontendURL,
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", originOf(frontendURL))),

		LogFile: getEnv("LOG_FILE", ""),

		Google: OAuthConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", strings.TrimRight(baseURL, "/")+"/api/auth/google/callback"),
		},

		Admin: AdminConfig{
			Email:        strings.TrimSpace(getEnv("ADMIN_EMAIL", "")),
			Username:     getEnv("ADMIN_USER", defaultAdmin),
			Password:     getEnv("ADMIN_PASS", defaultAdmin),
			PasswordHash: getEnv("ADMIN_PASS_HASH", ""),
		},
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ValidateServer checks the settings only the HTTP server needs. Operator
// tools that never sign sessions skip it.
func (c *Config) ValidateServer() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("required environment variable not set: SESSION_SECRET")
	}
	return nil
}

// CORSWildcard reports whether any origin is allowed. Credentials are never
// shared with a wildcard origin list.
func (c *Config) CORSWildcard() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// originOf reduces a URL to the scheme://host form browsers send in Origin.
func originOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return strings.TrimRight(raw, "/")
	}
	return u.Scheme + "://" + u.Host
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
