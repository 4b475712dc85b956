package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dimitrije/handlepick/internal/middleware"
	"github.com/dimitrije/handlepick/internal/services"
)

const TestSessionSecret = "test-secret-key-for-testing-only"

// TestSessionService creates a SessionService with test configuration
func TestSessionService() *services.SessionService {
	return services.NewSessionService(TestSessionSecret, time.Hour)
}

// SessionCookie returns a valid identity session cookie for email
func SessionCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	token, err := TestSessionService().Issue(email, "Test User")
	if err != nil {
		t.Fatalf("failed to issue test session: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

// AdminCookie returns the static-credential admin cookie
func AdminCookie() *http.Cookie {
	return &http.Cookie{Name: middleware.AdminCookieName, Value: "1"}
}

// HTTPTestClient provides helper methods for HTTP testing
type HTTPTestClient struct {
	t       *testing.T
	handler http.Handler
}

// NewHTTPTestClient creates a new HTTP test client
func NewHTTPTestClient(t *testing.T, handler http.Handler) *HTTPTestClient {
	return &HTTPTestClient{t: t, handler: handler}
}

// Request makes an HTTP request and returns the response
func (c *HTTPTestClient) Request(method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	c.t.Helper()

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

// GET makes a GET request
func (c *HTTPTestClient) GET(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return c.Request(http.MethodGet, path, nil, cookies...)
}

// POST makes a POST request
func (c *HTTPTestClient) POST(path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return c.Request(http.MethodPost, path, body, cookies...)
}

// ParseJSON parses the response body as JSON
func ParseJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
}

// AssertStatus asserts the response status code
func AssertStatus(t *testing.T, rec *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if rec.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, rec.Code, rec.Body.String())
	}
}

// AssertError asserts a JSON error body with the given message
func AssertError(t *testing.T, rec *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	if body["error"] != expected {
		t.Errorf("expected error %q, got %v", expected, body["error"])
	}
}
