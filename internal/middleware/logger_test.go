package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
)

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	app := drift.New()
	app.Use(AccessLog())
	app.Get("/teapot", func(c *drift.Context) {
		_ = c.JSON(http.StatusTeapot, map[string]string{"error": "short and stout"})
	})

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	line := buf.String()
	assert.Contains(t, line, "GET /teapot 418")
	assert.Contains(t, line, "203.0.113.7")
}
