package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/tomasen/realip"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func AccessLog() drift.HandlerFunc {
	return func(c *drift.Context) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: c.Response, status: http.StatusOK}
		c.Response = rec

		c.Next()

		log.Printf("%s %s %d %s %s",
			c.Method(), c.Path(), rec.status, time.Since(start).Round(time.Microsecond), realip.FromRequest(c.Request))
	}
}
