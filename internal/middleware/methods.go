package middleware

import (
	"net/http"
	"strings"

	"github.com/dimitrije/handlepick/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// AllowMethods answers 405 for any verb outside methods. Register it ahead of
// the auth middleware so the method check wins.
func AllowMethods(methods ...string) drift.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(c *drift.Context) {
		for _, m := range methods {
			if c.Method() == m {
				c.Next()
				return
			}
		}
		c.Header("Allow", allow)
		c.ErrorWithData(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: dto.ErrMethodNotAllowed})
	}
}

// MethodTable maps exact request paths to the verbs they accept.
type MethodTable map[string][]string

// Guard applies AllowMethods to every path in the table. Installed as global
// middleware it also covers verbs the router never registered, which would
// otherwise fall through to the 404 handler. Unknown paths pass untouched.
func (t MethodTable) Guard() drift.HandlerFunc {
	checks := make(map[string]drift.HandlerFunc, len(t))
	for path, methods := range t {
		checks[path] = AllowMethods(methods...)
	}
	return func(c *drift.Context) {
		if check, ok := checks[c.Path()]; ok {
			check(c)
			return
		}
		c.Next()
	}
}
