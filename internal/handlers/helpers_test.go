package handlers

import (
	"net/http"
	"testing"

	"github.com/dimitrije/handlepick/internal/middleware"
	"github.com/dimitrije/handlepick/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
)

const testAdminEmail = "admin@example.com"

func strPtr(s string) *string { return &s }

// newTestApp mirrors the server's global middleware: body parsing and the
// non-blocking identity session reader.
func newTestApp(t *testing.T) *drift.Engine {
	t.Helper()
	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Session(testutil.TestSessionService()))
	return app
}

func userRoute(app *drift.Engine, path string, h drift.HandlerFunc, methods ...string) {
	app.Any(path, middleware.AllowMethods(methods...), middleware.RequireUser(), h)
}

func adminRoute(app *drift.Engine, path string, h drift.HandlerFunc, methods ...string) {
	app.Any(path, middleware.AllowMethods(methods...), middleware.RequireAdmin(testAdminEmail), h)
}

var noMethods = []string{http.MethodPut, http.MethodDelete, http.MethodPatch}
