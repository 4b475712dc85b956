package main

import (
	"net/http"

	"github.com/dimitrije/handlepick/internal/config"
	"github.com/dimitrije/handlepick/internal/handlers"
	authmw "github.com/dimitrije/handlepick/internal/middleware"
	"github.com/dimitrije/handlepick/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

type server struct {
	cfg      *config.Config
	sessions *services.SessionService

	auth  *handlers.AuthHandler
	user  *handlers.UserHandler
	pick  *handlers.PickHandler
	admin *handlers.AdminHandler
}

func (s *server) routes() *drift.Engine {
	app := drift.New()

	app.Use(middleware.Recovery())

	// Debug mode already logs every request.
	if s.cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
		app.Use(authmw.AccessLog())
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: !s.cfg.CORSWildcard(),
		MaxAge:           86400,
	}))
	app.Use(apiMethods().Guard())
	app.Use(middleware.BodyParser())
	app.Use(authmw.Session(s.sessions))

	requireUser := authmw.RequireUser()
	requireAdmin := authmw.RequireAdmin(s.cfg.Admin.Email)

	api := app.Group("/api")

	api.Any("/auth/google/login", s.auth.Login)
	api.Any("/auth/google/callback", s.auth.Callback)
	api.Any("/auth/session", s.auth.Session)
	api.Any("/auth/logout", s.auth.Logout)

	api.Any("/user/save", requireUser, s.user.Save)
	api.Any("/user/me", requireUser, s.user.GetMe)

	api.Any("/admin/pick-random", requireUser, s.pick.PickRandom)
	api.Any("/admin/pick-manage", requireAdmin, s.pick.PickManage)
	api.Any("/admin/simple-login", s.admin.SimpleLogin)
	api.Any("/admin/simple-logout", s.admin.SimpleLogout)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	return app
}

// apiMethods lists the verbs each endpoint accepts. The guard runs before any
// authentication so a wrong verb is always answered with 405.
func apiMethods() authmw.MethodTable {
	get := []string{http.MethodGet}
	post := []string{http.MethodPost}

	return authmw.MethodTable{
		"/api/auth/google/login":    get,
		"/api/auth/google/callback": get,
		"/api/auth/session":         get,
		"/api/auth/logout":          post,
		"/api/user/save":            post,
		"/api/user/me":              get,
		"/api/admin/pick-random":    post,
		"/api/admin/pick-manage":    {http.MethodGet, http.MethodPost},
		"/api/admin/simple-login":   post,
		"/api/admin/simple-logout":  post,
		"/api/health":               get,
	}
}
