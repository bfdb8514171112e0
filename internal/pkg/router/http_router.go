package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Store2070/app/controllers"
	"github.com/ManuelReschke/Store2070/internal/pkg/middleware"
	"github.com/ManuelReschke/Store2070/internal/pkg/session"
)

type HttpRouter struct {
	cfg Config
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore(h.cfg.SessionStorage)

	// Locale resolution runs before anything renders; the user context
	// middleware then reads the session once per request.
	app.Use(middleware.LocaleMiddleware, middleware.UserContextMiddleware, csrfMiddleware())

	controllers.InitializeAuthController(h.cfg.AuthClient, h.cfg.Counters)

	loc := app.Group("/:locale", middleware.RequireLocale)
	h.registerPublicRoutes(loc)
	h.registerAdminRoutes(loc)
	h.registerCSRFProtectedRoutes(loc)
}

func NewHttpRouter(cfg Config) *HttpRouter {
	return &HttpRouter{cfg: cfg}
}
