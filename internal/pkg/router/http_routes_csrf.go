package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ManuelReschke/Store2070/app/controllers"
	"github.com/ManuelReschke/Store2070/internal/pkg/constants"
	"github.com/ManuelReschke/Store2070/internal/pkg/env"
	"github.com/ManuelReschke/Store2070/internal/pkg/locale"
	"github.com/ManuelReschke/Store2070/internal/pkg/middleware"
	"github.com/ManuelReschke/Store2070/internal/pkg/usercontext"
)

// csrfMiddleware issues a token on every page so that the logout button in
// the navbar can post, and checks it on every form submission.
func csrfMiddleware() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     usercontext.KeyCSRF,
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return locale.Excluded(c.Path())
		},
	})
}

func (h HttpRouter) registerCSRFProtectedRoutes(loc fiber.Router) {
	// credential submissions are throttled per client address
	attempts := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		Storage:    h.cfg.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "auth:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many attempts, try again later")
		},
	})

	loc.Get(constants.LoginRoute, middleware.RequireGuest, controllers.HandleAuthLogin)
	loc.Post(constants.LoginRoute, attempts, controllers.HandleAuthLogin)
	loc.Get(constants.RegisterRoute, middleware.RequireGuest, controllers.HandleAuthRegister)
	loc.Post(constants.RegisterRoute, attempts, controllers.HandleAuthRegister)
	loc.Post(constants.LogoutRoute, middleware.RequireAuth, controllers.HandleAuthLogout)
}
