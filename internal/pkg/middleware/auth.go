package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ManuelReschke/Store2070/internal/pkg/constants"
	"github.com/ManuelReschke/Store2070/internal/pkg/guard"
	"github.com/ManuelReschke/Store2070/internal/pkg/locale"
	"github.com/ManuelReschke/Store2070/internal/pkg/session"
	"github.com/ManuelReschke/Store2070/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in session; redirects to the login page if missing.
func RequireAuth(c *fiber.Ctx) error {
	return enforce(c, guard.Authenticated)
}

// RequireAdmin ensures a logged-in admin; anonymous visitors go to the login
// page, everyone else to the home page.
func RequireAdmin(c *fiber.Ctx) error {
	return enforce(c, guard.AdminOnly)
}

// RequireGuest keeps signed-in visitors away from the login and register
// forms and sends them where a fresh login would.
func RequireGuest(c *fiber.Ctx) error {
	s, ok := session.FromCtx(c).Get()
	if !ok {
		return c.Next()
	}

	target := constants.HomeRoute
	if s.IsAdmin {
		target = constants.AdminRoute
	}
	return c.Redirect(locale.Path(usercontext.GetLocale(c), target), fiber.StatusSeeOther)
}

func enforce(c *fiber.Ctx, route guard.Classification) error {
	loc := usercontext.GetLocale(c)

	state := guard.Check(session.FromCtx(c), route)
	switch state {
	case guard.RedirectedToLogin:
		log.Debug().Str("path", c.Path()).Str("route", route.String()).Msg("no session, redirecting to login")
		return c.Redirect(locale.Path(loc, constants.LoginRoute), fiber.StatusSeeOther)
	case guard.RedirectedToHome:
		log.Debug().Str("path", c.Path()).Str("route", route.String()).Msg("insufficient role, redirecting home")
		return c.Redirect(locale.Path(loc, constants.HomeRoute), fiber.StatusSeeOther)
	}
	return c.Next()
}
