package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Store2070/internal/pkg/locale"
	"github.com/ManuelReschke/Store2070/internal/pkg/session"
	"github.com/ManuelReschke/Store2070/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the user context for every page request.
// The session is read afresh each time; nothing is cached across requests.
func UserContextMiddleware(c *fiber.Ctx) error {
	// proxied and static requests never render a page
	if locale.Excluded(c.Path()) {
		return c.Next()
	}

	s, ok := session.FromCtx(c).Get()
	userCtx := usercontext.UserContext{
		IsLoggedIn: ok,
		IsAdmin:    ok && s.IsAdmin,
		Locale:     usercontext.GetLocale(c),
	}
	c.Locals(usercontext.KeyUserContext, userCtx)

	return c.Next()
}
