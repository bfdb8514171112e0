package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Store2070/internal/pkg/locale"
	"github.com/ManuelReschke/Store2070/internal/pkg/usercontext"
)

// LocaleMiddleware sends every request without a supported locale prefix to
// the default locale, keeping the rest of the path and the query string.
// Excluded paths (api, static files, metrics) pass through untouched.
func LocaleMiddleware(c *fiber.Ctx) error {
	res := locale.Resolve(c.Path(), string(c.Request().URI().QueryString()))
	if !res.PassThrough() {
		return c.Redirect(res.Redirect, fiber.StatusTemporaryRedirect)
	}

	if !res.Excluded {
		c.Locals(usercontext.KeyLocale, res.Locale)
	}
	return c.Next()
}

// RequireLocale guards the "/:locale" route group. Excluded single-segment
// paths such as /assets reach the group without a locale and get a 404
// instead of a page rendered for locale "assets".
func RequireLocale(c *fiber.Ctx) error {
	if _, ok := locale.Parse(c.Params("locale")); !ok {
		return fiber.ErrNotFound
	}
	return c.Next()
}
