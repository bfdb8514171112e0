package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Store2070/internal/pkg/locale"
)

// UserContext represents the visitor state for a request
type UserContext struct {
	IsLoggedIn bool          `json:"is_logged_in"`
	IsAdmin    bool          `json:"is_admin"`
	Locale     locale.Locale `json:"locale"`
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx, ok := c.Locals(KeyUserContext).(UserContext); ok {
		return ctx
	}
	return UserContext{Locale: GetLocale(c)}
}

// GetLocale returns the locale resolved by the locale middleware, falling
// back to the first path segment.
func GetLocale(c *fiber.Ctx) locale.Locale {
	if l, ok := c.Locals(KeyLocale).(locale.Locale); ok {
		return l
	}
	return locale.FromPath(c.Path())
}

// CSRFToken returns the token set by the csrf middleware, if any.
func CSRFToken(c *fiber.Ctx) string {
	token, _ := c.Locals(KeyCSRF).(string)
	return token
}
