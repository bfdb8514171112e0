package flash

import (
	"github.com/gofiber/fiber/v2"
)

// Flash message key in request locals
const FlashKey = "flash"

// Set sets the message rendered by the current request. It does not survive
// a redirect; use github.com/sujit-baniya/flash for that.
func Set(c *fiber.Ctx, message fiber.Map) {
	c.Locals(FlashKey, message)
}

// Error replaces the current message with an error notice.
func Error(c *fiber.Ctx, message string) {
	Set(c, fiber.Map{"type": "error", "message": message})
}

// Get retrieves the message set for this request
func Get(c *fiber.Ctx) fiber.Map {
	flashMessage, ok := c.Locals(FlashKey).(fiber.Map)
	if !ok {
		return nil
	}

	return flashMessage
}
