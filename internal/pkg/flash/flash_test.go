package flash

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorReplacesPreviousMessage(t *testing.T) {
	app := fiber.New()
	var got fiber.Map
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Nil(t, Get(c))
		Error(c, "first")
		Error(c, "Access Denied")
		got = Get(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, fiber.Map{"type": "error", "message": "Access Denied"}, got)
}
