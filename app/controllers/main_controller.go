package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ManuelReschke/Store2070/internal/pkg/cache"
)

func HandleStart(c *fiber.Ctx) error {
	return render(c, "home", newLayout(c, ""), nil)
}

func HandleVault(c *fiber.Ctx) error {
	layout := newLayout(c, "")
	layout.Page = layout.T.VaultTitle
	return render(c, "vault", layout, nil)
}

// HandleHealth reports liveness. The cache is informational; the storefront
// keeps serving without it.
func HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), time.Second)
	defer cancel()

	cacheStatus := "ok"
	if err := cache.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("health check: cache unavailable")
		cacheStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"cache":  cacheStatus,
	})
}
