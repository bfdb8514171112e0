package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/rs/zerolog/log"

	"github.com/ManuelReschke/Store2070/app/controllers"
	"github.com/ManuelReschke/Store2070/internal/pkg/constants"
)

type ApiRouter struct {
	cfg Config
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	endpoint := h.cfg.AuthClient.Endpoint()
	log.Info().Str("endpoint", endpoint).Msg("proxying graphql")

	limit := limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Storage:    h.cfg.LimiterStorage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"errors": []fiber.Map{{"message": "rate limit exceeded"}},
			})
		},
	})
	forward := proxy.Forward(endpoint)

	app.Post(constants.GraphQLRoute, limit, forward)

	api := app.Group(constants.APIRoute, limit)
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})
	api.Post(constants.GraphQLRoute, forward)

	app.Get(constants.HealthRoute, controllers.HandleHealth)
}

func NewApiRouter(cfg Config) *ApiRouter {
	return &ApiRouter{cfg: cfg}
}
