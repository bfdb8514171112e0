package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/ManuelReschke/Store2070/internal/pkg/authclient"
	"github.com/ManuelReschke/Store2070/internal/pkg/cache"
	"github.com/ManuelReschke/Store2070/internal/pkg/constants"
	"github.com/ManuelReschke/Store2070/internal/pkg/env"
	applog "github.com/ManuelReschke/Store2070/internal/pkg/logger"
	"github.com/ManuelReschke/Store2070/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/Store2070/internal/pkg/router"
	"github.com/ManuelReschke/Store2070/views"
)

func main() {
	app := NewApplication()
	addr := fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000"))
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("server stopped")
	}
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	applog.Init(env.GetEnv("LOG_LEVEL", "info"), env.GetEnv("LOG_FORMAT", "console"))
	cache.SetupCache()

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:   views.Engine(),
		AppName: "Store 2070",
	})

	// ignore favicon requests
	app.Use(favicon.New(favicon.Config{
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get(constants.MetricsRoute, basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "test"),
		},
	}), monitor.New(monitor.Config{Title: "Store 2070 Metrics"}))

	// static files
	app.Static(constants.StaticRoute, env.GetEnv("STATIC_DIR", "./public/static"), fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// ROUTER
	router.InstallRouter(app, router.Config{
		SessionStorage: cache.NewStorage(1),
		LimiterStorage: cache.NewStorage(2),
		Counters:       counter.New(cache.GetClient()),
		AuthClient: authclient.New(authclient.Config{
			Endpoint: env.GetEnv("GRAPHQL_ENDPOINT", authclient.DefaultEndpoint),
			Timeout:  env.GetDuration("AUTH_TIMEOUT", authclient.DefaultTimeout),
		}),
	})

	return app
}
