package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Store2070/internal/pkg/authclient"
	"github.com/ManuelReschke/Store2070/internal/pkg/metrics/counter"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// Config carries the collaborators shared by the routers. Nil storages keep
// sessions and rate limits in memory; nil Counters count nothing.
type Config struct {
	SessionStorage fiber.Storage
	LimiterStorage fiber.Storage
	AuthClient     *authclient.Client
	Counters       *counter.Counters
}

func InstallRouter(app *fiber.App, cfg Config) {
	if cfg.AuthClient == nil {
		cfg.AuthClient = authclient.New(authclient.Config{})
	}

	// Proxy routes first: they are excluded from locale handling and never
	// touch the browser session. The HttpRouter then installs the session
	// store and the locale and user context middleware for the pages.
	setup(app, NewApiRouter(cfg), NewHttpRouter(cfg))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
