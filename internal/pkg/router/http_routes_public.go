package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Store2070/app/controllers"
	"github.com/ManuelReschke/Store2070/internal/pkg/constants"
	"github.com/ManuelReschke/Store2070/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(loc fiber.Router) {
	loc.Get(constants.HomeRoute, controllers.HandleStart)
	loc.Get(constants.VerifyRoute, controllers.HandleAuthVerify)
	loc.Get(constants.VaultRoute, middleware.RequireAuth, controllers.HandleVault)
}
