package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Store2070/app/controllers"
	"github.com/ManuelReschke/Store2070/internal/pkg/constants"
	"github.com/ManuelReschke/Store2070/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(loc fiber.Router) {
	adminGroup := loc.Group(constants.AdminRoute, middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)
	adminGroup.Get("/counters", controllers.HandleAdminCounters)
}
