package controllers

import (
	"context"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rs/zerolog/log"

	"github.com/ManuelReschke/Store2070/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/Store2070/views/admin_views"
)

func HandleAdminDashboard(c *fiber.Ctx) error {
	layout := newLayout(c, "")
	layout.Page = layout.T.AdminTitle

	entries := loadCounters(c)
	table, err := templ.ToGoHTML(c.UserContext(), admin_views.CountersTable(entries, time.Now()))
	if err != nil {
		log.Warn().Err(err).Msg("failed to render auth counters")
	}

	return render(c, "admin/dashboard", layout, fiber.Map{
		"CountersTable": table,
		"LoginTotal":    counter.Total(entries, "login"),
		"SignupTotal":   counter.Total(entries, "register"),
	})
}

// HandleAdminCounters returns only the counters table for dashboard refreshes.
func HandleAdminCounters(c *fiber.Ctx) error {
	component := admin_views.CountersTable(loadCounters(c), time.Now())

	handler := adaptor.HTTPHandler(templ.Handler(component))
	return handler(c)
}

func loadCounters(c *fiber.Ctx) []counter.Entry {
	ctx, cancel := context.WithTimeout(c.UserContext(), time.Second)
	defer cancel()

	entries, err := authCounters.Entries(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load auth counters")
	}
	return entries
}
