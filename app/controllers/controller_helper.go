package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	sflash "github.com/sujit-baniya/flash"

	"github.com/ManuelReschke/Store2070/internal/pkg/authclient"
	"github.com/ManuelReschke/Store2070/internal/pkg/flash"
	"github.com/ManuelReschke/Store2070/internal/pkg/locale"
	"github.com/ManuelReschke/Store2070/internal/pkg/usercontext"
	"github.com/ManuelReschke/Store2070/internal/pkg/viewmodel"
)

const mainLayout = "layouts/main"

// newLayout collects what every page needs from the request.
func newLayout(c *fiber.Ctx, page string) viewmodel.Layout {
	userCtx := usercontext.GetUserContext(c)
	loc := userCtx.Locale

	// an error of this request wins over a notice carried over a redirect
	msg := flash.Get(c)
	if msg == nil {
		if fm := sflash.Get(c); len(fm) > 0 {
			msg = fm
		}
	}
	return viewmodel.Layout{
		Page:          page,
		Locale:        loc.String(),
		Dir:           loc.Direction(),
		SwitchURL:     locale.Switch(c.Path(), loc.Other()),
		FromProtected: userCtx.IsLoggedIn,
		IsAdmin:       userCtx.IsAdmin,
		IsError:       msg != nil && msg["type"] == "error",
		Msg:           msg,
		CSRF:          usercontext.CSRFToken(c),
		T:             viewmodel.TextFor(loc),
	}
}

// render renders view inside the main layout. data may be nil.
func render(c *fiber.Ctx, view string, layout viewmodel.Layout, data fiber.Map) error {
	bind := fiber.Map{"Layout": layout}
	for k, v := range data {
		bind[k] = v
	}
	return c.Render(view, bind, mainLayout)
}

// localized prefixes route with the locale of the current request.
func localized(c *fiber.Ctx, route string) string {
	return locale.Path(usercontext.GetLocale(c), route)
}

// redirectWithNotice redirects to route under the current locale and shows
// message on the next page.
func redirectWithNotice(c *fiber.Ctx, route, message string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": message,
	}
	return sflash.WithSuccess(c, fm).Redirect(localized(c, route), fiber.StatusSeeOther)
}

func text(c *fiber.Ctx) viewmodel.Text {
	return viewmodel.TextFor(usercontext.GetLocale(c))
}

// authContext scopes the auth client's in-flight guard to the requesting
// browser, identified by its csrf token.
func authContext(c *fiber.Ctx) context.Context {
	return authclient.WithCaller(c.UserContext(), usercontext.CSRFToken(c))
}
