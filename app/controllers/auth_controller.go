package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ManuelReschke/Store2070/internal/pkg/authclient"
	"github.com/ManuelReschke/Store2070/internal/pkg/constants"
	"github.com/ManuelReschke/Store2070/internal/pkg/flash"
	"github.com/ManuelReschke/Store2070/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/Store2070/internal/pkg/session"
)

var (
	authClient   *authclient.Client
	authCounters *counter.Counters
)

// InitializeAuthController sets the client and the outcome counters used by
// the auth handlers. counters may be nil.
func InitializeAuthController(client *authclient.Client, counters *counter.Counters) {
	authClient = client
	authCounters = counters
}

func getAuthClient() *authclient.Client {
	if authClient == nil {
		authClient = authclient.New(authclient.Config{})
	}
	return authClient
}

func HandleAuthLogin(c *fiber.Ctx) error {
	layout := newLayout(c, "")
	layout.Page = layout.T.Login

	if c.Method() != fiber.MethodPost {
		return render(c, "auth/login", layout, nil)
	}

	username := c.FormValue("username")
	res := getAuthClient().Login(authContext(c), session.FromCtx(c), username, c.FormValue("password"))
	recordOutcome(c, "login", res)
	if !res.Success {
		log.Info().Str("kind", res.Kind.String()).Msg("login rejected")
		return renderAuthError(c, "auth/login", layout.Page, res, fiber.Map{"Username": username})
	}

	target := constants.HomeRoute
	if res.IsAdmin {
		target = constants.AdminRoute
	}
	return redirectWithNotice(c, target, layout.T.LoggedIn)
}

func HandleAuthRegister(c *fiber.Ctx) error {
	layout := newLayout(c, "")
	layout.Page = layout.T.Register

	if c.Method() != fiber.MethodPost {
		return render(c, "auth/register", layout, nil)
	}

	username := c.FormValue("username")
	res := getAuthClient().Register(authContext(c), session.FromCtx(c), username,
		c.FormValue("password"), c.FormValue("confirm_password"))
	recordOutcome(c, "register", res)
	if !res.Success {
		log.Info().Str("kind", res.Kind.String()).Msg("registration rejected")
		return renderAuthError(c, "auth/register", layout.Page, res, fiber.Map{"Username": username})
	}

	log.Info().Str("user_id", res.UserID).Msg("account registered")
	return redirectWithNotice(c, constants.HomeRoute, layout.T.Registered)
}

// HandleAuthVerify redeems the token from a verification email and signs
// the visitor in.
func HandleAuthVerify(c *fiber.Ctx) error {
	layout := newLayout(c, "")
	layout.Page = layout.T.Verify

	res := getAuthClient().VerifyEmail(authContext(c), session.FromCtx(c), c.Query("token"))
	recordOutcome(c, "verify", res)
	if !res.Success {
		log.Info().Str("kind", res.Kind.String()).Msg("email verification rejected")
		return renderAuthError(c, "auth/verify", layout.Page, res, nil)
	}

	target := constants.HomeRoute
	if res.IsAdmin {
		target = constants.AdminRoute
	}
	return redirectWithNotice(c, target, layout.T.Verified)
}

func HandleAuthLogout(c *fiber.Ctx) error {
	session.FromCtx(c).Clear()

	return redirectWithNotice(c, constants.LoginRoute, text(c).LoggedOut)
}

// renderAuthError re-renders the form with the failure in its single error
// region. Each attempt replaces the previous message.
func renderAuthError(c *fiber.Ctx, view, page string, res authclient.Result, data fiber.Map) error {
	flash.Error(c, res.Message)

	return render(c.Status(fiber.StatusUnprocessableEntity), view, newLayout(c, page), data)
}

func recordOutcome(c *fiber.Ctx, op string, res authclient.Result) {
	outcome := "success"
	if !res.Success {
		outcome = res.Kind.String()
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 250*time.Millisecond)
	defer cancel()
	if err := authCounters.AddAuthOutcome(ctx, op, outcome); err != nil {
		log.Warn().Err(err).Str("op", op).Msg("failed to count auth outcome")
	}
}
