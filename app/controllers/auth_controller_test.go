package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/Store2070/internal/pkg/authclient"
	"github.com/ManuelReschke/Store2070/internal/pkg/constants"
	"github.com/ManuelReschke/Store2070/internal/pkg/middleware"
	"github.com/ManuelReschke/Store2070/internal/pkg/session"
	"github.com/ManuelReschke/Store2070/views"
)

func setupVerifyApp(t *testing.T, coreBody string) *fiber.App {
	t.Helper()
	core := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, coreBody)
	}))
	t.Cleanup(core.Close)

	session.NewSessionStore(nil)
	InitializeAuthController(authclient.New(authclient.Config{Endpoint: core.URL}), nil)

	app := fiber.New(fiber.Config{Views: views.Engine()})
	app.Use(middleware.LocaleMiddleware, middleware.UserContextMiddleware)
	app.Get("/:locale"+constants.VerifyRoute, HandleAuthVerify)
	app.Get("/:locale/vault", middleware.RequireAuth, HandleVault)
	return app
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHandleAuthVerify_MissingToken(t *testing.T) {
	app := setupVerifyApp(t, `{}`)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/en/verify-email", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "verification token is required")
}

func TestHandleAuthVerify_ServerRejects(t *testing.T) {
	app := setupVerifyApp(t, `{"data":{"verifyEmail":{"success":false,"message":null}}}`)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ar/verify-email?token=stale", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "Verification Failed")
	assert.Contains(t, body, `dir="rtl"`)
}

func TestHandleAuthVerify_SignsIn(t *testing.T) {
	app := setupVerifyApp(t, `{"data":{"verifyEmail":{"success":true,"token":"V","isAdmin":"0"}}}`)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/en/verify-email?token=abc", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/en/", resp.Header.Get("Location"))

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie)

	req := httptest.NewRequest(http.MethodGet, "/en/vault", nil)
	req.AddCookie(sessionCookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "The Vault")
}
