package constants

// Application routes, relative to the locale prefix
const (
	HomeRoute     = "/"
	LoginRoute    = "/login"
	RegisterRoute = "/register"
	VerifyRoute   = "/verify-email"
	LogoutRoute   = "/logout"
	VaultRoute    = "/vault"
	AdminRoute    = "/admin"
)

// Unprefixed routes, excluded from locale resolution
const (
	GraphQLRoute = "/graphql"
	APIRoute     = "/api"
	MetricsRoute = "/metrics"
	HealthRoute  = "/healthz"
	StaticRoute  = "/static"
)
