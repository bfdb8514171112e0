// Package authclient talks to the storefront's GraphQL authentication endpoint.
//
// Every call returns a Result; no error escapes this package. On success the
// returned session is written to the caller's session.Store exactly once,
// before the call returns.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ManuelReschke/Store2070/app/models"
	"github.com/ManuelReschke/Store2070/internal/pkg/session"
)

const (
	DefaultEndpoint = "http://127.0.0.1:8000/graphql"
	DefaultTimeout  = 10 * time.Second

	maxResponseBytes = 1 << 20

	msgConnectionFailed = "System Error: connection to core failed"
	msgBusy             = "A request is already in progress"
	msgTokenRequired    = "verification token is required"

	fallbackLogin    = "Access Denied"
	fallbackRegister = "Registration Failed"
	fallbackVerify   = "Verification Failed"
)

// Config configures a Client.
type Config struct {
	Endpoint string
	// Timeout bounds one round-trip. Zero means DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the transport; its Timeout is left untouched.
	HTTPClient *http.Client
}

// Client issues login, registration and verification mutations.
type Client struct {
	endpoint   string
	httpClient *http.Client
	inFlight   sync.Map
}

func New(cfg Config) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{endpoint: endpoint, httpClient: httpClient}
}

// Endpoint returns the GraphQL URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type operation struct {
	name      string
	field     string
	key       string
	document  string
	variables map[string]any
	fallback  string
}

// Login authenticates username/password.
func (c *Client) Login(ctx context.Context, store session.Store, username, password string) Result {
	creds := models.Credentials{Username: username, Password: password}
	if err := creds.Validate(); err != nil {
		return failure(KindValidation, err.Error())
	}

	return c.authenticate(ctx, store, operation{
		name:     "Login",
		field:    "login",
		key:      creds.Username,
		document: loginMutation,
		variables: map[string]any{
			"username": creds.Username,
			"password": creds.Password,
		},
		fallback: fallbackLogin,
	})
}

// Register creates an account. confirm must equal password; a mismatch fails
// without any network I/O.
func (c *Client) Register(ctx context.Context, store session.Store, username, password, confirm string) Result {
	reg := models.Registration{Username: username, Password: password, Confirm: confirm}
	if err := reg.Validate(); err != nil {
		return failure(KindValidation, err.Error())
	}

	creds := reg.Credentials()
	return c.authenticate(ctx, store, operation{
		name:     "Register",
		field:    "register",
		key:      creds.Username,
		document: registerMutation,
		variables: map[string]any{
			"username": creds.Username,
			"password": creds.Password,
		},
		fallback: fallbackRegister,
	})
}

// VerifyEmail redeems an email verification token. The server answers with a
// fresh session, which is stored like a login.
func (c *Client) VerifyEmail(ctx context.Context, store session.Store, token string) Result {
	token = strings.TrimSpace(token)
	if token == "" {
		return failure(KindValidation, msgTokenRequired)
	}

	return c.authenticate(ctx, store, operation{
		name:      "VerifyEmail",
		field:     "verifyEmail",
		key:       token,
		document:  verifyEmailMutation,
		variables: map[string]any{"token": token},
		fallback:  fallbackVerify,
	})
}

type callerKey struct{}

// WithCaller scopes the in-flight guard of calls made with ctx to caller,
// typically one browser. Without it the guard is keyed on the operation and
// username alone, which suits a single-user process like the CLI.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func callerFrom(ctx context.Context) string {
	caller, _ := ctx.Value(callerKey{}).(string)
	return caller
}

func (c *Client) authenticate(ctx context.Context, store session.Store, op operation) Result {
	key := op.name + "\x00" + callerFrom(ctx) + "\x00" + op.key
	if _, pending := c.inFlight.LoadOrStore(key, struct{}{}); pending {
		return failure(KindBusy, msgBusy)
	}
	defer c.inFlight.Delete(key)

	payload, res := c.execute(ctx, op)
	if res.Kind != KindNone {
		return res
	}

	if !bool(payload.Success) {
		msg := payload.message()
		if msg == "" {
			msg = op.fallback
		}
		return failure(KindDomain, msg)
	}

	token := payload.token()
	if token == "" {
		return failure(KindProtocol, "System Error: response carried no session token")
	}

	out := Result{
		Success: true,
		Token:   token,
		IsAdmin: bool(payload.IsAdmin),
		UserID:  payload.userID(),
		Message: payload.message(),
	}
	if store != nil {
		store.Set(out.Session())
	}
	return out
}

// execute performs the round-trip. A zero Kind in the returned Result means
// payload is valid.
func (c *Client) execute(ctx context.Context, op operation) (authPayload, Result) {
	requestID := uuid.NewString()
	logger := log.With().Str("request_id", requestID).Str("operation", op.name).Logger()

	body, err := json.Marshal(gqlRequest{
		Query:         op.document,
		OperationName: op.name,
		Variables:     op.variables,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode graphql request")
		return authPayload{}, failure(KindProtocol, "System Error: could not encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		logger.Error().Err(err).Msg("failed to build graphql request")
		return authPayload{}, failure(KindTransport, msgConnectionFailed)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn().Err(err).Msg("auth request failed")
		return authPayload{}, failure(KindTransport, msgConnectionFailed)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read auth response")
		return authPayload{}, failure(KindTransport, msgConnectionFailed)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn().Int("status", resp.StatusCode).Str("body", snippet(raw)).Msg("auth endpoint returned error status")
		return authPayload{}, failure(KindTransport, fmt.Sprintf("System Error: HTTP %d", resp.StatusCode))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		logger.Warn().Msg("empty auth response")
		return authPayload{}, failure(KindProtocol, "System Error: empty response from server")
	}

	var envelope gqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		logger.Warn().Err(err).Msg("malformed auth response")
		return authPayload{}, failure(KindProtocol, "System Error: invalid response: "+snippet(raw))
	}

	if len(envelope.Errors) > 0 {
		msg := strings.TrimSpace(envelope.Errors[0].Message)
		if msg == "" {
			msg = op.fallback
		}
		return authPayload{}, failure(KindDomain, msg)
	}

	data, ok := envelope.Data[op.field]
	if !ok || len(bytes.TrimSpace(data)) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return authPayload{}, failure(KindProtocol, fmt.Sprintf("System Error: missing %s payload", op.field))
	}

	var payload authPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		logger.Warn().Err(err).Msg("malformed auth payload")
		return authPayload{}, failure(KindProtocol, fmt.Sprintf("System Error: invalid %s payload: %s", op.field, snippet(data)))
	}

	return payload, Result{}
}
