package session

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.Get()
	assert.False(t, ok)

	s.Set(Session{Token: "T", IsAdmin: true})
	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, Session{Token: "T", IsAdmin: true}, got)

	s.Clear()
	_, ok = s.Get()
	assert.False(t, ok)
}

func TestMemoryStore_EmptyTokenIsAbsent(t *testing.T) {
	s := NewMemoryStore()
	s.Set(Session{IsAdmin: true})

	_, ok := s.Get()
	assert.False(t, ok)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile", "session.json")

	NewFileStore(path).Set(Session{Token: "abc", IsAdmin: false})

	got, ok := NewFileStore(path).Get()
	require.True(t, ok)
	assert.Equal(t, "abc", got.Token)
	assert.False(t, got.IsAdmin)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	NewFileStore(path).Clear()
	_, ok = NewFileStore(path).Get()
	assert.False(t, ok)
}

func TestFileStore_UnavailableStorageDegrades(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	s := NewFileStore(filepath.Join(blocker, "session.json"))
	assert.NotPanics(t, func() { s.Set(Session{Token: "T"}) })

	_, ok := s.Get()
	assert.False(t, ok)
	assert.NotPanics(t, s.Clear)
}

func TestFileStore_CorruptProfileIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, ok := NewFileStore(path).Get()
	assert.False(t, ok)
}

func TestKeyringStore(t *testing.T) {
	keyring.MockInit()

	s := NewKeyringStore("store2070-test")
	_, ok := s.Get()
	assert.False(t, ok)

	s.Set(Session{Token: "K", IsAdmin: true})
	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, Session{Token: "K", IsAdmin: true}, got)

	s.Clear()
	_, ok = s.Get()
	assert.False(t, ok)
	assert.NotPanics(t, s.Clear)
}

func TestKeyringStore_UnavailableDegrades(t *testing.T) {
	keyring.MockInitWithError(assert.AnError)
	t.Cleanup(keyring.MockInit)

	s := NewKeyringStore("")
	assert.NotPanics(t, func() { s.Set(Session{Token: "K"}) })
	_, ok := s.Get()
	assert.False(t, ok)
}

func TestFiberStore_RoundTripAcrossRequests(t *testing.T) {
	NewSessionStore(nil)

	app := fiber.New()
	app.Post("/set", func(c *fiber.Ctx) error {
		FromCtx(c).Set(Session{Token: "T", IsAdmin: true})
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/get", func(c *fiber.Ctx) error {
		s, ok := FromCtx(c).Get()
		if !ok {
			return c.SendString("absent")
		}
		if s.IsAdmin {
			return c.SendString(s.Token + ":admin")
		}
		return c.SendString(s.Token)
	})
	app.Post("/clear", func(c *fiber.Ctx) error {
		FromCtx(c).Clear()
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "absent", readBody(t, resp))

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/set", nil), -1)
	require.NoError(t, err)
	cookie := sessionCookie(t, resp)

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "T:admin", readBody(t, resp))

	req = httptest.NewRequest(http.MethodPost, "/clear", nil)
	req.AddCookie(cookie)
	_, err = app.Test(req, -1)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "absent", readBody(t, resp))
}

func TestFiberStore_UninitializedIsAbsent(t *testing.T) {
	prev := sessionStore
	sessionStore = nil
	t.Cleanup(func() { sessionStore = prev })

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		FromCtx(c).Set(Session{Token: "T"})
		_, ok := FromCtx(c).Get()
		if ok {
			return c.SendString("present")
		}
		return c.SendString("absent")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "absent", readBody(t, resp))
}

var errCacheDown = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")

// downStorage behaves like a redis storage whose server is unreachable.
type downStorage struct {
	sets atomic.Int32
}

func (s *downStorage) Get(string) ([]byte, error) { return nil, errCacheDown }

func (s *downStorage) Set(string, []byte, time.Duration) error {
	s.sets.Add(1)
	return errCacheDown
}

func (s *downStorage) Delete(string) error { return errCacheDown }
func (s *downStorage) Reset() error        { return errCacheDown }
func (s *downStorage) Close() error        { return nil }

func TestFiberStore_StorageDownDegrades(t *testing.T) {
	prev := sessionStore
	t.Cleanup(func() { sessionStore = prev })

	storage := &downStorage{}
	NewSessionStore(storage)

	app := fiber.New()
	app.Post("/set", func(c *fiber.Ctx) error {
		FromCtx(c).Set(Session{Token: "T", IsAdmin: true})
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/get", func(c *fiber.Ctx) error {
		if _, ok := FromCtx(c).Get(); ok {
			return c.SendString("present")
		}
		return c.SendString("absent")
	})
	app.Post("/clear", func(c *fiber.Ctx) error {
		FromCtx(c).Clear()
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/set", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.EqualValues(t, 1, storage.sets.Load())

	// a browser that still holds a session cookie
	stale := &http.Cookie{Name: "session_id", Value: "0b7a4c1e-stale"}

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(stale)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "absent", readBody(t, resp))

	req = httptest.NewRequest(http.MethodPost, "/set", nil)
	req.AddCookie(stale)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/clear", nil)
	req.AddCookie(stale)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return &http.Cookie{Name: c.Name, Value: c.Value}
		}
	}
	t.Fatalf("no session_id cookie in response")
	return nil
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
