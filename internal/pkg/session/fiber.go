package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog/log"

	"github.com/ManuelReschke/Store2070/internal/pkg/env"
)

var sessionStore *session.Store

// NewSessionStore initializes the browser session store. Production passes
// cache.NewStorage(1); a nil storage keeps sessions in memory.
func NewSessionStore(storage fiber.Storage) *session.Store {
	sessionStore = session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		CookieSecure:   !env.IsDev(),
		CookieSameSite: "Lax",
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:session_id",
	})

	return sessionStore
}

// FromCtx returns the Store of the browser that sent c.
func FromCtx(c *fiber.Ctx) Store {
	return ctxStore{c: c}
}

type ctxStore struct {
	c *fiber.Ctx
}

func (s ctxStore) Get() (Session, bool) {
	if sessionStore == nil {
		return Session{}, false
	}

	sess, err := sessionStore.Get(s.c)
	if err != nil {
		log.Warn().Err(err).Msg("session unavailable, treating request as anonymous")
		return Session{}, false
	}

	token, _ := sess.Get(KeyToken).(string)
	isAdmin, _ := sess.Get(KeyIsAdmin).(bool)
	out := Session{Token: token, IsAdmin: isAdmin}
	if !out.Valid() {
		return Session{}, false
	}
	return out, true
}

func (s ctxStore) Set(in Session) {
	if sessionStore == nil {
		log.Warn().Msg("session store not initialized, session not persisted")
		return
	}

	sess, err := sessionStore.Get(s.c)
	if err != nil {
		log.Warn().Err(err).Msg("failed to get session, session not persisted")
		return
	}

	sess.Set(KeyToken, in.Token)
	sess.Set(KeyIsAdmin, in.IsAdmin)
	if err := sess.Save(); err != nil {
		log.Warn().Err(err).Msg("failed to save session, session not persisted")
	}
}

func (s ctxStore) Clear() {
	if sessionStore == nil {
		return
	}

	sess, err := sessionStore.Get(s.c)
	if err != nil {
		log.Warn().Err(err).Msg("failed to get session for logout")
		return
	}
	if err := sess.Destroy(); err != nil {
		log.Warn().Err(err).Msg("failed to destroy session")
	}
}
