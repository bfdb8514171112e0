package session

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/zalando/go-keyring"
)

// DefaultKeyringService is the credential manager service name used by the CLI.
const DefaultKeyringService = "store2070-cli"

// KeyringStore keeps the session in the OS keychain/credential manager.
type KeyringStore struct {
	service string
}

func NewKeyringStore(service string) *KeyringStore {
	if service == "" {
		service = DefaultKeyringService
	}
	return &KeyringStore{service: service}
}

func (k *KeyringStore) Get() (Session, bool) {
	raw, err := keyring.Get(k.service, KeyToken)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Warn().Err(err).Msg("failed to load session from keyring")
		}
		return Session{}, false
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		log.Warn().Err(err).Msg("failed to parse keyring session")
		return Session{}, false
	}
	if !s.Valid() {
		return Session{}, false
	}
	return s, true
}

func (k *KeyringStore) Set(s Session) {
	data, err := json.Marshal(s)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal session")
		return
	}
	if err := keyring.Set(k.service, KeyToken, string(data)); err != nil {
		log.Warn().Err(err).Msg("session not persisted to keyring")
	}
}

func (k *KeyringStore) Clear() {
	if err := keyring.Delete(k.service, KeyToken); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		log.Warn().Err(err).Msg("failed to delete keyring session")
	}
}
