// Package session stores admin sessions in a pluggable storage backend.
//
// The store is injected into the middleware and handlers that need it;
// the authenticated identity travels per request in fiber Locals, never
// through package-level state.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/storage"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// ErrSessionNotFound is returned when no session exists for an ID.
var ErrSessionNotFound = errors.New("session not found")

// Data represents the session payload.
type Data struct {
	UserID uint64
}

// Store persists session data with an expiry in a storage backend.
type Store struct {
	storage storage.Storage
	expiry  time.Duration
}

// NewStore creates a session store on the provided storage backend.
func NewStore(backend storage.Storage, expiry time.Duration) *Store {
	if backend == nil {
		panic("session storage is nil")
	}

	return &Store{
		storage: backend,
		expiry:  expiry,
	}
}

// Expiry returns the configured session lifetime.
func (st *Store) Expiry() time.Duration {
	return st.expiry
}

// Write writes the session data for the given session ID.
func (st *Store) Write(sessionID string, data *Data) error {
	out, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return st.storage.Set(sessionID, out, st.expiry)
}

// Read reads the session data for the given session ID.
func (st *Store) Read(sessionID string) (*Data, error) {
	byteData, err := st.storage.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if len(byteData) == 0 {
		return nil, ErrSessionNotFound
	}

	data := new(Data)
	if err := json.Unmarshal(byteData, data); err != nil {
		return nil, err
	}

	return data, nil
}

// Destroy removes the session for the given session ID.
func (st *Store) Destroy(sessionID string) error {
	return st.storage.Delete(sessionID)
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
