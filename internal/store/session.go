package store

import (
	"encoding/json"
	"log"
)

// Backend keys for session state and mock initialization.
const (
	keyToken       = "token"
	keyUser        = "user"
	keyInitialized = "mock_data_initialized"
)

// Session is the stored authentication pair (token + user record). It shares
// the store's backend, so mock handlers and the API client observe the same
// session.
type Session struct {
	backend Backend
}

func NewSession(backend Backend) *Session {
	return &Session{backend: backend}
}

// Token returns the stored session token, if any.
func (s *Session) Token() (string, bool) {
	raw, ok, err := s.backend.Get(keyToken)
	if err != nil || !ok {
		return "", false
	}
	var token string
	if err := json.Unmarshal(raw, &token); err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (s *Session) SetToken(token string) bool {
	raw, _ := json.Marshal(token)
	if err := s.backend.Set(keyToken, raw); err != nil {
		log.Printf("session: failed to persist token: %v", err)
		return false
	}
	return true
}

// User returns the stored session user record, if any.
func (s *Session) User() (Record, bool) {
	raw, ok, err := s.backend.Get(keyUser)
	if err != nil || !ok {
		return nil, false
	}
	var user Record
	if err := json.Unmarshal(raw, &user); err != nil || len(user) == 0 {
		return nil, false
	}
	return user, true
}

func (s *Session) SetUser(user Record) bool {
	raw, err := json.Marshal(user)
	if err != nil {
		return false
	}
	if err := s.backend.Set(keyUser, raw); err != nil {
		log.Printf("session: failed to persist user: %v", err)
		return false
	}
	return true
}

// Clear drops the stored token and user.
func (s *Session) Clear() {
	_ = s.backend.Delete(keyToken)
	_ = s.backend.Delete(keyUser)
}

// Initialized reports whether seed data has been written to this backend.
func (s *Session) Initialized() bool {
	_, ok, _ := s.backend.Get(keyInitialized)
	return ok
}

// MarkInitialized records that seed data exists.
func (s *Session) MarkInitialized() {
	_ = s.backend.Set(keyInitialized, []byte(`true`))
}
