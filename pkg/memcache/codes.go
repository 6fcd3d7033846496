package mem

import (
	"sync"
	"time"
)

// CodeStore holds short-lived single-use codes (two-factor login codes,
// password reset tokens) keyed by the code itself, mapped to an account email.
type CodeStore interface {
	Set(code string, accountEmail string, ttl time.Duration)

	// Consume returns the email for code if not expired,
	// and removes the code (single-use). Returns "" if missing/expired.
	Consume(code string) string

	// Peek reads without consuming.
	Peek(code string) (string, bool)
}

type entry struct {
	email     string
	expiresAt time.Time
}

type Codes struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewCodes() *Codes {
	return &Codes{
		data: make(map[string]entry),
	}
}

func (s *Codes) Set(code string, accountEmail string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[code] = entry{
		email:     accountEmail,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Codes) Consume(code string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[code]
	if !ok {
		return ""
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, code) // cleanup expired
		return ""
	}
	delete(s.data, code) // single-use
	return e.email
}

func (s *Codes) Peek(code string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[code]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.email, true
}
