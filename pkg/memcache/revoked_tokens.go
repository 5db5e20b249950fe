// pkg/memcache/revoked_tokens.go
package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers signed-out token ids until the tokens would
// have expired anyway.
type RevokedTokenStore interface {
	Revoke(tokenID string, until time.Time)
	IsRevoked(tokenID string) bool
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	// expired entries are dropped on write, there is no janitor
	for id, exp := range s.data {
		if now.After(exp) {
			delete(s.data, id)
		}
	}
	s.data[tokenID] = until
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	until, ok := s.data[tokenID]
	if !ok {
		return false
	}
	return !s.now().After(until)
}

func (s *RevokedTokens) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
