package localstore

import (
	"context"
	"sync"

	"github.com/coastally/coastally-api/internal/domain/auth"
)

// MemoryStore keeps the session and saved API key in process memory. Used for
// tests and when no store path is configured.
type MemoryStore struct {
	mu             sync.RWMutex
	profile        auth.Profile
	profilePresent bool
	apiKey         string
	apiKeyPresent  bool
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveProfile(_ context.Context, profile auth.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	s.profilePresent = true
	return nil
}

func (s *MemoryStore) LoadProfile(_ context.Context) (auth.Profile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, s.profilePresent, nil
}

func (s *MemoryStore) DeleteProfile(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = auth.Profile{}
	s.profilePresent = false
	return nil
}

func (s *MemoryStore) SaveAPIKey(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = key
	s.apiKeyPresent = true
	return nil
}

func (s *MemoryStore) LoadAPIKey(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey, s.apiKeyPresent, nil
}

func (s *MemoryStore) DeleteAPIKey(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = ""
	s.apiKeyPresent = false
	return nil
}

var (
	_ auth.SessionStore = (*MemoryStore)(nil)
	_ KeyStore          = (*MemoryStore)(nil)
)
