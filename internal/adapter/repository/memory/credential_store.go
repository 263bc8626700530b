package memory

import (
	"context"
	"sync"

	"github.com/iho/pixdash/internal/domain"
)

// CredentialStore keeps the credential for the life of the process.
type CredentialStore struct {
	mu    sync.RWMutex
	token string
}

// NewCredentialStore creates an empty store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

func (s *CredentialStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", domain.ErrNoStoredCredential
	}
	return s.token, nil
}

func (s *CredentialStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *CredentialStore) Remove(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
