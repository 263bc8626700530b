package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/iho/pixdash/internal/domain"
)

// CredentialStore implements usecase.CredentialStore with a single file
// readable only by its owner.
type CredentialStore struct {
	mu   sync.Mutex
	path string
}

// NewCredentialStore creates a store at path.
func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

// DefaultPath is the credential file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "pixdash", "credential"), nil
}

// Get returns the stored credential.
func (s *CredentialStore) Get(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", domain.ErrNoStoredCredential
	}
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}

	token := string(bytes.TrimSpace(data))
	if token == "" {
		return "", domain.ErrNoStoredCredential
	}

	return token, nil
}

// Set writes token atomically, replacing any previous credential.
func (s *CredentialStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credential-*")
	if err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(token); err != nil {
		tmp.Close()
		return fmt.Errorf("store credential: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("store credential: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	return nil
}

// Remove deletes the credential file. A missing file is not an error.
func (s *CredentialStore) Remove(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}
