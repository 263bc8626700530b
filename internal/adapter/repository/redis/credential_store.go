package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iho/pixdash/internal/domain"
)

// CredentialStore implements usecase.CredentialStore using Redis.
type CredentialStore struct {
	client *redis.Client
	key    string
}

// NewCredentialStore creates a store holding the credential under one key.
func NewCredentialStore(client *redis.Client, key string) *CredentialStore {
	return &CredentialStore{
		client: client,
		key:    "pixdash:credential:" + key,
	}
}

// Get returns the stored credential.
func (s *CredentialStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) || (err == nil && token == "") {
		return "", domain.ErrNoStoredCredential
	}
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}

	return token, nil
}

// Set stores token, replacing any previous credential.
func (s *CredentialStore) Set(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

// Remove deletes the credential. Removing a missing credential is not an error.
func (s *CredentialStore) Remove(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}
