// Package repository selects and instruments the credential store backend.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/adapter/repository/file"
	"github.com/iho/pixdash/internal/adapter/repository/memory"
	"github.com/iho/pixdash/internal/adapter/repository/redis"
	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/infrastructure/config"
	redisinfra "github.com/iho/pixdash/internal/infrastructure/redis"
	"github.com/iho/pixdash/internal/usecase"
)

// CredentialMetrics counts credential store calls.
type CredentialMetrics interface {
	CredentialOperation(backend, operation string, err error)
}

// OpenCredentialStore builds the backend named by cfg.CredentialStore. The
// returned close function releases the backend's connection, if any.
func OpenCredentialStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (usecase.CredentialStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.CredentialStore {
	case config.StoreMemory:
		return memory.NewCredentialStore(), noop, nil
	case config.StoreRedis:
		client, err := redisinfra.NewClient(ctx, cfg.RedisURL, redisinfra.DefaultDialConfig(), logger)
		if err != nil {
			return nil, noop, err
		}
		return redis.NewCredentialStore(client, cfg.CredentialKey), client.Close, nil
	case config.StoreFile:
		path := cfg.CredentialFile
		if path == "" {
			var err error
			if path, err = file.DefaultPath(); err != nil {
				return nil, noop, err
			}
		}
		return file.NewCredentialStore(path), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown credential store %q", cfg.CredentialStore)
	}
}

// InstrumentedStore records metrics around another credential store.
type InstrumentedStore struct {
	next    usecase.CredentialStore
	backend string
	metrics CredentialMetrics
}

// Instrument wraps next. A nil metrics returns next unchanged.
func Instrument(next usecase.CredentialStore, backend string, metrics CredentialMetrics) usecase.CredentialStore {
	if metrics == nil {
		return next
	}
	return &InstrumentedStore{next: next, backend: backend, metrics: metrics}
}

func (s *InstrumentedStore) Get(ctx context.Context) (string, error) {
	token, err := s.next.Get(ctx)
	observed := err
	if errors.Is(err, domain.ErrNoStoredCredential) {
		observed = nil
	}
	s.metrics.CredentialOperation(s.backend, "get", observed)
	return token, err
}

func (s *InstrumentedStore) Set(ctx context.Context, token string) error {
	err := s.next.Set(ctx, token)
	s.metrics.CredentialOperation(s.backend, "set", err)
	return err
}

func (s *InstrumentedStore) Remove(ctx context.Context) error {
	err := s.next.Remove(ctx)
	s.metrics.CredentialOperation(s.backend, "remove", err)
	return err
}
