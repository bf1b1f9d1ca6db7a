package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/stitchutils/internal/adapters/secrets/file"
	passstore "github.com/bnema/stitchutils/internal/adapters/secrets/pass"
	"github.com/bnema/stitchutils/internal/domain"
	"github.com/bnema/stitchutils/internal/ports"
)

// Store reads and writes the primary backend and falls back to the
// secondary one when the primary fails.
type Store struct {
	primary  ports.KeyValueStore
	fallback ports.KeyValueStore
}

var _ ports.KeyValueStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary token store is nil")
	errNilFallbackStore = errors.New("fallback token store is nil")
)

func NewStore(primary ports.KeyValueStore, fallback ports.KeyValueStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.KeyValueStore, fallback ports.KeyValueStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(fileRoot string, passOpts ...passstore.Option) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(passOpts...), filestore.NewStore(fileRoot))
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	err := s.primary.Set(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Set(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend set failed: %w; fallback backend set failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	if errors.Is(fallbackErr, domain.ErrKeyNotFound) {
		if isAbsent(err) {
			return "", fallbackErr
		}
		return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %v", err, fallbackErr)
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Remove clears the key from both backends; a value may live in either one.
func (s *Store) Remove(ctx context.Context, key string) error {
	err := s.primary.Remove(ctx, key)
	if err != nil && shouldSkipFallback(err) {
		return err
	}
	if errors.Is(err, passstore.ErrUnavailable) {
		err = nil
	}

	fallbackErr := s.fallback.Remove(ctx, key)

	switch {
	case err != nil && fallbackErr != nil:
		return fmt.Errorf("primary backend remove failed: %w; fallback backend remove failed: %w", err, fallbackErr)
	case err != nil:
		return fmt.Errorf("primary backend remove failed: %w", err)
	case fallbackErr != nil:
		return fmt.Errorf("fallback backend remove failed: %w", fallbackErr)
	}

	return nil
}

func isAbsent(err error) bool {
	return errors.Is(err, domain.ErrKeyNotFound) || errors.Is(err, passstore.ErrUnavailable)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
