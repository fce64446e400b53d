package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/geofeed/internal/common"
	"github.com/dmitrijs2005/geofeed/internal/logging"
)

// Persister is the durable side of the store. metadata.Repository
// satisfies it.
type Persister interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// TokenStore holds the current access token.
//
// Writes go to the persister first and then replace the in-memory value, so
// a reader that runs after Set or Clear returns sees the new value. A failed
// durable write still updates memory and is reported to the caller.
type TokenStore struct {
	mu    sync.RWMutex
	token string

	p   Persister
	log logging.Logger
}

// NewTokenStore creates an empty store. A nil persister keeps the token in
// memory only.
func NewTokenStore(p Persister, log logging.Logger) *TokenStore {
	if log == nil {
		log = logging.Nop()
	}
	return &TokenStore{p: p, log: log}
}

// Load seeds the in-memory token from durable storage.
func (s *TokenStore) Load(ctx context.Context) error {
	if s.p == nil {
		return nil
	}
	v, err := s.p.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return fmt.Errorf("load access token: %w", err)
	}

	s.mu.Lock()
	s.token = string(v)
	s.mu.Unlock()
	return nil
}

// Get returns the current token and whether one is present.
func (s *TokenStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Set replaces the token. An empty token is equivalent to Clear.
func (s *TokenStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}

	var err error
	if s.p != nil {
		if err = s.p.Set(ctx, common.AccessTokenKey, []byte(token)); err != nil {
			err = fmt.Errorf("persist access token: %w", err)
			s.log.Error(ctx, "token store write failed", "error", err)
		}
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return err
}

// Clear removes the token from memory and durable storage.
func (s *TokenStore) Clear(ctx context.Context) error {
	var err error
	if s.p != nil {
		if err = s.p.Delete(ctx, common.AccessTokenKey); err != nil {
			err = fmt.Errorf("delete access token: %w", err)
			s.log.Error(ctx, "token store delete failed", "error", err)
		}
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return err
}
