// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/cache"
	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/google/uuid"
)

// CacheService stores JSON encoded values in a cache.Store.
type CacheService struct {
	store cache.Store
	ttl   time.Duration
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL time.Duration
}

// NewCacheService creates a new cache service
func NewCacheService(store cache.Store, config CacheConfig) *CacheService {
	return &CacheService{
		store: store,
		ttl:   config.TTL,
	}
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling cached value: %w", err)
	}
	return s.store.Set(ctx, key, data, s.ttl)
}

// Get decodes the cached value into result. A miss returns domain.ErrNotFound.
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	data, err := s.store.Get(ctx, key)
	if errors.Is(err, cache.ErrMiss) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("unmarshaling cached value: %w", err)
	}
	return nil
}

// Delete removes a value from the cache
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Delete(ctx, key)
}

// InvalidateDashboards drops the cached dashboards of users after a change to
// their roles or positions. A nil service is a no-op.
func (s *CacheService) InvalidateDashboards(ctx context.Context, userIDs ...uuid.UUID) {
	if s == nil {
		return
	}
	for _, id := range userIDs {
		if id == uuid.Nil {
			continue
		}
		if err := s.Delete(ctx, dashboardKey(id)); err != nil {
			slog.WarnContext(ctx, "Dashboard cache invalidation failed", "error", err, "userID", id)
		}
	}
}
