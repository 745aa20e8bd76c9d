package cache

import (
	"context"
	"time"
)

// Cache defines the cache interface used across the node. Lookups from the
// registry gateway are cheap but remote, so probe results are kept here.
type Cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, value any) bool
	Exists(ctx context.Context, key string) bool
	Delete(ctx context.Context, key string) error
}
