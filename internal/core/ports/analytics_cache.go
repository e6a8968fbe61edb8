package ports

import (
	"context"
	"time"
)

// AnalyticsCache is a short-lived cache for aggregate payloads. It is an
// optimisation only: implementations may fail or miss freely and callers must
// fall back to a fresh query.
type AnalyticsCache interface {
	// Get unmarshals the cached value for key into dest and reports whether a
	// value was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
