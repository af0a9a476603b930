package cache

import (
	"context"
	"time"
)

// GetOrCompute returns the value cached under key, or invokes produce and
// stores its result for ttl. With bypass set the lookup is skipped, but a
// successful result still refreshes the cache for later callers. A produce
// failure propagates unmodified and nothing is written, so a failed
// computation never poisons the cache.
//
// Concurrent callers that miss on the same key each run produce and the last
// store wins; callers that need coalescing can front this with singleflight.
func GetOrCompute[T any](
	ctx context.Context,
	store *Store,
	key string,
	ttl time.Duration,
	bypass bool,
	produce func(ctx context.Context) (T, error),
) (T, error) {
	if !bypass {
		if cached, ok := store.Get(key); ok {
			if value, ok := cached.(T); ok {
				return value, nil
			}
		}
	}

	value, err := produce(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	store.Set(key, value, ttl)
	return value, nil
}
