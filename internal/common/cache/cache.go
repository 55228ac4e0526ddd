package cache

import "context"

// Cache stores JSON-serializable values under string keys with a TTL decided
// by the implementation. Used for the distinct cargo/departamento listings,
// which are read far more often than they change.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// GetOrSet reads key into dest, calling setter and storing its result on a
// miss. Cache write failures are ignored: the setter's value is still
// returned so a flaky cache never breaks reads.
func GetOrSet(ctx context.Context, c Cache, key string, dest *[]string, setter func() ([]string, error)) error {
	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	}

	value, err := setter()
	if err != nil {
		return err
	}

	_ = c.Set(ctx, key, value)
	*dest = value
	return nil
}
