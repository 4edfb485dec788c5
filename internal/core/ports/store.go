package ports

import "context"

// KeyValueStore is a string-keyed store with whole-value reads and writes.
// Implementations give no transactional guarantees.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by stores backed by a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}
