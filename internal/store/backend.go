package store

// Backend is the durable key-value area underneath the store, the analogue of
// a browser's local storage. Keys hold opaque JSON blobs: whole collections,
// the session pair, and the initialization flag.
type Backend interface {
	// Get returns the raw value for key. The second result is false when the
	// key is absent.
	Get(key string) ([]byte, bool, error)
	// Set durably writes the value for key before returning.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys returns all stored keys.
	Keys() ([]string, error)
	// Close releases backend resources.
	Close() error
}
