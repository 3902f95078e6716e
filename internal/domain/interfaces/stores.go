package interfaces

// KVStore is the local key-value storage the grocery data is persisted to.
// Values are opaque bytes; callers own the encoding.
type KVStore interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}
