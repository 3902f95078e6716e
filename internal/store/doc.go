// Package store provides the local key-value backends the grocery data is
// persisted to.
//
// Every backend implements domain.KVStore and guards its own state with a
// mutex. Values are opaque bytes.
//
// The package includes:
//   - MemoryStore, a map for tests and throwaway sessions
//   - FileStore, one file per key under a directory, optionally sealed with
//     a passphrase (scrypt + ChaCha20-Poly1305)
//   - SQLiteStore, a single SQLite database via gorm
package store
