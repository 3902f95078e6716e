package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"grogetter/internal/domain"
)

const (
	plainSuffix  = ".json"
	sealedSuffix = ".json.enc"
)

// FileStore keeps one file per key under dir. With a passphrase every value
// is sealed before it touches the disk.
type FileStore struct {
	dir    string
	sealer *sealer
	mu     sync.Mutex
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithPassphrase encrypts values at rest. An empty passphrase leaves the store in plaintext.
func WithPassphrase(passphrase string) FileOption {
	return func(s *FileStore) {
		if passphrase == "" {
			return
		}
		s.sealer = &sealer{passphrase: passphrase, params: defaultScryptParams}
	}
}

// NewFileStore returns a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string, opts ...FileOption) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	s := &FileStore{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the directory the store writes to.
func (s *FileStore) Dir() string { return s.dir }

// Encrypted reports whether values are sealed at rest.
func (s *FileStore) Encrypted() bool { return s.sealer != nil }

func (s *FileStore) path(key string) string {
	if s.sealer != nil {
		return filepath.Join(s.dir, key+sealedSuffix)
	}
	return filepath.Join(s.dir, key+plainSuffix)
}

// Get reads the value for key.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path(key))
	if err != nil {
		return nil, false, err
	}
	if b == nil { // file didn’t exist
		return nil, false, nil
	}
	if s.sealer != nil {
		pt, err := s.sealer.open(key, b)
		if err != nil {
			return nil, false, fmt.Errorf("open %q: %w", key, err)
		}
		return pt, true, nil
	}
	return b, true, nil
}

// Set writes value for key, replacing the previous file atomically.
func (s *FileStore) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data := value
	if s.sealer != nil {
		sealed, err := s.sealer.seal(key, value)
		if err != nil {
			return fmt.Errorf("seal %q: %w", key, err)
		}
		data = sealed
	}
	return writeFile(s.path(key), data, 0o600)
}

// Delete removes the file for key.
func (s *FileStore) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return removeFile(s.path(key))
}

// Compile-time assertion that FileStore implements domain.KVStore.
var _ domain.KVStore = (*FileStore)(nil)
