package store

import "errors"

var (
	// ErrInvalidKey is returned for empty keys or keys that could escape the store directory.
	ErrInvalidKey = errors.New("grogetter: invalid storage key")

	// ErrWrongPassphrase is returned when the passphrase is incorrect or the ciphertext has been
	// modified / corrupted.
	ErrWrongPassphrase = errors.New("grogetter: wrong passphrase or corrupted value")
)
