package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"grogetter/internal/util/memzero"
)

// The current supported version of the sealed value format stored on disk.
const envelopeFormatVersion = 1

// scryptParams are the key derivation tunables recorded in every envelope.
type scryptParams struct {
	N, R, P int
}

// defaultScryptParams is a package variable so tests can lower the cost.
var defaultScryptParams = scryptParams{N: 1 << 15, R: 8, P: 1}

// envelope is the on-disk JSON structure holding the ciphertext and KDF parameters.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// sealer encrypts values under a passphrase. The storage key is bound as
// associated data so a sealed value cannot be replayed under another key.
type sealer struct {
	passphrase string
	params     scryptParams
}

func (s sealer) deriveKey(salt []byte, p scryptParams) ([]byte, error) {
	pw := []byte(s.passphrase)
	defer memzero.Zero(pw)
	return scrypt.Key(pw, salt, p.N, p.R, p.P, chacha20poly1305.KeySize)
}

// seal derives a fresh key and seals raw into a JSON envelope.
func (s sealer) seal(key string, raw []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	k, err := s.deriveKey(salt, s.params)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(k)

	aead, err := chacha20poly1305.NewX(k)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, []byte(key))

	return json.Marshal(envelope{
		V:      envelopeFormatVersion,
		Salt:   salt,
		N:      s.params.N,
		R:      s.params.R,
		P:      s.params.P,
		Nonce:  nonce,
		Cipher: ct,
	})
}

// open decodes the envelope and decrypts it with a key derived from the passphrase.
func (s sealer) open(key string, b []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported envelope version %d", env.V)
	}

	k, err := s.deriveKey(env.Salt, scryptParams{N: env.N, R: env.R, P: env.P})
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(k)

	aead, err := chacha20poly1305.NewX(k)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, []byte(key))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
