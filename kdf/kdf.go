// Package kdf turns passphrases and secrets into 16-byte cipher keys.
//
// The cipher itself only ever sees raw keys; everything here is built on a
// caller-chosen hash function so that the hash family stays interchangeable.
package kdf

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"

	"github.com/opd-ai/go-rijndael/internal"
)

// KeySize is the length of keys produced for the cipher.
const KeySize = 16

// Hash constructs a fresh hash.Hash.
type Hash func() hash.Hash

// SHA256 is SHA-256 from the standard library.
var SHA256 Hash = sha256.New

// Blake2b256 is unkeyed BLAKE2b with a 32-byte digest.
var Blake2b256 Hash = internal.NewBlake2b256

var (
	// ErrShortDigest is returned when a hash is too short to supply a key.
	ErrShortDigest = errors.New("kdf: digest shorter than key size")

	// ErrInvalidParams is returned for non-positive iteration counts or lengths.
	ErrInvalidParams = errors.New("kdf: invalid parameters")
)

// Digest returns h(data).
func Digest(h Hash, data []byte) []byte {
	hasher := h()
	hasher.Write(data)
	return hasher.Sum(nil)
}

// DigestKey hashes passphrase and keeps the first KeySize bytes.
func DigestKey(h Hash, passphrase []byte) ([]byte, error) {
	d := Digest(h, passphrase)
	if len(d) < KeySize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortDigest, len(d))
	}
	return d[:KeySize], nil
}

// HMAC returns the HMAC of message under key.
func HMAC(h Hash, key, message []byte) []byte {
	mac := hmac.New(h, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// KeyedBlake2b derives a KeySize key from a high-entropy secret with
// BLAKE2b in MAC mode, keyed by salt (at most 64 bytes).
func KeyedBlake2b(secret, salt []byte) ([]byte, error) {
	out, err := internal.Blake2bHash(secret, internal.Blake2bConfig{
		OutputSize: KeySize,
		Key:        salt,
	})
	if err != nil {
		return nil, fmt.Errorf("kdf: keyed blake2b: %w", err)
	}
	return out, nil
}

// PBKDF2 stretches password with PBKDF2-HMAC-h.
func PBKDF2(h Hash, password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations < 1 || keyLen < 1 {
		return nil, fmt.Errorf("%w: iterations=%d keyLen=%d", ErrInvalidParams, iterations, keyLen)
	}
	return internal.PBKDF2(h, password, salt, iterations, keyLen), nil
}

// Argon2Params are the Argon2id cost parameters.
type Argon2Params struct {
	Time    uint32 // Passes over memory
	Memory  uint32 // Memory in KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params returns moderate interactive-use parameters for a
// KeySize key.
func DefaultArgon2Params() Argon2Params {
	cfg := internal.DefaultArgon2Config(nil)
	return Argon2Params{
		Time:    cfg.Time,
		Memory:  cfg.Memory,
		Threads: cfg.Threads,
		KeyLen:  cfg.OutputLen,
	}
}

// Argon2id stretches password with Argon2id.
func Argon2id(password, salt []byte, p Argon2Params) ([]byte, error) {
	if p.Time < 1 || p.Threads < 1 || p.KeyLen < 1 || p.Memory < 8*uint32(p.Threads) {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidParams, p)
	}
	return internal.Argon2id(password, internal.Argon2Config{
		Time:      p.Time,
		Memory:    p.Memory,
		Threads:   p.Threads,
		OutputLen: p.KeyLen,
		Salt:      salt,
	}), nil
}

// HKDF expands a high-entropy secret into keyLen bytes bound to info.
func HKDF(h Hash, secret, salt, info []byte, keyLen int) ([]byte, error) {
	if keyLen < 1 {
		return nil, fmt.Errorf("%w: keyLen=%d", ErrInvalidParams, keyLen)
	}
	out, err := internal.HKDF(h, secret, salt, info, keyLen)
	if err != nil {
		return nil, fmt.Errorf("kdf: hkdf: %w", err)
	}
	return out, nil
}
