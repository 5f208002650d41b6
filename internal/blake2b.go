// Package internal wraps golang.org/x/crypto and crypto/* primitives used
// around the cipher: reference AES, hashing and key derivation.
package internal

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Blake2bConfig selects the digest length and optional MAC key for
// Blake2bHash.
type Blake2bConfig struct {
	OutputSize int    // Digest size in bytes, 1 to 64
	Key        []byte // MAC key, at most 64 bytes; nil for plain hashing
}

// Blake2bHash computes a BLAKE2b digest of data, keyed when config.Key is
// set. It backs kdf.KeyedBlake2b.
func Blake2bHash(data []byte, config Blake2bConfig) ([]byte, error) {
	hasher, err := blake2b.New(config.OutputSize, config.Key)
	if err != nil {
		return nil, err
	}

	hasher.Write(data)
	return hasher.Sum(nil), nil
}

// Blake2b256 returns the unkeyed 32-byte BLAKE2b digest of data.
func Blake2b256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// NewBlake2b256 returns an unkeyed streaming BLAKE2b-256 hasher.
func NewBlake2b256() hash.Hash {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return h
}

// Blake2bStream deterministically expands a seed into an arbitrary number
// of bytes by hashing seed || counter.
type Blake2bStream struct {
	seed    []byte
	counter uint64
	buf     []byte
}

// NewBlake2bStream creates a new stream from seed.
func NewBlake2bStream(seed []byte) *Blake2bStream {
	return &Blake2bStream{seed: append([]byte(nil), seed...)}
}

// Read fills p with the next bytes of the stream. It never fails.
func (s *Blake2bStream) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(s.buf) == 0 {
			var ctr [8]byte
			for i := 0; i < 8; i++ {
				ctr[i] = byte(s.counter >> (8 * i))
			}
			s.counter++
			sum := Blake2b256(append(append([]byte(nil), s.seed...), ctr[:]...))
			s.buf = sum[:]
		}
		c := copy(p[n:], s.buf)
		s.buf = s.buf[c:]
		n += c
	}
	return n, nil
}
