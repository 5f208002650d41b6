package internal

import (
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 derives keyLen bytes from password with HMAC-h.
func PBKDF2(h func() hash.Hash, password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, h)
}

// HKDF runs HKDF extract-and-expand and returns keyLen bytes.
func HKDF(h func() hash.Hash, secret, salt, info []byte, keyLen int) ([]byte, error) {
	out := make([]byte, keyLen)
	if _, err := io.ReadFull(hkdf.New(h, secret, salt, info), out); err != nil {
		return nil, err
	}
	return out, nil
}
