package internal

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// ReferenceAES wraps the standard library AES implementation. It is the
// oracle the from-scratch cipher is cross-checked against.
type ReferenceAES struct {
	block cipher.Block
}

// NewReferenceAES creates a reference cipher for a 16-byte key.
func NewReferenceAES(key []byte) (*ReferenceAES, error) {
	if len(key) != 16 {
		return nil, fmt.Errorf("reference aes: key must be 16 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &ReferenceAES{block: block}, nil
}

// EncryptBlock encrypts a single 16-byte block.
func (a *ReferenceAES) EncryptBlock(src [16]byte) [16]byte {
	var dst [16]byte
	a.block.Encrypt(dst[:], src[:])
	return dst
}

// DecryptBlock decrypts a single 16-byte block.
func (a *ReferenceAES) DecryptBlock(src [16]byte) [16]byte {
	var dst [16]byte
	a.block.Decrypt(dst[:], src[:])
	return dst
}

// EncryptBlocks encrypts multiple independent blocks.
// Both dst and src must be multiples of 16 bytes.
func (a *ReferenceAES) EncryptBlocks(dst, src []byte) {
	if len(src)%aes.BlockSize != 0 {
		panic("reference aes: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("reference aes: output buffer too small")
	}

	for i := 0; i < len(src); i += aes.BlockSize {
		a.block.Encrypt(dst[i:i+aes.BlockSize], src[i:i+aes.BlockSize])
	}
}
