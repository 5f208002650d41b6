// Package rijndael provides a pure-Go, from-first-principles implementation
// of the Rijndael (AES-128) block cipher.
//
// Every table is derived at run time from GF(2^8) arithmetic: field
// inverses come from the extended Euclidean algorithm, the S-box from an
// affine transform of those inverses, and the round constants from repeated
// doubling in the field.
//
// Example usage:
//
//	c, err := rijndael.New(rijndael.Config{
//	    Key: []byte("Thats my Kung Fu"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	ct := make([]byte, rijndael.BlockSize)
//	c.Encrypt(ct, []byte("Two One Nine Two"))
//
// Messages longer than one block can be processed with Encrypt and Decrypt,
// which pad with 0x80 followed by zeros and transform each block on its own.
// That scheme offers no chaining and is not a general-purpose mode.
package rijndael

import (
	"crypto/cipher"
	"fmt"
	"sync"
)

// Config specifies the configuration for a Cipher.
type Config struct {
	// Polynomial is the irreducible degree-8 polynomial the field is built
	// on, written with its x^8 bit (0x11B for AES). Zero selects Polynomial.
	Polynomial uint16

	// Key is the 16-byte cipher key.
	Key []byte
}

// polynomial returns the configured polynomial or the AES default.
func (c *Config) polynomial() uint16 {
	if c.Polynomial == 0 {
		return Polynomial
	}
	return c.Polynomial
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Key) != KeySize {
		return KeySizeError(len(c.Key))
	}

	if p := c.polynomial(); !IsIrreducible(p) {
		return fmt.Errorf("%w: 0x%03X", ErrReduciblePolynomial, p)
	}

	return nil
}

// Cipher is an expanded AES-128 key bound to its S-box. It implements
// crypto/cipher.Block and is safe for concurrent use.
type Cipher struct {
	sbox   *SBox
	rk     RoundKeys
	closed bool
	mu     sync.RWMutex // Protects closed flag and the round keys on Close
}

var _ cipher.Block = (*Cipher)(nil)

// New creates a Cipher from config.
// The returned cipher should be closed with Close to wipe the round keys.
func New(config Config) (*Cipher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	sbox, err := SBoxFor(config.polynomial())
	if err != nil {
		return nil, fmt.Errorf("rijndael: s-box initialization: %w", err)
	}

	rk, err := ExpandKeyWith(config.Key, sbox)
	if err != nil {
		return nil, fmt.Errorf("rijndael: key expansion: %w", err)
	}

	return &Cipher{sbox: sbox, rk: rk}, nil
}

// NewCipher creates a Cipher for key under the AES polynomial.
func NewCipher(key []byte) (*Cipher, error) {
	return New(Config{Key: key})
}

// BlockSize returns the cipher's block size.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst.
// dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	c.crypt(dst, src, EncryptBlock)
}

// Decrypt decrypts the first block of src into dst.
// dst and src may overlap entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	c.crypt(dst, src, DecryptBlock)
}

func (c *Cipher) crypt(dst, src []byte, fn func([BlockSize]byte, *RoundKeys, *SBox) [BlockSize]byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		panic("rijndael: cipher used after Close")
	}

	in := getBlock()
	defer putBlock(in)
	copy(in[:], src)
	out := fn(*in, &c.rk, c.sbox)
	copy(dst, out[:])
}

// EncryptBlocks encrypts every block of src independently into dst.
// len(src) must be a multiple of BlockSize and dst at least as long.
func (c *Cipher) EncryptBlocks(dst, src []byte) error {
	return c.cryptBlocks(dst, src, c.Encrypt)
}

// DecryptBlocks decrypts every block of src independently into dst.
func (c *Cipher) DecryptBlocks(dst, src []byte) error {
	return c.cryptBlocks(dst, src, c.Decrypt)
}

func (c *Cipher) cryptBlocks(dst, src []byte, fn func(dst, src []byte)) error {
	if len(src)%BlockSize != 0 {
		return BlockSizeError(len(src))
	}
	if len(dst) < len(src) {
		return fmt.Errorf("rijndael: output buffer too small: %d < %d", len(dst), len(src))
	}

	for i := 0; i < len(src); i += BlockSize {
		fn(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
	return nil
}

// RoundKeys returns a copy of the expanded key.
func (c *Cipher) RoundKeys() RoundKeys {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rk
}

// Close wipes the round keys. After Close, the cipher must not be used.
func (c *Cipher) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	zeroBytes(c.rk[:])
	return nil
}

// Encrypt pads message and encrypts it block by block under key with no
// chaining. The result is always a whole number of blocks.
func Encrypt(message, key []byte) ([]byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	padded := Pad(message)
	out := make([]byte, len(padded))
	if err := c.EncryptBlocks(out, padded); err != nil {
		return nil, err
	}
	return out, nil
}

// Decrypt decrypts ciphertext block by block under key. Padding added by
// Encrypt is left in place; callers track the original length themselves.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if len(ciphertext)%BlockSize != 0 {
		return nil, BlockSizeError(len(ciphertext))
	}

	out := make([]byte, len(ciphertext))
	if err := c.DecryptBlocks(out, ciphertext); err != nil {
		return nil, err
	}
	return out, nil
}
