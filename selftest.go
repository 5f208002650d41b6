package rijndael

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/opd-ai/go-rijndael/internal"
)

// selfTestBlocks is the number of generated blocks cross-checked against
// the standard library by SelfTest.
const selfTestBlocks = 64

// SelfTest verifies the default S-box, the built-in known-answer vectors
// and a batch of deterministic random blocks against crypto/aes, first one
// key per block and then as a single multi-block message.
func SelfTest() error {
	sbox := DefaultSBox()
	if err := sbox.Check(); err != nil {
		return err
	}

	for i := range knownAnswers {
		if err := RunVector(&knownAnswers[i]); err != nil {
			return err
		}
	}

	seed := []byte("rijndael self-test")
	if err := crossCheck(sbox, seed, selfTestBlocks); err != nil {
		return err
	}
	return crossCheckBlocks(seed, selfTestBlocks)
}

// RunVector encrypts and decrypts a test vector and compares the results.
func RunVector(tv *TestVector) error {
	key, err := tv.GetKey()
	if err != nil {
		return fmt.Errorf("rijndael: vector %s: %w", tv.Name, err)
	}
	pt, err := tv.GetPlaintext()
	if err != nil {
		return fmt.Errorf("rijndael: vector %s: %w", tv.Name, err)
	}
	want, err := tv.GetExpected()
	if err != nil {
		return fmt.Errorf("rijndael: vector %s: %w", tv.Name, err)
	}

	got, err := Encrypt(pt, key)
	if err != nil {
		return fmt.Errorf("rijndael: vector %s: %w", tv.Name, err)
	}
	if !compareTrace(tv.Name+" encrypt", tv.Expected, hex.EncodeToString(got)) {
		return fmt.Errorf("rijndael: vector %s: ciphertext %x, want %s", tv.Name, got, tv.Expected)
	}

	back, err := Decrypt(want, key)
	if err != nil {
		return fmt.Errorf("rijndael: vector %s: %w", tv.Name, err)
	}
	if !bytes.Equal(back, Pad(pt)) {
		return fmt.Errorf("rijndael: vector %s: decrypted %x, want %x", tv.Name, back, pt)
	}
	return nil
}

// crossCheck compares n blocks under n keys, all expanded from seed,
// against the standard library in both directions.
func crossCheck(sbox *SBox, seed []byte, n int) error {
	stream := internal.NewBlake2bStream(seed)
	var key [KeySize]byte
	var pt [BlockSize]byte

	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(stream, key[:]); err != nil {
			return err
		}
		if _, err := io.ReadFull(stream, pt[:]); err != nil {
			return err
		}

		ref, err := internal.NewReferenceAES(key[:])
		if err != nil {
			return err
		}
		rk, err := ExpandKeyWith(key[:], sbox)
		if err != nil {
			return err
		}

		ct := EncryptBlock(pt, &rk, sbox)
		if want := ref.EncryptBlock(pt); ct != want {
			return fmt.Errorf("rijndael: cross-check %d: key %x: ciphertext %x, want %x", i, key, ct, want)
		}
		if back := DecryptBlock(ct, &rk, sbox); back != pt {
			return fmt.Errorf("rijndael: cross-check %d: key %x: round trip %x, want %x", i, key, back, pt)
		}
	}

	traceLog("cross-checked %d blocks against crypto/aes", n)
	return nil
}

// crossCheckBlocks encrypts n blocks expanded from seed as one message under
// one key through Cipher.EncryptBlocks and compares with the standard
// library.
func crossCheckBlocks(seed []byte, n int) error {
	stream := internal.NewBlake2bStream(append([]byte("blocks "), seed...))
	key := make([]byte, KeySize)
	msg := make([]byte, n*BlockSize)
	if _, err := io.ReadFull(stream, key); err != nil {
		return err
	}
	if _, err := io.ReadFull(stream, msg); err != nil {
		return err
	}

	ref, err := internal.NewReferenceAES(key)
	if err != nil {
		return err
	}
	c, err := NewCipher(key)
	if err != nil {
		return err
	}
	defer c.Close()

	want := make([]byte, len(msg))
	ref.EncryptBlocks(want, msg)
	got := make([]byte, len(msg))
	if err := c.EncryptBlocks(got, msg); err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("rijndael: multi-block cross-check: key %x: ciphertext differs from crypto/aes", key)
	}

	back := make([]byte, len(msg))
	if err := c.DecryptBlocks(back, got); err != nil {
		return err
	}
	if !bytes.Equal(back, msg) {
		return fmt.Errorf("rijndael: multi-block cross-check: key %x: round trip failed", key)
	}
	return nil
}
