package kdf

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex %q: %v", s, err)
	}
	return b
}

func TestDigest(t *testing.T) {
	got := Digest(SHA256, []byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if hex.EncodeToString(got) != want {
		t.Errorf("Digest(SHA256, abc) = %x, want %s", got, want)
	}

	if n := len(Digest(Blake2b256, []byte("abc"))); n != 32 {
		t.Errorf("Blake2b256 digest length = %d, want 32", n)
	}
}

func TestDigestKey(t *testing.T) {
	tests := []struct {
		name string
		h    Hash
	}{
		{"sha256", SHA256},
		{"blake2b-256", Blake2b256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DigestKey(tt.h, []byte("Thats my Kung Fu"))
			if err != nil {
				t.Fatalf("DigestKey() error = %v", err)
			}
			if len(key) != KeySize {
				t.Fatalf("len(key) = %d, want %d", len(key), KeySize)
			}
			full := Digest(tt.h, []byte("Thats my Kung Fu"))
			if !bytes.Equal(key, full[:KeySize]) {
				t.Error("DigestKey() should be the digest prefix")
			}
		})
	}

	key, _ := DigestKey(SHA256, []byte("abc"))
	if hex.EncodeToString(key) != "ba7816bf8f01cfea414140de5dae2223" {
		t.Errorf("DigestKey(SHA256, abc) = %x", key)
	}
}

func TestKeyedBlake2b(t *testing.T) {
	a, err := KeyedBlake2b([]byte("secret"), []byte("salt"))
	if err != nil {
		t.Fatalf("KeyedBlake2b() error = %v", err)
	}
	if len(a) != KeySize {
		t.Fatalf("len(key) = %d, want %d", len(a), KeySize)
	}

	b, _ := KeyedBlake2b([]byte("secret"), []byte("salt"))
	if !bytes.Equal(a, b) {
		t.Error("KeyedBlake2b() should be deterministic")
	}

	c, _ := KeyedBlake2b([]byte("secret"), []byte("pepper"))
	if bytes.Equal(a, c) {
		t.Error("different salts should give different keys")
	}

	// Unkeyed, the 16-byte digest is not a prefix of the 32-byte one.
	d, err := KeyedBlake2b([]byte("secret"), nil)
	if err != nil {
		t.Fatalf("KeyedBlake2b() without salt error = %v", err)
	}
	if full := Digest(Blake2b256, []byte("secret")); bytes.Equal(d, full[:KeySize]) {
		t.Error("BLAKE2b output length should be part of the parameter block")
	}

	if _, err := KeyedBlake2b([]byte("secret"), make([]byte, 65)); err == nil {
		t.Error("KeyedBlake2b() with a 65-byte salt should fail")
	}
}

// RFC 4231 test case 2
func TestHMAC(t *testing.T) {
	got := HMAC(SHA256, []byte("Jefe"), []byte("what do ya want for nothing?"))
	want := "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"
	if hex.EncodeToString(got) != want {
		t.Errorf("HMAC() = %x, want %s", got, want)
	}
}

// RFC 7914 section 11, PBKDF2-HMAC-SHA256 with one iteration
func TestPBKDF2(t *testing.T) {
	got, err := PBKDF2(SHA256, []byte("passwd"), []byte("salt"), 1, 64)
	if err != nil {
		t.Fatalf("PBKDF2() error = %v", err)
	}
	if len(got) != 64 {
		t.Fatalf("len = %d, want 64", len(got))
	}
	if prefix := hex.EncodeToString(got[:16]); prefix != "55ac046e56e3089fec1691c22544b605" {
		t.Errorf("PBKDF2() prefix = %s", prefix)
	}

	key, err := PBKDF2(Blake2b256, []byte("passwd"), []byte("salt"), 10, KeySize)
	if err != nil {
		t.Fatalf("PBKDF2(Blake2b256) error = %v", err)
	}
	again, _ := PBKDF2(Blake2b256, []byte("passwd"), []byte("salt"), 10, KeySize)
	if !bytes.Equal(key, again) {
		t.Error("PBKDF2 should be deterministic")
	}
}

func TestPBKDF2InvalidParams(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		keyLen     int
	}{
		{"zero iterations", 0, 16},
		{"negative iterations", -1, 16},
		{"zero length", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PBKDF2(SHA256, []byte("p"), []byte("s"), tt.iterations, tt.keyLen)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("PBKDF2() error = %v, want ErrInvalidParams", err)
			}
		})
	}
}

// RFC 5869 test case 1
func TestHKDF(t *testing.T) {
	secret := bytes.Repeat([]byte{0x0b}, 22)
	salt := mustHex(t, "000102030405060708090a0b0c")
	info := mustHex(t, "f0f1f2f3f4f5f6f7f8f9")

	got, err := HKDF(SHA256, secret, salt, info, 42)
	if err != nil {
		t.Fatalf("HKDF() error = %v", err)
	}
	want := "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865"
	if hex.EncodeToString(got) != want {
		t.Errorf("HKDF() = %x, want %s", got, want)
	}

	if _, err := HKDF(SHA256, secret, salt, info, 0); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("HKDF() zero length error = %v", err)
	}
	if _, err := HKDF(SHA256, secret, salt, info, 255*32+1); err == nil {
		t.Error("HKDF() beyond 255 blocks should fail")
	}
}

func TestArgon2id(t *testing.T) {
	p := Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: KeySize}

	a, err := Argon2id([]byte("passphrase"), []byte("somesalt"), p)
	if err != nil {
		t.Fatalf("Argon2id() error = %v", err)
	}
	if len(a) != KeySize {
		t.Fatalf("len = %d, want %d", len(a), KeySize)
	}

	b, _ := Argon2id([]byte("passphrase"), []byte("somesalt"), p)
	if !bytes.Equal(a, b) {
		t.Error("Argon2id should be deterministic")
	}

	c, _ := Argon2id([]byte("passphrase"), []byte("othersalt"), p)
	if bytes.Equal(a, c) {
		t.Error("different salts should give different keys")
	}
}

func TestArgon2idInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		p    Argon2Params
	}{
		{"zero time", Argon2Params{Time: 0, Memory: 64, Threads: 1, KeyLen: 16}},
		{"zero threads", Argon2Params{Time: 1, Memory: 64, Threads: 0, KeyLen: 16}},
		{"zero length", Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 0}},
		{"too little memory", Argon2Params{Time: 1, Memory: 7, Threads: 1, KeyLen: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Argon2id([]byte("p"), []byte("salt"), tt.p); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Argon2id() error = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestDefaultArgon2Params(t *testing.T) {
	p := DefaultArgon2Params()
	if p.KeyLen != KeySize {
		t.Errorf("KeyLen = %d, want %d", p.KeyLen, KeySize)
	}
	if p.Time == 0 || p.Threads == 0 || p.Memory < 8*uint32(p.Threads) {
		t.Errorf("DefaultArgon2Params() = %+v is not usable", p)
	}
}
