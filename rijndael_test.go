package rijndael

import (
	"bytes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"sync"
	"testing"
)

// Test basic configuration validation
func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid default polynomial",
			config: Config{Key: []byte("Thats my Kung Fu")},
		},
		{
			name:   "valid explicit polynomial",
			config: Config{Key: make([]byte, 16), Polynomial: 0x11D},
		},
		{
			name:    "short key",
			config:  Config{Key: []byte("short")},
			wantErr: ErrInvalidKeyLength,
		},
		{
			name:    "aes-256 key",
			config:  Config{Key: make([]byte, 32)},
			wantErr: ErrInvalidKeyLength,
		},
		{
			name:    "nil key",
			config:  Config{},
			wantErr: ErrInvalidKeyLength,
		},
		{
			name:    "reducible polynomial",
			config:  Config{Key: make([]byte, 16), Polynomial: 0x101},
			wantErr: ErrReduciblePolynomial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCipherImplementsBlock(t *testing.T) {
	c, err := NewCipher([]byte("Thats my Kung Fu"))
	if err != nil {
		t.Fatalf("NewCipher() error = %v", err)
	}
	defer c.Close()

	var block cipher.Block = c
	if block.BlockSize() != 16 {
		t.Errorf("BlockSize() = %d, want 16", block.BlockSize())
	}

	buf := []byte("Two One Nine Two")
	block.Encrypt(buf, buf)
	if got := hex.EncodeToString(buf); got != "29c3505f571420f6402299b31a02d73a" {
		t.Errorf("in-place Encrypt() = %s", got)
	}
	block.Decrypt(buf, buf)
	if string(buf) != "Two One Nine Two" {
		t.Errorf("in-place Decrypt() = %q", buf)
	}
}

func TestCipherShortBuffersPanic(t *testing.T) {
	c, err := NewCipher(make([]byte, KeySize))
	if err != nil {
		t.Fatalf("NewCipher() error = %v", err)
	}
	defer c.Close()

	defer func() {
		if recover() == nil {
			t.Error("Encrypt() with a short source should panic")
		}
	}()
	c.Encrypt(make([]byte, BlockSize), make([]byte, BlockSize-1))
}

func TestCipherClose(t *testing.T) {
	c, err := NewCipher([]byte("Thats my Kung Fu"))
	if err != nil {
		t.Fatalf("NewCipher() error = %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if rk := c.RoundKeys(); rk != (RoundKeys{}) {
		t.Error("Close() should wipe the round keys")
	}

	defer func() {
		if recover() == nil {
			t.Error("Encrypt() after Close() should panic")
		}
	}()
	c.Encrypt(make([]byte, BlockSize), make([]byte, BlockSize))
}

// Test concurrent use of one cipher
func TestCipherConcurrent(t *testing.T) {
	c, err := NewCipher([]byte("Thats my Kung Fu"))
	if err != nil {
		t.Fatalf("NewCipher() error = %v", err)
	}
	defer c.Close()

	want := mustHex(t, "29c3505f571420f6402299b31a02d73a")

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]byte, BlockSize)
			for j := 0; j < 50; j++ {
				c.Encrypt(out, []byte("Two One Nine Two"))
				if !bytes.Equal(out, want) {
					errs <- hex.EncodeToString(out)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent Encrypt() = %s", got)
	}
}

func TestNewWithPolynomial(t *testing.T) {
	c, err := New(Config{Key: []byte("Thats my Kung Fu"), Polynomial: 0x11D})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	ct := make([]byte, BlockSize)
	c.Encrypt(ct, []byte("Two One Nine Two"))
	pt := make([]byte, BlockSize)
	c.Decrypt(pt, ct)
	if string(pt) != "Two One Nine Two" {
		t.Errorf("round trip = %q", pt)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		wantLen int
	}{
		{"empty", nil, 16},
		{"one byte", []byte{0x41}, 16},
		{"fifteen bytes", make([]byte, 15), 16},
		{"exact block", make([]byte, 16), 16},
		{"seventeen bytes", make([]byte, 17), 32},
		{"two blocks", make([]byte, 32), 32},
		{"thirty-three bytes", make([]byte, 33), 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pad(tt.in)
			if len(got) != tt.wantLen {
				t.Fatalf("len(Pad()) = %d, want %d", len(got), tt.wantLen)
			}
			if !bytes.Equal(got[:len(tt.in)], tt.in) {
				t.Error("Pad() should keep the message as a prefix")
			}
			if len(tt.in)%BlockSize == 0 && len(tt.in) > 0 {
				return
			}
			if got[len(tt.in)] != 0x80 {
				t.Errorf("pad marker = 0x%02x, want 0x80", got[len(tt.in)])
			}
			for i := len(tt.in) + 1; i < len(got); i++ {
				if got[i] != 0 {
					t.Fatalf("pad byte %d = 0x%02x, want 0", i, got[i])
				}
			}
		})
	}
}

func TestPadDoesNotAlias(t *testing.T) {
	msg := make([]byte, 16)
	out := Pad(msg)
	out[0] = 1
	if msg[0] != 0 {
		t.Error("Pad() should not alias its input")
	}
}

// A 33-byte message encrypts to three blocks
func TestEncryptMultiBlock(t *testing.T) {
	key := []byte("Thats my Kung Fu")
	msg := []byte("Two One Nine TwoTwo One Nine Two!")
	if len(msg) != 33 {
		t.Fatalf("test message is %d bytes", len(msg))
	}

	ct, err := Encrypt(msg, key)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if len(ct) != 48 {
		t.Fatalf("len(ciphertext) = %d, want 48", len(ct))
	}

	// No chaining: equal plaintext blocks give equal ciphertext blocks.
	kat := mustHex(t, "29c3505f571420f6402299b31a02d73a")
	if !bytes.Equal(ct[:16], kat) || !bytes.Equal(ct[16:32], kat) {
		t.Errorf("first blocks = %x, want %x twice", ct[:32], kat)
	}

	pt, err := Decrypt(ct, key)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if !bytes.Equal(pt, Pad(msg)) {
		t.Errorf("Decrypt() = %x, want %x", pt, Pad(msg))
	}
	if !bytes.Equal(pt[:len(msg)], msg) {
		t.Errorf("Decrypt() prefix = %q, want %q", pt[:len(msg)], msg)
	}
}

func TestEncryptErrors(t *testing.T) {
	if _, err := Encrypt([]byte("data"), []byte("short")); !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("Encrypt() short key error = %v, want ErrInvalidKeyLength", err)
	}
	if _, err := Decrypt(make([]byte, 16), make([]byte, 24)); !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("Decrypt() 24-byte key error = %v, want ErrInvalidKeyLength", err)
	}

	for _, n := range []int{1, 15, 17, 33} {
		_, err := Decrypt(make([]byte, n), make([]byte, KeySize))
		if !errors.Is(err, ErrInvalidBlockLength) {
			t.Errorf("Decrypt(%d bytes) error = %v, want ErrInvalidBlockLength", n, err)
		}
		var bse BlockSizeError
		if !errors.As(err, &bse) || int(bse) != n {
			t.Errorf("Decrypt(%d bytes) error = %v, want BlockSizeError(%d)", n, err, n)
		}
	}
}

func TestCryptBlocksErrors(t *testing.T) {
	c, err := NewCipher(make([]byte, KeySize))
	if err != nil {
		t.Fatalf("NewCipher() error = %v", err)
	}
	defer c.Close()

	if err := c.EncryptBlocks(make([]byte, 32), make([]byte, 20)); !errors.Is(err, ErrInvalidBlockLength) {
		t.Errorf("EncryptBlocks() unaligned error = %v", err)
	}
	if err := c.DecryptBlocks(make([]byte, 16), make([]byte, 32)); err == nil {
		t.Error("DecryptBlocks() with short dst should fail")
	}
}

func TestErrorMessages(t *testing.T) {
	if got := KeySizeError(24).Error(); got != "rijndael: invalid key size 24, want 16" {
		t.Errorf("KeySizeError.Error() = %q", got)
	}
	if got := BlockSizeError(17).Error(); got != "rijndael: input length 17 is not a multiple of 16" {
		t.Errorf("BlockSizeError.Error() = %q", got)
	}
}

func BenchmarkEncrypt1K(b *testing.B) {
	key := []byte("Thats my Kung Fu")
	msg := make([]byte, 1024)
	b.SetBytes(int64(len(msg)))
	for i := 0; i < b.N; i++ {
		if _, err := Encrypt(msg, key); err != nil {
			b.Fatal(err)
		}
	}
}
