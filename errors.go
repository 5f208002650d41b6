package rijndael

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidKeyLength is returned when a cipher key is not exactly KeySize bytes.
	ErrInvalidKeyLength = errors.New("rijndael: invalid key length")

	// ErrInvalidBlockLength is returned when ciphertext is not a whole number of blocks.
	ErrInvalidBlockLength = errors.New("rijndael: invalid block length")

	// ErrDivisionByZero is returned by field division with a zero divisor.
	// Under an irreducible polynomial it is unreachable from the cipher.
	ErrDivisionByZero = errors.New("rijndael: division by zero in GF(2^8)")

	// ErrIncompleteSbox means S-box generation did not produce a bijection.
	ErrIncompleteSbox = errors.New("rijndael: s-box is not a bijection")

	// ErrReduciblePolynomial is returned for a field polynomial that is not
	// an irreducible polynomial of degree 8.
	ErrReduciblePolynomial = errors.New("rijndael: polynomial is not irreducible of degree 8")
)

// KeySizeError reports the length of a rejected key.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rijndael: invalid key size " + strconv.Itoa(int(k)) + ", want " + strconv.Itoa(KeySize)
}

// Unwrap lets errors.Is match ErrInvalidKeyLength.
func (k KeySizeError) Unwrap() error { return ErrInvalidKeyLength }

// BlockSizeError reports the length of input that is not block aligned.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "rijndael: input length " + strconv.Itoa(int(b)) + " is not a multiple of " + strconv.Itoa(BlockSize)
}

// Unwrap lets errors.Is match ErrInvalidBlockLength.
func (b BlockSizeError) Unwrap() error { return ErrInvalidBlockLength }
