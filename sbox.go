package rijndael

import "fmt"

// affineConstant is the vector added after the bit-matrix multiply,
// bits 0..7 = 1,1,0,0,0,1,1,0.
const affineConstant byte = 0x63

// SBox holds a forward substitution table and its inverse.
// Values are immutable once returned by BuildSBox.
type SBox struct {
	Forward [256]byte
	Inverse [256]byte

	polynomial uint16
}

// Polynomial returns the field polynomial the tables were derived from.
func (s *SBox) Polynomial() uint16 {
	return s.polynomial
}

// BuildSBox derives the substitution tables for the given field polynomial:
// every byte is replaced by its field inverse and then passed through the
// AES affine transform. The inverse table is filled by scatter and the pair
// is checked for completeness before being returned.
func BuildSBox(polynomial uint16) (*SBox, error) {
	if !IsIrreducible(polynomial) {
		return nil, fmt.Errorf("%w: 0x%03X", ErrReduciblePolynomial, polynomial)
	}

	s := &SBox{polynomial: polynomial}
	for x := 0; x < 256; x++ {
		inv, err := Inverse(byte(x), polynomial)
		if err != nil {
			return nil, fmt.Errorf("rijndael: inverse of 0x%02x: %w", x, err)
		}
		s.Forward[x] = affine(inv)
	}
	for x := 0; x < 256; x++ {
		s.Inverse[s.Forward[x]] = byte(x)
	}

	if err := s.Check(); err != nil {
		return nil, err
	}

	traceLog("built s-box for polynomial 0x%03X", polynomial)
	return s, nil
}

// affine applies the AES affine transform over GF(2). Output bit i is the
// XOR of input bits i, i+4, i+5, i+6 and i+7 (mod 8) plus bit i of the constant.
func affine(b byte) byte {
	var out byte
	for i := 0; i < 8; i++ {
		bit := (b >> i) ^
			(b >> ((i + 4) % 8)) ^
			(b >> ((i + 5) % 8)) ^
			(b >> ((i + 6) % 8)) ^
			(b >> ((i + 7) % 8)) ^
			(affineConstant >> i)
		out |= (bit & 1) << i
	}
	return out
}

// Check verifies that Forward is a bijection and Inverse undoes it.
func (s *SBox) Check() error {
	var seen [256]bool
	for x := 0; x < 256; x++ {
		y := s.Forward[x]
		if seen[y] {
			return fmt.Errorf("%w: 0x%02x produced twice", ErrIncompleteSbox, y)
		}
		seen[y] = true
		if s.Inverse[y] != byte(x) {
			return fmt.Errorf("%w: inverse[0x%02x] = 0x%02x, want 0x%02x",
				ErrIncompleteSbox, y, s.Inverse[y], x)
		}
	}
	return nil
}

// subWord applies the forward table to each byte of a word.
func (s *SBox) subWord(w uint32) uint32 {
	return uint32(s.Forward[w>>24])<<24 |
		uint32(s.Forward[w>>16&0xff])<<16 |
		uint32(s.Forward[w>>8&0xff])<<8 |
		uint32(s.Forward[w&0xff])
}
