package rijndael

import "fmt"

// Polynomial is the AES irreducible polynomial x^8 + x^4 + x^3 + x + 1.
const Polynomial uint16 = 0x11B

// Degree returns the degree of a GF(2) polynomial, or -1 for the zero polynomial.
func Degree(p uint16) int {
	deg := -1
	for p != 0 {
		p >>= 1
		deg++
	}
	return deg
}

// Multiply returns a*b in GF(2^8) reduced modulo polynomial.
//
// The carry-less product is formed by XOR-ing b shifted by every set bit
// of a, then reduced by subtracting (XOR-ing) the polynomial aligned to the
// leading term until the degree drops below that of the polynomial.
func Multiply(a, b byte, polynomial uint16) byte {
	var product uint16
	for bit := 0; bit < 8; bit++ {
		if (a>>bit)&1 == 1 {
			product ^= uint16(b) << bit
		}
	}
	return byte(reduce(product, polynomial))
}

// reduce returns value mod polynomial.
func reduce(value, polynomial uint16) uint16 {
	polyDeg := Degree(polynomial)
	if polyDeg <= 0 {
		return value
	}
	for deg := Degree(value); deg >= polyDeg; deg = Degree(value) {
		value ^= polynomial << (deg - polyDeg)
	}
	return value
}

// Divide performs polynomial long division over GF(2) and returns the
// quotient and remainder of a / b.
func Divide(a, b uint16) (quotient, remainder uint16, err error) {
	if b == 0 {
		return 0, 0, ErrDivisionByZero
	}

	bDeg := Degree(b)
	for deg := Degree(a); deg >= bDeg; deg = Degree(a) {
		shift := deg - bDeg
		quotient |= 1 << shift
		a ^= b << shift
	}
	return quotient, a, nil
}

// Inverse returns the multiplicative inverse of value in GF(2^8) using the
// extended Euclidean algorithm. The inverse of 0 is defined as 0. Values
// sharing a factor with a reducible polynomial have no inverse and yield
// ErrReduciblePolynomial.
func Inverse(value byte, polynomial uint16) (byte, error) {
	if value == 0 {
		return 0, nil
	}

	// remainders[n+1] = remainders[n-1] mod remainders[n],
	// quotients[n] is the quotient of that division.
	remainders := []uint16{polynomial, uint16(value)}
	quotients := []uint16{0}
	for n := 1; remainders[n] != 0; n++ {
		q, r, err := Divide(remainders[n-1], remainders[n])
		if err != nil {
			return 0, err
		}
		quotients = append(quotients, q)
		remainders = append(remainders, r)
	}
	if gcd := remainders[len(remainders)-2]; gcd != 1 {
		return 0, fmt.Errorf("%w: 0x%03X shares factor 0x%X with 0x%02X", ErrReduciblePolynomial, polynomial, gcd, value)
	}

	aux := make([]byte, len(quotients)+1)
	aux[0], aux[1] = 0, 1
	for n := 2; n < len(aux); n++ {
		aux[n] = aux[n-2] ^ Multiply(byte(quotients[n-1]), aux[n-1], polynomial)
	}

	// The final quotient divides the remainder chain down to zero; the
	// auxiliary value computed alongside the unit remainder is the inverse.
	return aux[len(quotients)-1], nil
}

// Double returns v*x in GF(2^8) under the AES polynomial (xtime).
func Double(v byte) byte {
	if v&0x80 != 0 {
		return v<<1 ^ byte(Polynomial&0xFF)
	}
	return v << 1
}

// IsIrreducible reports whether polynomial is a degree-8 polynomial with no
// factor of degree 1 through 4 over GF(2).
func IsIrreducible(polynomial uint16) bool {
	if Degree(polynomial) != 8 {
		return false
	}
	for div := uint16(2); div < 0x20; div++ {
		if _, r, _ := Divide(polynomial, div); r == 0 {
			return false
		}
	}
	return true
}
