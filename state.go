package rijndael

import "fmt"

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// State is the 4x4 byte matrix a block is transformed in. Bytes are stored
// column-major: column c occupies State[4c : 4c+4], so the input block maps
// onto the state without reordering.
type State [BlockSize]byte

// At returns the byte at row, col.
func (s *State) At(row, col int) byte {
	return s[4*col+row]
}

// Set stores v at row, col.
func (s *State) Set(row, col int, v byte) {
	s[4*col+row] = v
}

// Row gathers one byte from each column.
func (s *State) Row(r int) [4]byte {
	return [4]byte{s.At(r, 0), s.At(r, 1), s.At(r, 2), s.At(r, 3)}
}

// SetRow scatters row back across the four columns.
func (s *State) SetRow(r int, row [4]byte) {
	for c := 0; c < 4; c++ {
		s.Set(r, c, row[c])
	}
}

// Column returns column c top to bottom.
func (s *State) Column(c int) [4]byte {
	return [4]byte{s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]}
}

// SetColumn replaces column c.
func (s *State) SetColumn(c int, col [4]byte) {
	copy(s[4*c:4*c+4], col[:])
}

// String renders the state as four rows of hex bytes.
func (s *State) String() string {
	var out string
	for r := 0; r < 4; r++ {
		row := s.Row(r)
		out += fmt.Sprintf("%02x %02x %02x %02x\n", row[0], row[1], row[2], row[3])
	}
	return out
}

// addRoundKey XORs a 16-byte round key into the state. It is its own inverse.
func (s *State) addRoundKey(key []byte) {
	for i := 0; i < BlockSize; i++ {
		s[i] ^= key[i]
	}
}

func (s *State) subBytes(sbox *SBox) {
	for i := range s {
		s[i] = sbox.Forward[s[i]]
	}
}

func (s *State) invSubBytes(sbox *SBox) {
	for i := range s {
		s[i] = sbox.Inverse[s[i]]
	}
}

// shiftRows rotates row r left by r positions.
func (s *State) shiftRows() {
	for r := 1; r < 4; r++ {
		row := s.Row(r)
		s.SetRow(r, rotateRow(row, r))
	}
}

// invShiftRows rotates row r right by r positions.
func (s *State) invShiftRows() {
	for r := 1; r < 4; r++ {
		row := s.Row(r)
		s.SetRow(r, rotateRow(row, 4-r))
	}
}

// rotateRow rotates a row left by n byte positions.
func rotateRow(row [4]byte, n int) [4]byte {
	var out [4]byte
	for i := 0; i < 4; i++ {
		out[i] = row[(i+n)%4]
	}
	return out
}

func (s *State) mixColumns(polynomial uint16) {
	for c := 0; c < 4; c++ {
		s.SetColumn(c, mixColumn(s.Column(c), polynomial))
	}
}

func (s *State) invMixColumns(polynomial uint16) {
	for c := 0; c < 4; c++ {
		s.SetColumn(c, invMixColumn(s.Column(c), polynomial))
	}
}
