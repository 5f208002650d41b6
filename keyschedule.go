package rijndael

import (
	"encoding/binary"
	"math/bits"
)

const (
	// KeySize is the AES-128 key length in bytes.
	KeySize = 16

	// Rounds is the number of AES-128 rounds.
	Rounds = 10

	// RoundKeysSize is the length of the expanded key: 4*(Rounds+1) words.
	RoundKeysSize = 4 * (Rounds + 1) * 4

	keyWords = KeySize / 4
)

// RoundKeys is an expanded AES-128 key: eleven 16-byte round keys stored
// as 44 big-endian words.
type RoundKeys [RoundKeysSize]byte

// Word returns word i of the schedule.
func (rk *RoundKeys) Word(i int) uint32 {
	return binary.BigEndian.Uint32(rk[4*i:])
}

// Round returns round key k (0..Rounds).
func (rk *RoundKeys) Round(k int) [BlockSize]byte {
	var out [BlockSize]byte
	copy(out[:], rk[BlockSize*k:BlockSize*(k+1)])
	return out
}

// roundConstants returns rc[1..Rounds] with rc[i] = rc[i-1]*x in GF(2^8).
// Index 0 is unused.
func roundConstants() [Rounds + 1]byte {
	var rc [Rounds + 1]byte
	rc[1] = 1
	for i := 2; i <= Rounds; i++ {
		rc[i] = Double(rc[i-1])
	}
	return rc
}

// rotWord rotates a word left by one byte.
func rotWord(w uint32) uint32 {
	return bits.RotateLeft32(w, 8)
}

// ExpandKey expands a 16-byte key with the default AES S-box.
func ExpandKey(key []byte) (RoundKeys, error) {
	return ExpandKeyWith(key, DefaultSBox())
}

// ExpandKeyWith expands a 16-byte key into eleven round keys using sbox
// for SubWord.
func ExpandKeyWith(key []byte, sbox *SBox) (RoundKeys, error) {
	var rk RoundKeys
	if len(key) != KeySize {
		return rk, KeySizeError(len(key))
	}

	rc := roundConstants()
	var w [4 * (Rounds + 1)]uint32
	for i := 0; i < len(w); i++ {
		switch {
		case i < keyWords:
			w[i] = binary.BigEndian.Uint32(key[4*i:])
		case i%keyWords == 0:
			w[i] = w[i-keyWords] ^ sbox.subWord(rotWord(w[i-1])) ^ uint32(rc[i/keyWords])<<24
		default:
			w[i] = w[i-keyWords] ^ w[i-1]
		}
		binary.BigEndian.PutUint32(rk[4*i:], w[i])
	}

	traceBytes("round keys", rk[:])
	return rk, nil
}
