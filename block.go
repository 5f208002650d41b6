package rijndael

// EncryptBlock runs the 10-round AES encryption of one block.
// A nil sbox selects DefaultSBox.
func EncryptBlock(plaintext [BlockSize]byte, rk *RoundKeys, sbox *SBox) [BlockSize]byte {
	if sbox == nil {
		sbox = DefaultSBox()
	}
	poly := sbox.polynomial

	state := State(plaintext)
	traceSeparator("encrypt block")
	traceState("input", &state)

	state.addRoundKey(rk[:BlockSize])
	traceState("round 0 add round key", &state)

	for round := 1; round < Rounds; round++ {
		state.subBytes(sbox)
		state.shiftRows()
		state.mixColumns(poly)
		state.addRoundKey(rk[BlockSize*round : BlockSize*(round+1)])
		traceRound(round, &state)
	}

	state.subBytes(sbox)
	state.shiftRows()
	state.addRoundKey(rk[BlockSize*Rounds:])
	traceState("output", &state)

	return state
}

// DecryptBlock inverts EncryptBlock, consuming the round keys from last to first.
// A nil sbox selects DefaultSBox.
func DecryptBlock(ciphertext [BlockSize]byte, rk *RoundKeys, sbox *SBox) [BlockSize]byte {
	if sbox == nil {
		sbox = DefaultSBox()
	}
	poly := sbox.polynomial

	state := State(ciphertext)
	traceSeparator("decrypt block")
	traceState("input", &state)

	state.addRoundKey(rk[BlockSize*Rounds:])
	state.invShiftRows()
	state.invSubBytes(sbox)
	traceRound(Rounds, &state)

	for round := Rounds - 1; round > 0; round-- {
		state.addRoundKey(rk[BlockSize*round : BlockSize*(round+1)])
		state.invMixColumns(poly)
		state.invShiftRows()
		state.invSubBytes(sbox)
		traceRound(round, &state)
	}

	state.addRoundKey(rk[:BlockSize])
	traceState("output", &state)

	return state
}
