package rijndael

var (
	mixMatrix = [4][4]byte{
		{2, 3, 1, 1},
		{1, 2, 3, 1},
		{1, 1, 2, 3},
		{3, 1, 1, 2},
	}

	invMixMatrix = [4][4]byte{
		{14, 11, 13, 9},
		{9, 14, 11, 13},
		{13, 9, 14, 11},
		{11, 13, 9, 14},
	}
)

// mixColumn multiplies a column by the MixColumns matrix.
func mixColumn(col [4]byte, polynomial uint16) [4]byte {
	if polynomial == Polynomial {
		return fastMatrixColumn(&mixMatrix, col)
	}
	return matrixColumn(&mixMatrix, col, polynomial)
}

// invMixColumn multiplies a column by the InvMixColumns matrix.
func invMixColumn(col [4]byte, polynomial uint16) [4]byte {
	if polynomial == Polynomial {
		return fastMatrixColumn(&invMixMatrix, col)
	}
	return matrixColumn(&invMixMatrix, col, polynomial)
}

// matrixColumn computes m*col over GF(2^8); each output byte is the XOR of
// four field products.
func matrixColumn(m *[4][4]byte, col [4]byte, polynomial uint16) [4]byte {
	var out [4]byte
	for r := 0; r < 4; r++ {
		out[r] = Multiply(m[r][0], col[0], polynomial) ^
			Multiply(m[r][1], col[1], polynomial) ^
			Multiply(m[r][2], col[2], polynomial) ^
			Multiply(m[r][3], col[3], polynomial)
	}
	return out
}

// mulConst multiplies b by one of the MixColumns constants under the AES
// polynomial using xtime chains. Other constants fall back to Multiply.
func mulConst(c, b byte) byte {
	switch c {
	case 1:
		return b
	case 2:
		return Double(b)
	case 3:
		return Double(b) ^ b
	case 4:
		return Double(Double(b))
	case 9:
		return Double(Double(Double(b))) ^ b
	case 11:
		b2 := Double(b)
		return Double(Double(b2)) ^ b2 ^ b
	case 13:
		b4 := Double(Double(b))
		return Double(b4) ^ b4 ^ b
	case 14:
		b2 := Double(b)
		b4 := Double(b2)
		return Double(b4) ^ b4 ^ b2
	default:
		return Multiply(c, b, Polynomial)
	}
}

// fastMatrixColumn is matrixColumn specialised to the AES polynomial.
func fastMatrixColumn(m *[4][4]byte, col [4]byte) [4]byte {
	var out [4]byte
	for r := 0; r < 4; r++ {
		out[r] = mulConst(m[r][0], col[0]) ^
			mulConst(m[r][1], col[1]) ^
			mulConst(m[r][2], col[2]) ^
			mulConst(m[r][3], col[3])
	}
	return out
}
