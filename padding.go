package rijndael

// padMarker starts the padding appended to a partial final block.
const padMarker = 0x80

// Pad extends message to a whole number of blocks by appending 0x80 and
// then zeros. Messages that are already block aligned are returned as a
// copy without padding; an empty message becomes one padding block.
func Pad(message []byte) []byte {
	n := len(message)
	if n != 0 && n%BlockSize == 0 {
		return append([]byte(nil), message...)
	}

	padded := make([]byte, (n/BlockSize+1)*BlockSize)
	copy(padded, message)
	padded[n] = padMarker
	return padded
}
