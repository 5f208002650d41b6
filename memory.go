package rijndael

import "sync"

// Pool of block-sized scratch buffers for multi-block helpers.
var blockPool = sync.Pool{
	New: func() interface{} {
		return new([BlockSize]byte)
	},
}

// getBlock acquires a scratch block from the pool.
func getBlock() *[BlockSize]byte {
	return blockPool.Get().(*[BlockSize]byte)
}

// putBlock clears a scratch block and returns it to the pool.
func putBlock(b *[BlockSize]byte) {
	if b != nil {
		zeroBytes(b[:])
		blockPool.Put(b)
	}
}

// zeroBytes clears a byte slice securely.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
