package rijndael

import (
	"fmt"
	"sync"
)

// sboxCache holds one S-box per field polynomial. Tables are built on first
// request and are read-only afterwards, so callers share the same pointer.
type sboxCache struct {
	mu     sync.Mutex
	tables map[uint16]*SBox
}

var tables = &sboxCache{tables: make(map[uint16]*SBox)}

// get returns the cached S-box for polynomial, building it if needed.
func (c *sboxCache) get(polynomial uint16) (*SBox, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.tables[polynomial]; ok {
		return s, nil
	}

	s, err := BuildSBox(polynomial)
	if err != nil {
		return nil, err
	}
	c.tables[polynomial] = s
	return s, nil
}

// len returns the number of cached polynomials.
func (c *sboxCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}

// SBoxFor returns the shared S-box for polynomial.
func SBoxFor(polynomial uint16) (*SBox, error) {
	return tables.get(polynomial)
}

// DefaultSBox returns the shared AES S-box.
// It panics if the tables fail their self-check, which indicates a defect
// in the field arithmetic rather than a runtime condition.
func DefaultSBox() *SBox {
	s, err := tables.get(Polynomial)
	if err != nil {
		panic(fmt.Sprintf("rijndael: default s-box: %v", err))
	}
	return s
}
