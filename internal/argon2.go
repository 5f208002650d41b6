package internal

import (
	"golang.org/x/crypto/argon2"
)

// Argon2Config specifies Argon2id parameters for passphrase stretching.
type Argon2Config struct {
	Time      uint32 // Number of iterations
	Memory    uint32 // Memory in KB
	Threads   uint8  // Parallelism factor
	OutputLen uint32 // Output length in bytes
	Salt      []byte // Salt value
}

// DefaultArgon2Config returns the parameters recommended by RFC 9106 for
// memory-constrained environments, producing a 16-byte key.
func DefaultArgon2Config(salt []byte) Argon2Config {
	return Argon2Config{
		Time:      3,     // 3 iterations
		Memory:    65536, // 64 MB
		Threads:   4,
		OutputLen: 16,
		Salt:      salt,
	}
}

// Argon2id derives a key from password with Argon2id.
func Argon2id(password []byte, config Argon2Config) []byte {
	return argon2.IDKey(
		password,
		config.Salt,
		config.Time,
		config.Memory,
		config.Threads,
		config.OutputLen,
	)
}
