package crypto

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hashers implements chain.Hasher with the host's two consensus-critical
// hash functions: BLAKE2b-256 for content addressing (OutputId derivation)
// and SHA3-256 for proof-of-work.
type Hashers struct{}

// Blake2b256 returns the BLAKE2b-256 digest of data.
func (Hashers) Blake2b256(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// SHA3_256 returns the SHA3-256 digest of data.
func (Hashers) SHA3_256(data []byte) [32]byte {
	h := sha3.New256()
	_, _ = h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
