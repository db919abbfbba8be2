package crypto

// DefaultProvider is the production crypto.Provider: real BLAKE2b-256/
// SHA3-256 hashing and real SR25519 signature verification, bundled behind a
// single zero-value struct so a host can pass one value to satisfy both
// chain.Hasher and chain.SignatureVerifier.
type DefaultProvider struct {
	Hashers
	Sr25519
}

var _ Provider = DefaultProvider{}
