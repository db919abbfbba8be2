// Package crypto supplies the concrete implementations of the chain
// package's host-facing crypto capability interfaces (chain.Hasher,
// chain.SignatureVerifier): narrow interfaces, no inheritance hierarchy,
// swappable backends.
package crypto

import "rubin.dev/utxo-core/chain"

// Provider bundles the hashing and signature-verification capabilities the
// chain package needs from a host. DefaultProvider is the production
// implementation; tests may substitute a fake satisfying the same
// interface.
type Provider interface {
	chain.Hasher
	chain.SignatureVerifier
}
