package crypto

import (
	schnorrkel "github.com/ChainSafe/go-schnorrkel"

	"rubin.dev/utxo-core/chain"
)

// signingContextLabel is the Substrate convention for SR25519 message
// signing: a fixed domain-separation label, not a secret.
var signingContextLabel = []byte("substrate")

// Sr25519 implements chain.SignatureVerifier using the real SR25519/
// Schnorrkel primitive (github.com/ChainSafe/go-schnorrkel), as required by
// spec.md §3, which fixes the signature primitive to SR25519.
type Sr25519 struct{}

// VerifySR25519 implements chain.SignatureVerifier.
func (Sr25519) VerifySR25519(sig chain.Signature, message []byte, pub chain.PubKey) bool {
	var pubBytes [32]byte = pub
	signerPub := &schnorrkel.PublicKey{}
	if err := signerPub.Decode(pubBytes); err != nil {
		return false
	}

	var sigBytes [64]byte = sig
	signature := &schnorrkel.Signature{}
	if err := signature.Decode(sigBytes); err != nil {
		return false
	}

	transcript := schnorrkel.NewSigningContext(signingContextLabel, message)
	ok, err := signerPub.Verify(signature, transcript)
	if err != nil {
		return false
	}
	return ok
}
