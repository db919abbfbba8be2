package crypto

import (
	"testing"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"

	"rubin.dev/utxo-core/chain"
)

func TestSr25519_VerifySR25519_OkAndFailureModes(t *testing.T) {
	priv, pub, err := schnorrkel.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	message := []byte("a signing preimage")
	sig, err := priv.Sign(schnorrkel.NewSigningContext(signingContextLabel, message))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	var chainPub chain.PubKey = pub.Encode()
	var chainSig chain.Signature = sig.Encode()

	v := Sr25519{}
	if !v.VerifySR25519(chainSig, message, chainPub) {
		t.Fatalf("VerifySR25519 rejected a correctly constructed signature")
	}

	if v.VerifySR25519(chainSig, []byte("a different message"), chainPub) {
		t.Fatalf("VerifySR25519 accepted a signature over a different message")
	}

	_, otherPub, err := schnorrkel.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	var otherChainPub chain.PubKey = otherPub.Encode()
	if v.VerifySR25519(chainSig, message, otherChainPub) {
		t.Fatalf("VerifySR25519 accepted a signature against the wrong public key")
	}
}

func TestSr25519_VerifySR25519_MalformedInputsRejected(t *testing.T) {
	v := Sr25519{}
	var zeroPub chain.PubKey
	var zeroSig chain.Signature
	if v.VerifySR25519(zeroSig, []byte("msg"), zeroPub) {
		t.Fatalf("VerifySR25519 accepted an all-zero signature and public key")
	}
}
