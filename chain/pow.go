package chain

import "math/big"

// H256 is a bare 32-byte hash-sized value (work or nonce), with no
// endianness interpretation of its own.
type H256 [32]byte

// Seal is the proof-of-work witness attached to a block header (spec.md §3).
type Seal struct {
	Difficulty *big.Int // 256-bit unsigned
	Work       H256
	Nonce      H256
}

const sealEncodedLen = 32 + 32 + 32

// decodeSeal parses the fixed 96-byte wire layout: difficulty (32 bytes LE)
// || work (32 bytes) || nonce (32 bytes).
func decodeSeal(b []byte) (Seal, bool) {
	if len(b) != sealEncodedLen {
		return Seal{}, false
	}
	difficulty := leBytesToBig(b[0:32])
	var work, nonce H256
	copy(work[:], b[32:64])
	copy(nonce[:], b[64:96])
	return Seal{Difficulty: difficulty, Work: work, Nonce: nonce}, true
}

// EncodeSeal produces the fixed 96-byte wire layout for s. Exposed for
// miners constructing seal_bytes to submit to PowVerify.
func EncodeSeal(s Seal) []byte {
	out := make([]byte, 0, sealEncodedLen)
	out = append(out, bigToLEBytes(s.Difficulty, 32)...)
	out = append(out, s.Work[:]...)
	out = append(out, s.Nonce[:]...)
	return out
}

// compute is the pre-hash input structure spec.md §4.9/§4.10 calls
// Compute{difficulty, pre_hash, nonce}; its canonical encoding is what gets
// hashed to produce Work, rather than hashing pre_hash alone.
type compute struct {
	Difficulty *big.Int
	PreHash    H256
	Nonce      H256
}

func encodeCompute(c compute) []byte {
	out := make([]byte, 0, sealEncodedLen)
	out = append(out, bigToLEBytes(c.Difficulty, 32)...)
	out = append(out, c.PreHash[:]...)
	out = append(out, c.Nonce[:]...)
	return out
}

// PowVerify checks a block seal against a pre-hash and a claimed difficulty,
// per spec.md §4.9.
func PowVerify(preHash H256, sealBytes []byte, claimedDifficulty *big.Int, hasher Hasher) bool {
	seal, ok := decodeSeal(sealBytes)
	if !ok {
		return false
	}
	if seal.Difficulty.Cmp(claimedDifficulty) != 0 {
		return false
	}
	if !difficultyPredicate(seal.Work, claimedDifficulty) {
		return false
	}
	expectedWork := hasher.SHA3_256(encodeCompute(compute{
		Difficulty: seal.Difficulty,
		PreHash:    preHash,
		Nonce:      seal.Nonce,
	}))
	return H256(expectedWork) == seal.Work
}

// difficultyPredicate reports whether U256(work) * difficulty does not
// overflow 256 bits (spec.md §4.9 step 2, §4 Seal invariant).
func difficultyPredicate(work H256, difficulty *big.Int) bool {
	if difficulty == nil || difficulty.Sign() <= 0 {
		return false
	}
	product := new(big.Int).Mul(leBytesToBig(work[:]), difficulty)
	return product.BitLen() <= 256
}

func leBytesToBig(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

func bigToLEBytes(v *big.Int, width int) []byte {
	be := v.Bytes()
	out := make([]byte, width)
	for i := 0; i < len(be) && i < width; i++ {
		out[i] = be[len(be)-1-i]
	}
	return out
}
