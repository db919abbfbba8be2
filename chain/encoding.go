package chain

import "encoding/binary"

// Canonical encoding: integers little-endian fixed-width, sequences
// length-prefixed with a CompactSize varint, structs encoded field-by-field
// in declaration order. This is a total function with no alternative
// representations; any change here is consensus-breaking (spec.md §4.1).

// appendU64le appends v as an 8-byte little-endian value to dst.
func appendU64le(dst []byte, v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

// appendCompactSize encodes n in Bitcoin-style CompactSize and appends to
// dst, as a sequence-length prefix.
func appendCompactSize(dst []byte, n uint64) []byte {
	switch {
	case n < 0xfd:
		return append(dst, byte(n))
	case n <= 0xffff:
		dst = append(dst, 0xfd)
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(n))
		return append(dst, buf[:]...)
	case n <= 0xffff_ffff:
		dst = append(dst, 0xfe)
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(n))
		return append(dst, buf[:]...)
	default:
		dst = append(dst, 0xff)
		return appendU64le(dst, n)
	}
}

// decodeCompactSize decodes a CompactSize-prefixed length from b, returning
// the value and the number of bytes consumed. Only used by the optional
// archive's own storage encoding (chain/archive.go), never on consensus
// wire data.
func decodeCompactSize(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, fatalf(FatalStorageInconsistency, "compact size: empty input")
	}
	switch b[0] {
	case 0xfd:
		if len(b) < 3 {
			return 0, 0, fatalf(FatalStorageInconsistency, "compact size: truncated u16")
		}
		return uint64(binary.LittleEndian.Uint16(b[1:3])), 3, nil
	case 0xfe:
		if len(b) < 5 {
			return 0, 0, fatalf(FatalStorageInconsistency, "compact size: truncated u32")
		}
		return uint64(binary.LittleEndian.Uint32(b[1:5])), 5, nil
	case 0xff:
		if len(b) < 9 {
			return 0, 0, fatalf(FatalStorageInconsistency, "compact size: truncated u64")
		}
		return binary.LittleEndian.Uint64(b[1:9]), 9, nil
	default:
		return uint64(b[0]), 1, nil
	}
}

// EncodeOutput is the canonical encoding of a single Output: value (16-byte
// LE) || pubkey (32 bytes).
func EncodeOutput(o Output) []byte {
	out := make([]byte, 0, 16+32)
	out = append(out, o.Value[:]...)
	out = append(out, o.PubKey[:]...)
	return out
}

// encodeInput is the canonical encoding of a single Input: outpoint (32
// bytes) || sigscript (64 bytes).
func encodeInput(in Input) []byte {
	out := make([]byte, 0, 32+64)
	out = append(out, in.Outpoint[:]...)
	out = append(out, in.Sigscript[:]...)
	return out
}

// EncodeTransaction is the canonical encoding of a Transaction: CompactSize
// input count || each input in order || CompactSize output count || each
// output in order.
func EncodeTransaction(tx Transaction) []byte {
	out := appendCompactSize(nil, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		out = append(out, encodeInput(in)...)
	}
	out = appendCompactSize(out, uint64(len(tx.Outputs)))
	for _, o := range tx.Outputs {
		out = append(out, EncodeOutput(o)...)
	}
	return out
}

// SigningPreimage is the canonical encoding of tx with every input's
// sigscript field replaced by the all-zero 64-byte value (spec.md §4.2).
// Every input signs this same preimage; verification binds each signature
// to its own input's referenced output's pubkey.
func SigningPreimage(tx Transaction) []byte {
	zeroed := Transaction{
		Inputs:  make([]Input, len(tx.Inputs)),
		Outputs: tx.Outputs,
	}
	for i, in := range tx.Inputs {
		zeroed.Inputs[i] = Input{Outpoint: in.Outpoint}
	}
	return EncodeTransaction(zeroed)
}

// DeriveOutputId computes OutputId(tx, i) = BLAKE2b-256(canonical_encoding(tx)
// || canonical_encoding(i as u64)) per spec.md §4.3.
func DeriveOutputId(hasher Hasher, tx Transaction, index uint64) OutputId {
	preimage := appendU64le(EncodeTransaction(tx), index)
	return OutputId(hasher.Blake2b256(preimage))
}

// DeriveRewardOutputId computes the block-author reward output's id:
// BLAKE2b-256(canonical_encoding(output) || canonical_encoding(block_number
// as u64)), per spec.md §4.6 step 4.
func DeriveRewardOutputId(hasher Hasher, out Output, blockNumber uint32) OutputId {
	preimage := appendU64le(EncodeOutput(out), uint64(blockNumber))
	return OutputId(hasher.Blake2b256(preimage))
}
