package chain

// The core never talks to a concrete database, signature library, or clock
// directly; it is threaded an explicitly-owned handle to each, following a
// capability-record pattern (see crypto.Provider): small interfaces, no
// inheritance hierarchy, default implementations supplied by the host.

// Storage is the host's synchronous key-value interface (spec.md §6).
// Implementations MUST make Put/Remove visible to a subsequent Get/Contains
// within the same host-driven batch; the core performs no buffering of its
// own.
type Storage interface {
	Get(key []byte) ([]byte, bool, error)
	Put(key []byte, value []byte) error
	Remove(key []byte) error
	Contains(key []byte) (bool, error)
}

// SignatureVerifier wraps the host's SR25519 primitive.
type SignatureVerifier interface {
	VerifySR25519(sig Signature, message []byte, pub PubKey) bool
}

// Hasher wraps the host's two consensus-critical hash functions: BLAKE2b-256
// for content addressing and SHA3-256 for proof-of-work.
type Hasher interface {
	Blake2b256(data []byte) [32]byte
	SHA3_256(data []byte) [32]byte
}

// BlockClock is the host's block-number / block-timestamp oracle.
type BlockClock interface {
	BlockNumber() uint32
	BlockTimestamp() uint64 // milliseconds since epoch
}

// AuthorSource supplies the current block's author inherent, if any.
type AuthorSource interface {
	BlockAuthor() (PubKey, bool)
}

// IssuanceSchedule is a policy plug-in: block-number to newly-minted Value.
// See HalvingIssuance (default) and ZeroIssuance.
type IssuanceSchedule interface {
	Issuance(blockNumber uint32) Value
}
