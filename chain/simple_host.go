package chain

// NoAuthor is the default AuthorSource: no block author claimed the block
// (spec.md §9: "default implementations supply... 'no author'").
type NoAuthor struct{}

// BlockAuthor implements AuthorSource.
func (NoAuthor) BlockAuthor() (PubKey, bool) { return PubKey{}, false }

// StaticAuthor is an AuthorSource that always reports the same pubkey,
// useful for tests and the harness.
type StaticAuthor struct {
	PubKey PubKey
}

// BlockAuthor implements AuthorSource.
func (a StaticAuthor) BlockAuthor() (PubKey, bool) { return a.PubKey, true }

// FixedClock is a BlockClock returning constant values, useful for tests and
// the harness. The host runtime's real block-number/timestamp oracle is out
// of this core's scope (spec.md §1).
type FixedClock struct {
	Number    uint32
	Timestamp uint64
}

// BlockNumber implements BlockClock.
func (c FixedClock) BlockNumber() uint32 { return c.Number }

// BlockTimestamp implements BlockClock.
func (c FixedClock) BlockTimestamp() uint64 { return c.Timestamp }
