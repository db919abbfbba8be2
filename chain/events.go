package chain

// Event is the closed set of observations the core reports back to its
// host. There is no runtime event bus here; the host may log, forward, or
// discard these values as it sees fit. Supplements spec.md, which names
// RewardsWasted/RewardsIssued/TransactionApplied in prose (§4.5, §4.6) but
// never gives them a type.
type Event interface {
	isEvent()
}

// TransactionApplied is emitted by Spend on success, carrying the applied
// transaction's canonical hash for observers (spec.md §4.5 step 4).
type TransactionApplied struct {
	TxHash [32]byte
	Fee    Value
}

func (TransactionApplied) isEvent() {}

// RewardsWasted is emitted by the dispenser when there is no block author,
// or when the reward output's id collides with an existing entry (spec.md
// §4.6 steps 1 and 4).
type RewardsWasted struct {
	Reason string
}

func (RewardsWasted) isEvent() {}

// RewardsIssued is emitted by the dispenser on a successful reward mint
// (spec.md §4.6 step 5).
type RewardsIssued struct {
	Reward   Value
	OutputID OutputId
}

func (RewardsIssued) isEvent() {}
