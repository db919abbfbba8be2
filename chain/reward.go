package chain

var rewardTotalKey = []byte("reward_total")

// RewardTotal accumulates per-block fees until block finalization (spec.md
// §3, §4.5 step 1, §4.6 step 2). It is owned by the runtime module and
// persisted at a single fixed key.
type RewardTotal struct {
	storage Storage
}

// NewRewardTotal wraps a Storage handle as a RewardTotal cell.
func NewRewardTotal(storage Storage) *RewardTotal {
	return &RewardTotal{storage: storage}
}

// Get returns the current accumulated value, zero if never written.
func (r *RewardTotal) Get() (Value, error) {
	raw, ok, err := r.storage.Get(rewardTotalKey)
	if err != nil {
		return ZeroValue, err
	}
	if !ok {
		return ZeroValue, nil
	}
	if len(raw) != 16 {
		return ZeroValue, fatalf(FatalStorageInconsistency, "reward_total has wrong length")
	}
	var v Value
	copy(v[:], raw)
	return v, nil
}

func (r *RewardTotal) set(v Value) error {
	return r.storage.Put(rewardTotalKey, v[:])
}

// Add accumulates fee into the total with checked addition, returning
// FatalRewardOverflow if the result would exceed 128 bits (spec.md §4.5
// step 1).
func (r *RewardTotal) Add(fee Value) error {
	cur, err := r.Get()
	if err != nil {
		return err
	}
	next, ok := CheckedAdd(cur, fee)
	if !ok {
		return fatalf(FatalRewardOverflow, "reward_total overflow")
	}
	return r.set(next)
}

// Drain reads the current total and resets the cell to zero, returning the
// value that was drained (spec.md §4.6 step 2).
func (r *RewardTotal) Drain() (Value, error) {
	cur, err := r.Get()
	if err != nil {
		return ZeroValue, err
	}
	if err := r.set(ZeroValue); err != nil {
		return ZeroValue, err
	}
	return cur, nil
}
