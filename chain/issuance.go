package chain

// HalvingIssuance is the default issuance schedule (spec.md §4.7):
// issuance(h) = Initial >> (h / HalvingInterval), clamped to zero once the
// shift count reaches 64.
type HalvingIssuance struct {
	Initial        Value
	HalvingInterval uint32
}

// NewHalvingIssuance constructs the recommended default schedule.
func NewHalvingIssuance(cfg Config) HalvingIssuance {
	return HalvingIssuance{Initial: cfg.InitialIssuance, HalvingInterval: cfg.HalvingIntervalBlocks}
}

// Issuance implements IssuanceSchedule.
func (s HalvingIssuance) Issuance(blockNumber uint32) Value {
	if s.HalvingInterval == 0 {
		return ZeroValue
	}
	shifts := uint64(blockNumber) / uint64(s.HalvingInterval)
	if shifts >= 64 {
		return ZeroValue
	}
	b := s.Initial.Big()
	b.Rsh(b, uint(shifts))
	v, ok := valueFromBig(b)
	if !ok {
		// Initial was already in range and a right shift cannot grow it.
		return ZeroValue
	}
	return v
}

// ZeroIssuance is the policy plug-in substituted when no new coins should be
// minted per block (spec.md §4.7: "implementations MAY substitute a
// zero-issuance schedule").
type ZeroIssuance struct{}

// Issuance implements IssuanceSchedule.
func (ZeroIssuance) Issuance(uint32) Value { return ZeroValue }
