package chain

// Verdict is the outcome of validating a transaction against a UtxoSet.
// On complete success Requires is empty and Priority equals the fee; on a
// "soft" failure due to missing inputs, Requires is non-empty, Priority is
// zero, and the mempool may retain the transaction as pending (spec.md §4.4).
type Verdict struct {
	Requires   []OutputId
	Provides   []OutputId
	Priority   uint64
	Longevity  uint64
}

// longevityMax is the "maximum" longevity spec.md §4.4 calls for: a
// mempool-tolerant transaction is never evicted purely on age by this core.
const longevityMax = ^uint64(0)

// ValidateForPool runs the full ordered-check algorithm of spec.md §4.4
// against utxo. It never returns an error for a missing input: that is
// reported as a non-empty Verdict.Requires so the mempool can re-validate
// once the referenced transaction lands. All other rule violations are
// returned as a *ValidationError.
func ValidateForPool(tx Transaction, utxo *UtxoSet, verifier SignatureVerifier, hasher Hasher) (Verdict, error) {
	if len(tx.Inputs) == 0 {
		return Verdict{}, rejectf(RejectNoInputs, "transaction has no inputs")
	}
	if len(tx.Outputs) == 0 {
		return Verdict{}, rejectf(RejectNoOutputs, "transaction has no outputs")
	}
	if err := checkDistinctInputs(tx.Inputs); err != nil {
		return Verdict{}, err
	}
	if err := checkDistinctOutputs(tx.Outputs); err != nil {
		return Verdict{}, err
	}

	preimage := SigningPreimage(tx)

	var missing []OutputId
	var totalInput Value
	for _, in := range tx.Inputs {
		referenced, ok, err := utxo.Get(in.Outpoint)
		if err != nil {
			return Verdict{}, err
		}
		if !ok {
			missing = append(missing, in.Outpoint)
			continue
		}
		if !verifier.VerifySR25519(in.Sigscript, preimage, referenced.PubKey) {
			return Verdict{}, rejectf(RejectBadSignature, "sigscript does not verify")
		}
		sum, ok := CheckedAdd(totalInput, referenced.Value)
		if !ok {
			return Verdict{}, rejectf(RejectInputOverflow, "sum of input values overflows")
		}
		totalInput = sum
	}

	provides := make([]OutputId, len(tx.Outputs))
	var totalOutput Value
	for i, out := range tx.Outputs {
		if out.Value.IsZero() {
			return Verdict{}, rejectf(RejectZeroOutput, "output value must be > 0")
		}
		newID := DeriveOutputId(hasher, tx, uint64(i))
		exists, err := utxo.Contains(newID)
		if err != nil {
			return Verdict{}, err
		}
		if exists {
			return Verdict{}, rejectf(RejectOutputCollision, "output id already present in utxo set")
		}
		sum, ok := CheckedAdd(totalOutput, out.Value)
		if !ok {
			return Verdict{}, rejectf(RejectOutputOverflow, "sum of output values overflows")
		}
		totalOutput = sum
		provides[i] = newID
	}

	if len(missing) > 0 {
		// Not enough information to check the value equation; the mempool
		// may hold this transaction pending the missing inputs (spec.md
		// §4.4 step 8).
		return Verdict{
			Requires:  missing,
			Provides:  provides,
			Priority:  0,
			Longevity: longevityMax,
		}, nil
	}

	if totalInput.Cmp(totalOutput) < 0 {
		return Verdict{}, rejectf(RejectOverSpend, "total output exceeds total input")
	}
	fee, ok := CheckedSub(totalInput, totalOutput)
	if !ok {
		// Unreachable given the Cmp check above, but keep the arithmetic checked.
		return Verdict{}, rejectf(RejectOverSpend, "total output exceeds total input")
	}

	return Verdict{
		Requires:  nil,
		Provides:  provides,
		Priority:  fee.SaturatingUint64(),
		Longevity: longevityMax,
	}, nil
}

func checkDistinctInputs(inputs []Input) error {
	seen := make(map[OutputId]struct{}, len(inputs))
	for _, in := range inputs {
		if _, ok := seen[in.Outpoint]; ok {
			return rejectf(RejectDuplicateInput, "two inputs reference the same outpoint")
		}
		seen[in.Outpoint] = struct{}{}
	}
	return nil
}

func checkDistinctOutputs(outputs []Output) error {
	seen := make(map[Output]struct{}, len(outputs))
	for _, o := range outputs {
		if _, ok := seen[o]; ok {
			return rejectf(RejectDuplicateOutput, "two outputs are byte-identical")
		}
		seen[o] = struct{}{}
	}
	return nil
}
