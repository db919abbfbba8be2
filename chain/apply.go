package chain

// Spend runs the full validate-then-apply pipeline of spec.md §4.4–§4.5: it
// revalidates tx against utxo, and if (and only if) the verdict is fully
// satisfied (no missing inputs), mutates utxo and reward in a single
// logical step and returns a TransactionApplied event. If archive is
// non-nil, a trace record is also written (spec.md §4.5 "Optional
// archive").
//
// A non-empty Verdict.Requires at this stage is reported as RejectMissingInput:
// block execution, unlike the mempool, must have every input present.
func Spend(tx Transaction, utxo *UtxoSet, reward *RewardTotal, verifier SignatureVerifier, hasher Hasher, archive *Archive) (Event, error) {
	verdict, err := ValidateForPool(tx, utxo, verifier, hasher)
	if err != nil {
		return nil, err
	}
	if len(verdict.Requires) > 0 {
		return nil, rejectf(RejectMissingInput, "referenced output not found at application time")
	}

	txHash := hasher.Blake2b256(EncodeTransaction(tx))

	var totalIn Value
	for _, in := range tx.Inputs {
		referenced, ok, err := utxo.Get(in.Outpoint)
		if err != nil {
			return nil, err
		}
		if !ok {
			// The validator's view could theoretically be stale between
			// phases; in practice the host serializes phases so this
			// indicates a bug, not an invalid transaction (spec.md §4.5
			// step 2).
			return nil, fatalf(FatalStorageInconsistency, "input vanished between validate and apply")
		}
		sum, ok := CheckedAdd(totalIn, referenced.Value)
		if !ok {
			return nil, fatalf(FatalStorageInconsistency, "input sum overflow re-validating at apply time")
		}
		totalIn = sum
		if err := utxo.Remove(in.Outpoint); err != nil {
			return nil, err
		}
	}

	var totalOut Value
	for i, out := range tx.Outputs {
		sum, ok := CheckedAdd(totalOut, out.Value)
		if !ok {
			return nil, fatalf(FatalStorageInconsistency, "output sum overflow re-validating at apply time")
		}
		totalOut = sum
		id := verdict.Provides[i]
		if err := utxo.Insert(id, out); err != nil {
			return nil, err
		}
	}

	fee, ok := CheckedSub(totalIn, totalOut)
	if !ok {
		return nil, fatalf(FatalStorageInconsistency, "fee computation underflow at apply time")
	}
	if err := reward.Add(fee); err != nil {
		return nil, err
	}

	if archive != nil {
		if err := archive.RecordTransaction(txHash, tx, verdict.Provides); err != nil {
			return nil, err
		}
	}

	return TransactionApplied{TxHash: txHash, Fee: fee}, nil
}
