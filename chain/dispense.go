package chain

// DispenseReward runs the block-author reward dispenser of spec.md §4.6.
// It is called exactly once per block at finalization, after all
// transactions in the block have been applied, and before the difficulty
// controller retargets (spec.md §4.10: finalize runs dispense, then
// retarget — the author-reward output must be part of the block's
// resulting UTXO set before the block's declared state root is computed).
func DispenseReward(blockNumber uint32, author AuthorSource, reward *RewardTotal, utxo *UtxoSet, issuance IssuanceSchedule, hasher Hasher) (Event, error) {
	pub, hasAuthor := author.BlockAuthor()
	if !hasAuthor {
		if _, err := reward.Drain(); err != nil {
			return nil, err
		}
		return RewardsWasted{Reason: "no block author"}, nil
	}

	accumulated, err := reward.Drain()
	if err != nil {
		return nil, err
	}
	minted := issuance.Issuance(blockNumber)
	total, ok := CheckedAdd(accumulated, minted)
	if !ok {
		return nil, fatalf(FatalRewardOverflow, "accumulated fees plus issuance overflow")
	}

	out := Output{Value: total, PubKey: pub}
	id := DeriveRewardOutputId(hasher, out, blockNumber)

	exists, err := utxo.Contains(id)
	if err != nil {
		return nil, err
	}
	if exists {
		// Vanishingly unlikely BLAKE2b-256 collision; spec.md §4.6 step 4
		// treats this as wasted rather than fatal.
		return RewardsWasted{Reason: "reward output id collision"}, nil
	}

	if err := utxo.Insert(id, out); err != nil {
		return nil, err
	}
	return RewardsIssued{Reward: total, OutputID: id}, nil
}
