package chain

import "math/big"

// GenesisInput is what the host supplies at genesis (spec.md §6): an
// ordered initial UTXO set and a starting difficulty.
type GenesisInput struct {
	Outputs           []Output
	InitialDifficulty *big.Int
}

// InitGenesis seeds utxo from input.Outputs (each addressed the same way a
// transaction's outputs would be, using input's own encoding as its
// "transaction"), and returns a DifficultyController seeded and persisted to
// storage per spec.md §6.
func InitGenesis(input GenesisInput, utxo *UtxoSet, storage Storage, hasher Hasher, cfg Config) (*DifficultyController, error) {
	genesisTx := Transaction{Outputs: input.Outputs}
	for i, out := range input.Outputs {
		id := DeriveOutputId(hasher, genesisTx, uint64(i))
		exists, err := utxo.Contains(id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fatalf(FatalStorageInconsistency, "genesis output id collision")
		}
		if err := utxo.Insert(id, out); err != nil {
			return nil, err
		}
	}
	return NewDifficultyController(storage, cfg, input.InitialDifficulty)
}
