package chain

import "math/big"

// Config bundles the design-time parameters spec.md §4.8 calls out, plus the
// issuance-schedule constants.
type Config struct {
	// TargetBlockTimeMs is the damping target, in milliseconds.
	TargetBlockTimeMs uint64
	// DampFactor smooths the measured time-delta toward the target; must be >= 2.
	DampFactor uint64
	// ClampFactor bounds the adjustment to within a factor of the target; must be >= 2.
	ClampFactor uint64
	// MinDifficulty floors CurrentDifficulty. Should equal DampFactor to avoid sticking.
	MinDifficulty *big.Int
	// MaxDifficulty caps CurrentDifficulty.
	MaxDifficulty *big.Int

	// InitialIssuance is the block-0 issuance value, before halving.
	InitialIssuance Value
	// HalvingIntervalBlocks is the number of blocks between successive halvings.
	HalvingIntervalBlocks uint32
}

// DefaultConfig returns the recommended constants from spec.md §4.7/§4.8.
func DefaultConfig() Config {
	return Config{
		TargetBlockTimeMs:      6_000,
		DampFactor:             3,
		ClampFactor:            2,
		MinDifficulty:          big.NewInt(3),
		MaxDifficulty:          maxU256(),
		InitialIssuance:        ValueFromUint64(50),
		HalvingIntervalBlocks:  210_000,
	}
}

func maxU256() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
}
