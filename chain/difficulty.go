package chain

import "math/big"

const windowSize = 60

var (
	diffCurrentKey = []byte("diff/current")
	diffWindowKey  = []byte("diff/window")
)

const windowSlotEncodedLen = 1 + 8 + 32 // present flag || timestamp LE || difficulty LE

// WindowSlot is one entry of PastWindow: a (timestamp, difficulty) pair, or
// the "absent" sentinel when Present is false (spec.md §3 PastWindow).
type WindowSlot struct {
	Present    bool
	Timestamp  uint64
	Difficulty *big.Int
}

// DifficultyController owns CurrentDifficulty and the 60-slot PastWindow
// (spec.md §4.8), persisted under the diff/current and diff/window keys
// (spec.md §6 "Persisted layout") so retarget history survives a host
// restart.
type DifficultyController struct {
	Window            [windowSize]WindowSlot
	Current           *big.Int
	initialDifficulty *big.Int
	cfg               Config
	storage           Storage
}

// NewDifficultyController seeds CurrentDifficulty = initialDifficulty, fills
// every window slot absent, and writes that initial state to storage
// (spec.md §6 "Genesis input").
func NewDifficultyController(storage Storage, cfg Config, initialDifficulty *big.Int) (*DifficultyController, error) {
	d := &DifficultyController{
		Current:           new(big.Int).Set(initialDifficulty),
		initialDifficulty: new(big.Int).Set(initialDifficulty),
		cfg:               cfg,
		storage:           storage,
	}
	if err := d.persist(); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadDifficultyController reconstructs a DifficultyController from
// previously persisted diff/current and diff/window state, ok is false if
// no state has been persisted yet (the host should run InitGenesis/
// NewDifficultyController instead).
func LoadDifficultyController(storage Storage, cfg Config, initialDifficulty *big.Int) (ctl *DifficultyController, ok bool, err error) {
	currentRaw, present, err := storage.Get(diffCurrentKey)
	if err != nil {
		return nil, false, err
	}
	if !present {
		return nil, false, nil
	}
	windowRaw, present, err := storage.Get(diffWindowKey)
	if err != nil {
		return nil, false, err
	}
	if !present || len(windowRaw) != windowSize*windowSlotEncodedLen {
		return nil, false, fatalf(FatalStorageInconsistency, "diff/window has wrong length")
	}

	d := &DifficultyController{
		Current:           leBytesToBig(currentRaw),
		initialDifficulty: new(big.Int).Set(initialDifficulty),
		cfg:               cfg,
		storage:           storage,
	}
	for i := 0; i < windowSize; i++ {
		slot := windowRaw[i*windowSlotEncodedLen : (i+1)*windowSlotEncodedLen]
		d.Window[i] = WindowSlot{
			Present:    slot[0] != 0,
			Timestamp:  leU64(slot[1:9]),
			Difficulty: leBytesToBig(slot[9:41]),
		}
	}
	return d, true, nil
}

// persist writes Current and Window to storage under diff/current and
// diff/window.
func (d *DifficultyController) persist() error {
	if d.storage == nil {
		return nil
	}
	if err := d.storage.Put(diffCurrentKey, bigToLEBytes(d.Current, 32)); err != nil {
		return err
	}
	window := make([]byte, 0, windowSize*windowSlotEncodedLen)
	for _, slot := range d.Window {
		if slot.Present {
			window = append(window, 1)
		} else {
			window = append(window, 0)
		}
		window = appendU64le(window, slot.Timestamp)
		diff := slot.Difficulty
		if diff == nil {
			diff = new(big.Int)
		}
		window = append(window, bigToLEBytes(diff, 32)...)
	}
	return d.storage.Put(diffWindowKey, window)
}

// Retarget advances the window by one slot, recomputes CurrentDifficulty
// from the resulting history following spec.md §4.8 steps 1–7 exactly, and
// persists the new state.
func (d *DifficultyController) Retarget(now uint64) error {
	// Step 1: shift left, append (now, CurrentDifficulty) as the newest slot.
	for i := 0; i < windowSize-1; i++ {
		d.Window[i] = d.Window[i+1]
	}
	d.Window[windowSize-1] = WindowSlot{Present: true, Timestamp: now, Difficulty: new(big.Int).Set(d.Current)}

	// Step 2: ts_delta over consecutive pairs, absent contributes TargetBlockTime,
	// underflow saturates to zero, and a zero total becomes one.
	targetBlockTime := new(big.Int).SetUint64(d.cfg.TargetBlockTimeMs)
	tsDelta := new(big.Int)
	for i := 1; i < windowSize; i++ {
		prev, cur := d.Window[i-1], d.Window[i]
		switch {
		case !prev.Present || !cur.Present:
			tsDelta.Add(tsDelta, targetBlockTime)
		case cur.Timestamp > prev.Timestamp:
			tsDelta.Add(tsDelta, new(big.Int).SetUint64(cur.Timestamp-prev.Timestamp))
		default:
			// underflow, contributes zero
		}
	}
	if tsDelta.Sign() == 0 {
		tsDelta.SetInt64(1)
	}

	// Step 3: diff_sum over all slots, absent contributes InitialDifficulty,
	// floored at MinDifficulty.
	diffSum := new(big.Int)
	for i := 0; i < windowSize; i++ {
		if d.Window[i].Present {
			diffSum.Add(diffSum, d.Window[i].Difficulty)
		} else {
			diffSum.Add(diffSum, d.initialDifficulty)
		}
	}
	if diffSum.Cmp(d.cfg.MinDifficulty) < 0 {
		diffSum.Set(d.cfg.MinDifficulty)
	}

	// Step 4.
	windowTarget := new(big.Int).Mul(big.NewInt(windowSize), targetBlockTime)

	// Step 5: damped = (ts_delta + (DampFactor-1)*window_target) / DampFactor.
	dampFactor := new(big.Int).SetUint64(d.cfg.DampFactor)
	dampFactorMinus1 := new(big.Int).SetUint64(d.cfg.DampFactor - 1)
	damped := new(big.Int).Mul(dampFactorMinus1, windowTarget)
	damped.Add(damped, tsDelta)
	damped.Div(damped, dampFactor)

	// Step 6: clamped = max(window_target/ClampFactor, min(damped, window_target*ClampFactor)).
	clampFactor := new(big.Int).SetUint64(d.cfg.ClampFactor)
	lower := new(big.Int).Div(windowTarget, clampFactor)
	upper := new(big.Int).Mul(windowTarget, clampFactor)
	clamped := damped
	if clamped.Cmp(upper) > 0 {
		clamped = upper
	}
	if clamped.Cmp(lower) < 0 {
		clamped = lower
	}

	// Step 7: CurrentDifficulty = clamp(diff_sum * TargetBlockTime / clamped, Min, Max).
	next := new(big.Int).Mul(diffSum, targetBlockTime)
	next.Div(next, clamped)
	if next.Cmp(d.cfg.MinDifficulty) < 0 {
		next = new(big.Int).Set(d.cfg.MinDifficulty)
	}
	if next.Cmp(d.cfg.MaxDifficulty) > 0 {
		next = new(big.Int).Set(d.cfg.MaxDifficulty)
	}
	d.Current = next

	return d.persist()
}
