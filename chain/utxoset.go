package chain

import "encoding/hex"

const utxoKeyPrefix = "utxo/"

// UtxoSet is the authoritative unspent-output state: a typed Get/Insert/
// Remove view over a Storage handle keyed utxo/{OutputId}.
type UtxoSet struct {
	storage Storage
}

// NewUtxoSet wraps a Storage handle as a UtxoSet.
func NewUtxoSet(storage Storage) *UtxoSet {
	return &UtxoSet{storage: storage}
}

func utxoKey(id OutputId) []byte {
	out := make([]byte, 0, len(utxoKeyPrefix)+hex.EncodedLen(len(id)))
	out = append(out, utxoKeyPrefix...)
	out = hex.AppendEncode(out, id[:])
	return out
}

// Get returns the output referenced by id, or ok=false if it is not in the
// set (either never produced, or already spent).
func (s *UtxoSet) Get(id OutputId) (out Output, ok bool, err error) {
	raw, found, err := s.storage.Get(utxoKey(id))
	if err != nil || !found {
		return Output{}, false, err
	}
	out, err = decodeOutput(raw)
	if err != nil {
		return Output{}, false, err
	}
	return out, true, nil
}

// Contains reports whether id is currently unspent.
func (s *UtxoSet) Contains(id OutputId) (bool, error) {
	return s.storage.Contains(utxoKey(id))
}

// Insert adds a new unspent output under id. Callers must ensure id does not
// already exist (OutputCollision is a validation-time check, not enforced
// here).
func (s *UtxoSet) Insert(id OutputId, out Output) error {
	return s.storage.Put(utxoKey(id), EncodeOutput(out))
}

// Remove deletes id from the set, marking the referenced output spent.
func (s *UtxoSet) Remove(id OutputId) error {
	return s.storage.Remove(utxoKey(id))
}

func decodeOutput(raw []byte) (Output, error) {
	if len(raw) != 16+32 {
		return Output{}, fatalf(FatalStorageInconsistency, "utxo entry has wrong length")
	}
	var out Output
	copy(out.Value[:], raw[:16])
	copy(out.PubKey[:], raw[16:48])
	return out, nil
}
