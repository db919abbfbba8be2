package chain

import "encoding/hex"

// ArchiveTxId identifies an archived transaction record by its canonical
// hash. It is informational only; consensus does not depend on it (spec.md
// §4.5 "Optional archive").
type ArchiveTxId [32]byte

// SpentRef names the archived input a given archived output was consumed
// by, for trace/explorer use.
type SpentRef struct {
	TxID          ArchiveTxId
	InputPosition int
}

// ArchivedTransaction is the informational record kept per applied
// transaction: which outputs it spent and which ids it produced.
type ArchivedTransaction struct {
	SpentOutputs  []OutputId
	ProducedIDs   []OutputId
}

// Archive keeps the two optional tracing maps spec.md §4.5 describes:
// UtxoArchive (OutputId -> (ArchiveTxId, input_position)) and
// TransactionArchive (ArchiveTxId -> {spent_outputs, produced_output_ids}).
// Pure tracing only; spec.md §1 explicitly excludes reorg-safe archival.
type Archive struct {
	storage Storage
}

// NewArchive wraps a Storage handle as an Archive. Passing a nil *Archive to
// Spend disables archival entirely; it is never required for
// consensus-correct operation.
func NewArchive(storage Storage) *Archive {
	return &Archive{storage: storage}
}

const (
	archiveUtxoPrefix = "archive/utxo/"
	archiveTxPrefix   = "archive/tx/"
)

func archiveUtxoKey(id OutputId) []byte {
	out := append([]byte(nil), archiveUtxoPrefix...)
	return hex.AppendEncode(out, id[:])
}

func archiveTxKey(id ArchiveTxId) []byte {
	out := append([]byte(nil), archiveTxPrefix...)
	return hex.AppendEncode(out, id[:])
}

// RecordTransaction archives the inputs spent and outputs produced by an
// applied transaction identified by txHash.
func (a *Archive) RecordTransaction(txHash [32]byte, tx Transaction, produced []OutputId) error {
	txID := ArchiveTxId(txHash)

	spent := make([]OutputId, len(tx.Inputs))
	for i, in := range tx.Inputs {
		spent[i] = in.Outpoint
		if err := a.storage.Put(archiveUtxoKey(in.Outpoint), encodeSpentRef(SpentRef{TxID: txID, InputPosition: i})); err != nil {
			return err
		}
	}

	record := ArchivedTransaction{SpentOutputs: spent, ProducedIDs: produced}
	return a.storage.Put(archiveTxKey(txID), encodeArchivedTransaction(record))
}

// LookupSpend returns which archived transaction (and at which input
// position) spent id, if it has been archived.
func (a *Archive) LookupSpend(id OutputId) (SpentRef, bool, error) {
	raw, ok, err := a.storage.Get(archiveUtxoKey(id))
	if err != nil || !ok {
		return SpentRef{}, false, err
	}
	ref, err := decodeSpentRef(raw)
	return ref, true, err
}

// LookupTransaction returns the archived record for txID, if present.
func (a *Archive) LookupTransaction(txID ArchiveTxId) (ArchivedTransaction, bool, error) {
	raw, ok, err := a.storage.Get(archiveTxKey(txID))
	if err != nil || !ok {
		return ArchivedTransaction{}, false, err
	}
	rec, err := decodeArchivedTransaction(raw)
	return rec, true, err
}

func encodeSpentRef(r SpentRef) []byte {
	out := append([]byte(nil), r.TxID[:]...)
	return appendU64le(out, uint64(r.InputPosition))
}

func decodeSpentRef(b []byte) (SpentRef, error) {
	if len(b) != 40 {
		return SpentRef{}, fatalf(FatalStorageInconsistency, "archived spend ref has wrong length")
	}
	var ref SpentRef
	copy(ref.TxID[:], b[:32])
	ref.InputPosition = int(leU64(b[32:40]))
	return ref, nil
}

func encodeArchivedTransaction(rec ArchivedTransaction) []byte {
	out := appendCompactSize(nil, uint64(len(rec.SpentOutputs)))
	for _, id := range rec.SpentOutputs {
		out = append(out, id[:]...)
	}
	out = appendCompactSize(out, uint64(len(rec.ProducedIDs)))
	for _, id := range rec.ProducedIDs {
		out = append(out, id[:]...)
	}
	return out
}

func decodeArchivedTransaction(b []byte) (ArchivedTransaction, error) {
	n, used, err := decodeCompactSize(b)
	if err != nil {
		return ArchivedTransaction{}, err
	}
	b = b[used:]
	spent := make([]OutputId, n)
	for i := range spent {
		if len(b) < 32 {
			return ArchivedTransaction{}, fatalf(FatalStorageInconsistency, "archived transaction truncated")
		}
		copy(spent[i][:], b[:32])
		b = b[32:]
	}
	m, used, err := decodeCompactSize(b)
	if err != nil {
		return ArchivedTransaction{}, err
	}
	b = b[used:]
	produced := make([]OutputId, m)
	for i := range produced {
		if len(b) < 32 {
			return ArchivedTransaction{}, fatalf(FatalStorageInconsistency, "archived transaction truncated")
		}
		copy(produced[i][:], b[:32])
		b = b[32:]
	}
	return ArchivedTransaction{SpentOutputs: spent, ProducedIDs: produced}, nil
}

func leU64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
