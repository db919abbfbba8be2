package chain

import "testing"

func TestSpend_OkUpdatesUtxoSetAndReward(t *testing.T) {
	utxo := newTestUtxoSet()
	reward := NewRewardTotal(&memStorage{data: make(map[string][]byte)})
	pub := PubKey{7}
	outID := OutputId{1}
	if err := utxo.Insert(outID, Output{Value: ValueFromUint64(10), PubKey: pub}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	tx := Transaction{
		Inputs:  []Input{{Outpoint: outID, Sigscript: sigFor(pub)}},
		Outputs: []Output{{Value: ValueFromUint64(7), PubKey: PubKey{2}}},
	}

	event, err := Spend(tx, utxo, reward, stubVerifier{}, fakeHasher{}, nil)
	if err != nil {
		t.Fatalf("Spend: %v", err)
	}
	applied, ok := event.(TransactionApplied)
	if !ok {
		t.Fatalf("event type = %T, want TransactionApplied", event)
	}
	if applied.Fee.Big().Uint64() != 3 {
		t.Fatalf("Fee = %s, want 3", applied.Fee.Big())
	}

	if spent, err := utxo.Contains(outID); err != nil || spent {
		t.Fatalf("spent input still present: spent=%v err=%v", spent, err)
	}
	newID := DeriveOutputId(fakeHasher{}, tx, 0)
	if present, err := utxo.Contains(newID); err != nil || !present {
		t.Fatalf("new output missing: present=%v err=%v", present, err)
	}
	total, err := reward.Get()
	if err != nil {
		t.Fatalf("reward.Get: %v", err)
	}
	if total.Big().Uint64() != 3 {
		t.Fatalf("reward total = %s, want 3", total.Big())
	}
}

func TestSpend_MissingInputRejected(t *testing.T) {
	utxo := newTestUtxoSet()
	reward := NewRewardTotal(&memStorage{data: make(map[string][]byte)})
	tx := Transaction{
		Inputs:  []Input{{Outpoint: OutputId{9}}},
		Outputs: []Output{{Value: ValueFromUint64(1), PubKey: PubKey{1}}},
	}
	_, err := Spend(tx, utxo, reward, stubVerifier{}, fakeHasher{}, nil)
	mustReject(t, err, RejectMissingInput)
}

func TestSpend_RecordsArchiveWhenProvided(t *testing.T) {
	utxo := newTestUtxoSet()
	reward := NewRewardTotal(&memStorage{data: make(map[string][]byte)})
	archive := NewArchive(&memStorage{data: make(map[string][]byte)})
	pub := PubKey{7}
	outID := OutputId{1}
	if err := utxo.Insert(outID, Output{Value: ValueFromUint64(10), PubKey: pub}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	tx := Transaction{
		Inputs:  []Input{{Outpoint: outID, Sigscript: sigFor(pub)}},
		Outputs: []Output{{Value: ValueFromUint64(10), PubKey: PubKey{2}}},
	}

	if _, err := Spend(tx, utxo, reward, stubVerifier{}, fakeHasher{}, archive); err != nil {
		t.Fatalf("Spend: %v", err)
	}

	spentRef, ok, err := archive.LookupSpend(outID)
	if err != nil {
		t.Fatalf("LookupSpend: %v", err)
	}
	if !ok {
		t.Fatalf("archive missing spend record for %v", outID)
	}
	_ = spentRef
}
