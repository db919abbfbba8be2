package chain

import (
	"math/big"
	"testing"
)

func TestInitGenesis_SeedsUtxoSetAndDifficulty(t *testing.T) {
	utxo := newTestUtxoSet()
	input := GenesisInput{
		Outputs: []Output{
			{Value: ValueFromUint64(100), PubKey: PubKey{1}},
			{Value: ValueFromUint64(200), PubKey: PubKey{2}},
		},
		InitialDifficulty: big.NewInt(42),
	}
	ctl, err := InitGenesis(input, utxo, &memStorage{data: make(map[string][]byte)}, fakeHasher{}, DefaultConfig())
	if err != nil {
		t.Fatalf("InitGenesis: %v", err)
	}
	if ctl.Current.Cmp(big.NewInt(42)) != 0 {
		t.Fatalf("Current = %s, want 42", ctl.Current)
	}

	genesisTx := Transaction{Outputs: input.Outputs}
	for i, out := range input.Outputs {
		id := DeriveOutputId(fakeHasher{}, genesisTx, uint64(i))
		got, ok, err := utxo.Get(id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !ok {
			t.Fatalf("genesis output %d not seeded", i)
		}
		if !got.Equal(out) {
			t.Fatalf("genesis output %d = %+v, want %+v", i, got, out)
		}
	}
}

func TestInitGenesis_CollisionIsFatal(t *testing.T) {
	utxo := newTestUtxoSet()
	input := GenesisInput{
		Outputs:           []Output{{Value: ValueFromUint64(1), PubKey: PubKey{1}}},
		InitialDifficulty: big.NewInt(1),
	}
	genesisTx := Transaction{Outputs: input.Outputs}
	collidingID := DeriveOutputId(fakeHasher{}, genesisTx, 0)
	if err := utxo.Insert(collidingID, Output{Value: ValueFromUint64(9), PubKey: PubKey{9}}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	_, err := InitGenesis(input, utxo, &memStorage{data: make(map[string][]byte)}, fakeHasher{}, DefaultConfig())
	if err == nil {
		t.Fatalf("expected error on genesis output collision")
	}
	fe, ok := err.(*FatalError)
	if !ok || fe.Code != FatalStorageInconsistency {
		t.Fatalf("err = %v, want FatalStorageInconsistency", err)
	}
}
