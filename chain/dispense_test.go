package chain

import "testing"

func TestDispenseReward_NoAuthorWastesAndDrains(t *testing.T) {
	reward := NewRewardTotal(&memStorage{data: make(map[string][]byte)})
	utxo := newTestUtxoSet()
	if err := reward.Add(ValueFromUint64(4)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	event, err := DispenseReward(1, NoAuthor{}, reward, utxo, ZeroIssuance{}, fakeHasher{})
	if err != nil {
		t.Fatalf("DispenseReward: %v", err)
	}
	if _, ok := event.(RewardsWasted); !ok {
		t.Fatalf("event = %T, want RewardsWasted", event)
	}
	total, err := reward.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !total.IsZero() {
		t.Fatalf("reward total after no-author dispense = %s, want 0", total.Big())
	}
}

func TestDispenseReward_IssuesToAuthor(t *testing.T) {
	reward := NewRewardTotal(&memStorage{data: make(map[string][]byte)})
	utxo := newTestUtxoSet()
	if err := reward.Add(ValueFromUint64(4)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	author := StaticAuthor{PubKey: PubKey{5}}
	issuance := HalvingIssuance{Initial: ValueFromUint64(50), HalvingInterval: 210000}

	event, err := DispenseReward(0, author, reward, utxo, issuance, fakeHasher{})
	if err != nil {
		t.Fatalf("DispenseReward: %v", err)
	}
	issued, ok := event.(RewardsIssued)
	if !ok {
		t.Fatalf("event = %T, want RewardsIssued", event)
	}
	if issued.Reward.Big().Uint64() != 54 {
		t.Fatalf("Reward = %s, want 54 (4 fee + 50 issuance)", issued.Reward.Big())
	}
	present, err := utxo.Contains(issued.OutputID)
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !present {
		t.Fatalf("reward output not inserted into utxo set")
	}
}

func TestDispenseReward_OutputCollisionWastes(t *testing.T) {
	reward := NewRewardTotal(&memStorage{data: make(map[string][]byte)})
	utxo := newTestUtxoSet()
	author := StaticAuthor{PubKey: PubKey{5}}

	out := Output{Value: ZeroValue, PubKey: author.PubKey}
	id := DeriveRewardOutputId(fakeHasher{}, out, 3)
	if err := utxo.Insert(id, out); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	event, err := DispenseReward(3, author, reward, utxo, ZeroIssuance{}, fakeHasher{})
	if err != nil {
		t.Fatalf("DispenseReward: %v", err)
	}
	if _, ok := event.(RewardsWasted); !ok {
		t.Fatalf("event = %T, want RewardsWasted on collision", event)
	}
}
