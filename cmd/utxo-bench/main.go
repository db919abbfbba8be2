// Command utxo-bench is a development harness for the chain package: it
// reads a JSON scenario (genesis outputs plus a sequence of spend/finalize
// steps), drives them through chain.Spend/DispenseReward/Retarget, and
// prints a JSON trace of what happened. It is not a node binary: no p2p, no
// block assembly, just the ledger core exercised end to end.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"rubin.dev/utxo-core/chain"
	"rubin.dev/utxo-core/crypto"
	"rubin.dev/utxo-core/store"
)

type scenarioOutput struct {
	ValueHex  string `json:"value_hex"`
	PubKeyHex string `json:"pubkey_hex"`
}

type scenarioInput struct {
	OutpointHex  string `json:"outpoint_hex"`
	SigscriptHex string `json:"sigscript_hex"`
}

type scenarioTx struct {
	Inputs  []scenarioInput  `json:"inputs"`
	Outputs []scenarioOutput `json:"outputs"`
}

type scenarioStep struct {
	Kind            string      `json:"kind"` // "spend" | "finalize"
	Tx              *scenarioTx `json:"tx,omitempty"`
	BlockNumber     uint32      `json:"block_number,omitempty"`
	Timestamp       uint64      `json:"timestamp,omitempty"`
	AuthorPubKeyHex string      `json:"author_pubkey_hex,omitempty"`
}

type scenario struct {
	GenesisOutputs       []scenarioOutput `json:"genesis_outputs"`
	InitialDifficultyHex string           `json:"initial_difficulty_hex"`
	Steps                []scenarioStep   `json:"steps"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a JSON scenario file")
	dbPath := flag.String("db", "", "bbolt db path; empty uses an in-memory store")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if *scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "usage: utxo-bench -scenario <path> [-db <path>]")
		os.Exit(2)
	}

	if err := run(*scenarioPath, *dbPath, log); err != nil {
		log.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(scenarioPath, dbPath string, log *slog.Logger) error {
	raw, err := os.ReadFile(scenarioPath)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}
	var sc scenario
	if err := json.Unmarshal(raw, &sc); err != nil {
		return fmt.Errorf("decode scenario: %w", err)
	}

	var storage chain.Storage
	if dbPath == "" {
		storage = store.NewMemory()
	} else {
		kv, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer kv.Close()
		storage = kv
	}

	provider := crypto.DefaultProvider{}
	utxo := chain.NewUtxoSet(storage)
	reward := chain.NewRewardTotal(storage)
	archive := chain.NewArchive(storage)
	cfg := chain.DefaultConfig()

	genesisOutputs, err := decodeOutputs(sc.GenesisOutputs)
	if err != nil {
		return fmt.Errorf("genesis outputs: %w", err)
	}
	initialDifficulty, ok := new(big.Int).SetString(sc.InitialDifficultyHex, 16)
	if !ok {
		return fmt.Errorf("bad initial_difficulty_hex %q", sc.InitialDifficultyHex)
	}
	diffCtl, err := chain.InitGenesis(chain.GenesisInput{
		Outputs:           genesisOutputs,
		InitialDifficulty: initialDifficulty,
	}, utxo, storage, provider, cfg)
	if err != nil {
		return fmt.Errorf("init genesis: %w", err)
	}
	log.Info("genesis", "outputs", len(genesisOutputs), "initial_difficulty", initialDifficulty.String())

	issuance := chain.NewHalvingIssuance(cfg)

	for i, step := range sc.Steps {
		switch step.Kind {
		case "spend":
			if step.Tx == nil {
				return fmt.Errorf("step %d: spend requires tx", i)
			}
			tx, err := decodeTx(*step.Tx)
			if err != nil {
				return fmt.Errorf("step %d: decode tx: %w", i, err)
			}
			event, err := chain.Spend(tx, utxo, reward, provider, provider, archive)
			if err != nil {
				log.Warn("transaction rejected", "step", i, "err", err)
				continue
			}
			log.Info("transaction applied", "step", i, "event", fmt.Sprintf("%+v", event))
		case "finalize":
			var author chain.AuthorSource = chain.NoAuthor{}
			if step.AuthorPubKeyHex != "" {
				pub, err := decodePubKey(step.AuthorPubKeyHex)
				if err != nil {
					return fmt.Errorf("step %d: author pubkey: %w", i, err)
				}
				author = chain.StaticAuthor{PubKey: pub}
			}
			event, err := chain.DispenseReward(step.BlockNumber, author, reward, utxo, issuance, provider)
			if err != nil {
				return fmt.Errorf("step %d: dispense reward: %w", i, err)
			}
			log.Info("reward dispensed", "step", i, "event", fmt.Sprintf("%+v", event))
			if err := diffCtl.Retarget(step.Timestamp); err != nil {
				return fmt.Errorf("step %d: retarget: %w", i, err)
			}
			log.Info("difficulty retargeted", "step", i, "current_difficulty", diffCtl.Current.String())
		default:
			return fmt.Errorf("step %d: unknown kind %q", i, step.Kind)
		}
	}

	return nil
}

func decodeOutputs(raw []scenarioOutput) ([]chain.Output, error) {
	out := make([]chain.Output, len(raw))
	for i, o := range raw {
		value, ok := new(big.Int).SetString(o.ValueHex, 16)
		if !ok {
			return nil, fmt.Errorf("output %d: bad value_hex %q", i, o.ValueHex)
		}
		pub, err := decodePubKey(o.PubKeyHex)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		out[i] = chain.Output{Value: chain.ValueFromUint64(value.Uint64()), PubKey: pub}
	}
	return out, nil
}

func decodePubKey(h string) (chain.PubKey, error) {
	b, err := hex.DecodeString(h)
	if err != nil || len(b) != 32 {
		return chain.PubKey{}, fmt.Errorf("bad pubkey hex %q", h)
	}
	var pub chain.PubKey
	copy(pub[:], b)
	return pub, nil
}

func decodeTx(raw scenarioTx) (chain.Transaction, error) {
	tx := chain.Transaction{
		Inputs:  make([]chain.Input, len(raw.Inputs)),
		Outputs: make([]chain.Output, len(raw.Outputs)),
	}
	for i, in := range raw.Inputs {
		opBytes, err := hex.DecodeString(in.OutpointHex)
		if err != nil || len(opBytes) != 32 {
			return chain.Transaction{}, fmt.Errorf("input %d: bad outpoint_hex", i)
		}
		sigBytes, err := hex.DecodeString(in.SigscriptHex)
		if err != nil || len(sigBytes) != 64 {
			return chain.Transaction{}, fmt.Errorf("input %d: bad sigscript_hex", i)
		}
		var outpoint chain.OutputId
		copy(outpoint[:], opBytes)
		var sig chain.Signature
		copy(sig[:], sigBytes)
		tx.Inputs[i] = chain.Input{Outpoint: outpoint, Sigscript: sig}
	}
	outputs, err := decodeOutputs(raw.Outputs)
	if err != nil {
		return chain.Transaction{}, err
	}
	tx.Outputs = outputs
	return tx, nil
}
