// Package store provides the bbolt-backed chain.Storage implementation:
// the default persistence layer for UtxoSet, RewardTotal, and the
// difficulty controller's window, using a flat byte-keyed namespace matching
// spec.md §6's key families (utxo/{OutputId}, reward_total, diff/current,
// diff/window).
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketCore = []byte("core")

// KV is a bbolt-backed chain.Storage. All operations run inside their own
// bbolt transaction; the caller (the chain package) provides no batching of
// its own, per spec.md §5's single-threaded, no-suspension-point model.
type KV struct {
	db *bolt.DB
}

// Open opens (creating if necessary) a bbolt database at path and ensures
// the core bucket exists.
func Open(path string) (*KV, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCore)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create core bucket: %w", err)
	}
	return &KV{db: db}, nil
}

// Close releases the underlying bbolt file handle.
func (k *KV) Close() error {
	if k == nil || k.db == nil {
		return nil
	}
	return k.db.Close()
}

// Get implements chain.Storage.
func (k *KV) Get(key []byte) ([]byte, bool, error) {
	var out []byte
	err := k.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketCore).Get(key)
		if v == nil {
			return nil
		}
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if out == nil {
		return nil, false, nil
	}
	return out, true, nil
}

// Put implements chain.Storage.
func (k *KV) Put(key []byte, value []byte) error {
	return k.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCore).Put(key, value)
	})
}

// Remove implements chain.Storage.
func (k *KV) Remove(key []byte) error {
	return k.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCore).Delete(key)
	})
}

// Contains implements chain.Storage.
func (k *KV) Contains(key []byte) (bool, error) {
	_, ok, err := k.Get(key)
	return ok, err
}
