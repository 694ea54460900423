package vm

import (
	"context"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
)

type branchKey struct{}

// withStore returns a context carrying the transaction's store branch.
func withStore(ctx context.Context, store storetypes.KVStore) context.Context {
	return context.WithValue(ctx, branchKey{}, store)
}

func storeFromContext(ctx context.Context) storetypes.KVStore {
	store, ok := ctx.Value(branchKey{}).(storetypes.KVStore)
	if !ok {
		panic("vm: context carries no store branch; calls must enter through the host")
	}
	return store
}

// kvStoreService hands a contract its private namespace of the transaction
// branch carried by the context. Keepers hold it the same way chain modules
// hold the runtime store service.
type kvStoreService struct {
	prefix []byte
}

var _ corestore.KVStoreService = kvStoreService{}

func (s kvStoreService) OpenKVStore(ctx context.Context) corestore.KVStore {
	return coreKVStore{store: prefix.NewStore(storeFromContext(ctx), s.prefix)}
}

// coreKVStore lifts the prefixed SDK store into the core KVStore interface
// keepers consume. The SDK store reports failures by panicking, so the
// error returns are always nil.
type coreKVStore struct {
	store storetypes.KVStore
}

var _ corestore.KVStore = coreKVStore{}

func (s coreKVStore) Get(key []byte) ([]byte, error) {
	return s.store.Get(key), nil
}

func (s coreKVStore) Has(key []byte) (bool, error) {
	return s.store.Has(key), nil
}

func (s coreKVStore) Set(key, value []byte) error {
	s.store.Set(key, value)
	return nil
}

func (s coreKVStore) Delete(key []byte) error {
	s.store.Delete(key)
	return nil
}

func (s coreKVStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return s.store.Iterator(start, end), nil
}

func (s coreKVStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return s.store.ReverseIterator(start, end), nil
}

// StoreService returns the namespaced store service for a contract address.
// Namespaces are keyed by the address bytes, so no two contracts can see
// each other's keys.
func (h *Host) StoreService(contractAddr string) corestore.KVStoreService {
	return kvStoreService{prefix: append([]byte("contract/"), contractAddr...)}
}
