package testutils

import (
	"context"
	"sync"
)

// FakeStore is an in-memory storage.Store for tests. It records deleted
// keys so cleanup behavior can be asserted.
type FakeStore struct {
	mu      sync.Mutex
	Deleted []string
	PutErr  error
	DelErr  error
}

// NewFakeStore creates an empty fake store
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// Put pretends to upload and returns a deterministic URL
func (f *FakeStore) Put(ctx context.Context, localPath, key string) (string, error) {
	if f.PutErr != nil {
		return "", f.PutErr
	}
	return f.PublicURL(key), nil
}

// Delete records the deleted keys
func (f *FakeStore) Delete(ctx context.Context, keys ...string) error {
	if f.DelErr != nil {
		return f.DelErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		if key != "" {
			f.Deleted = append(f.Deleted, key)
		}
	}
	return nil
}

// PublicURL mirrors the production URL shape
func (f *FakeStore) PublicURL(key string) string {
	return "https://cdn.example.com/file/" + key
}
