package storage_test

import (
	"context"
	"errors"

	"vitre/backend/internal/storage"
)

// fakeKV is an in-memory stand-in for Redis used by the storage tests.
type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	val, ok := f.data[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return val, nil
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	f.data[key] = value
	return nil
}

// failingKV simulates an unavailable backend (e.g. quota exceeded).
type failingKV struct{}

func (failingKV) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("backend unavailable")
}

func (failingKV) Set(ctx context.Context, key, value string) error {
	return errors.New("backend unavailable")
}
